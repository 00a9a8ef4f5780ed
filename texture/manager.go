// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"sort"

	"glcube/glh"
	qimage "glcube/image"

	"github.com/pkg/errors"
)

type glMode struct {
	linear bool
	name   string
}

// glModes are the accepted gl_texturemode values. Cube textures pick the
// mipmap variant of the min filter on their own, so only the filter kind of
// a mode matters.
var glModes = [6]glMode{
	{false, "GL_NEAREST"},
	{false, "GL_NEAREST_MIPMAP_NEAREST"},
	{false, "GL_NEAREST_MIPMAP_LINEAR"},
	{true, "GL_LINEAR"},
	{true, "GL_LINEAR_MIPMAP_NEAREST"},
	{true, "GL_LINEAR_MIPMAP_LINEAR"},
}

// TextureModes returns the accepted texture mode names.
func TextureModes() []string {
	names := make([]string, len(glModes))
	for i, m := range glModes {
		names[i] = m.name
	}
	return names
}

// Manager keeps track of the cube textures living in one context.
type Manager struct {
	ctx           glh.Context
	activeTexture map[*CubeTexture]bool
	glModeIndex   int
}

func NewManager(ctx glh.Context) *Manager {
	return &Manager{
		ctx:           ctx,
		activeTexture: make(map[*CubeTexture]bool),
		glModeIndex:   len(glModes) - 1,
	}
}

func (tm *Manager) Context() glh.Context {
	return tm.ctx
}

// Add starts tracking t and applies the current texture mode to it.
func (tm *Manager) Add(t *CubeTexture) {
	tm.activeTexture[t] = true
	tm.applyMode(t)
}

// Free destroys t and stops tracking it.
func (tm *Manager) Free(t *CubeTexture) {
	if !tm.activeTexture[t] {
		log.Printf("Free: texture %v not managed", t.ID())
	}
	delete(tm.activeTexture, t)
	t.Destroy()
}

func (tm *Manager) FreeAll() {
	for t := range tm.activeTexture {
		t.Destroy()
	}
	clear(tm.activeTexture)
}

func (tm *Manager) Len() int {
	return len(tm.activeTexture)
}

// Textures returns the managed textures ordered by creation.
func (tm *Manager) Textures() []*CubeTexture {
	ts := make([]*CubeTexture, 0, len(tm.activeTexture))
	for t := range tm.activeTexture {
		ts = append(ts, t)
	}
	// uuid v7 sorts by creation time
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].ID().String() < ts[j].ID().String()
	})
	return ts
}

// BuildFromImages is the package level BuildFromImages for a managed texture.
func (tm *Manager) BuildFromImages(name string, images []image.Image, opts BuildOptions) (*CubeTexture, error) {
	t, err := BuildFromImages(tm.ctx, images, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %v", name)
	}
	t.SetName(name)
	tm.Add(t)
	return t, nil
}

// LoadSkyBox loads the faces dir/<name>{rt,lf,up,dn,bk,ft} into a new
// managed cube texture.
func (tm *Manager) LoadSkyBox(dir, name string, opts BuildOptions) (*CubeTexture, error) {
	imgs, err := qimage.LoadSkyBox(dir, name)
	if err != nil {
		return nil, err
	}
	return tm.BuildFromImages(name, imgs, opts)
}

// LoadSkyBoxFS is LoadSkyBox reading from fsys.
func (tm *Manager) LoadSkyBoxFS(fsys fs.FS, dir, name string, opts BuildOptions) (*CubeTexture, error) {
	imgs, err := qimage.LoadSkyBoxFS(fsys, dir, name)
	if err != nil {
		return nil, err
	}
	return tm.BuildFromImages(name, imgs, opts)
}

// SetTextureMode switches the filtering of all managed textures to one of
// the GL_* mode names.
func (tm *Manager) SetTextureMode(name string) error {
	for i, m := range glModes {
		if m.name == name {
			tm.glModeIndex = i
			for t := range tm.activeTexture {
				tm.applyMode(t)
			}
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownMode, "%q", name)
}

func (tm *Manager) TextureMode() string {
	return glModes[tm.glModeIndex].name
}

func (tm *Manager) applyMode(t *CubeTexture) {
	if glModes[tm.glModeIndex].linear {
		t.EnableLinearScaling()
	} else {
		t.EnableNearestScaling()
	}
}

// DescribeTextureModes writes the list of accepted texture modes.
func (tm *Manager) DescribeTextureModes(w io.Writer) {
	for i, m := range glModes {
		fmt.Fprintf(w, "   %2d: %s\n", i+1, m.name)
	}
	fmt.Fprintf(w, "%d modes\n", len(glModes))
}

// List writes one line per managed texture and a summary.
func (tm *Manager) List(w io.Writer) {
	texels := 0
	for _, t := range tm.Textures() {
		mip := ""
		if t.Mipmap() {
			mip = " mipmap"
		}
		fmt.Fprintf(w, "   %4d x%4d unit %d %s%s %s\n",
			t.Width(), t.Height(), t.Unit(), t.Name(), mip, t.ID())
		if t.Width() > 0 && t.Height() > 0 {
			n := t.Width() * t.Height() * Faces
			if t.Mipmap() {
				n = n * 4 / 3
			}
			texels += n
		}
	}
	fmt.Fprintf(w, "%d textures %d texels\n", len(tm.activeTexture), texels)
}
