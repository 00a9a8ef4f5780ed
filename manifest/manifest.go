// SPDX-License-Identifier: GPL-2.0-or-later

// Package manifest reads YAML descriptions of cube textures:
//
//	name: night
//	flip: false
//	premultiply_alpha: false
//	unit: 0
//	mipmap: pot
//	levels:
//	  - [rt.png, lf.png, up.png, dn.png, bk.png, ft.png]
//	  - [rt_1.png, lf_1.png, up_1.png, dn_1.png, bk_1.png, ft_1.png]
//
// Face files are relative to the manifest and listed +X, -X, +Y, -Y, +Z, -Z.
// Instead of levels a classic skybox can be named with skybox: <prefix>.
// Manifests ending in .toml use the same keys in TOML.
package manifest

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"glcube/glh"
	qimage "glcube/image"
	"glcube/texture"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Manifest struct {
	Name             string     `yaml:"name" toml:"name"`
	Flip             bool       `yaml:"flip" toml:"flip"`
	PremultiplyAlpha bool       `yaml:"premultiply_alpha" toml:"premultiply_alpha"`
	Unit             int        `yaml:"unit" toml:"unit"`
	Mipmap           string     `yaml:"mipmap" toml:"mipmap"`
	Format           string     `yaml:"format" toml:"format"`
	SkyBox           string     `yaml:"skybox" toml:"skybox"`
	Levels           [][]string `yaml:"levels" toml:"levels"`

	// Dir is the directory face files are relative to.
	Dir string `yaml:"-" toml:"-"`
}

var formats = map[string]texture.Format{
	"":      texture.DefaultFormat,
	"rgba8": {Internal: glh.RGBA8, Pixel: glh.RGBA, Type: glh.UnsignedByte},
	"rgb8":  {Internal: glh.RGB8, Pixel: glh.RGB, Type: glh.UnsignedByte},
	"srgb8": {Internal: glh.SRGB8Alpha8, Pixel: glh.RGBA, Type: glh.UnsignedByte},
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	m, err := parse(data, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %v", path)
	}
	return m, nil
}

// Parse decodes a manifest whose face files live in dir.
func Parse(data []byte, dir string) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m.finish(dir)
}

// ParseTOML is Parse for TOML manifests.
func ParseTOML(data []byte, dir string) (*Manifest, error) {
	m := &Manifest{}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m.finish(dir)
}

func (m *Manifest) finish(dir string) (*Manifest, error) {
	m.Dir = dir
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if (m.SkyBox == "") == (len(m.Levels) == 0) {
		return errors.New("exactly one of skybox and levels is required")
	}
	for i, l := range m.Levels {
		if len(l) != texture.Faces {
			return errors.Errorf("level %d has %d faces, want %d", i, len(l), texture.Faces)
		}
	}
	if m.Unit < 0 {
		return errors.Errorf("invalid unit %d", m.Unit)
	}
	if _, err := m.Options(); err != nil {
		return err
	}
	return nil
}

// Options returns the build options described by the manifest.
func (m *Manifest) Options() (texture.BuildOptions, error) {
	opts := texture.BuildOptions{
		Flip:             m.Flip,
		PremultiplyAlpha: m.PremultiplyAlpha,
		Unit:             m.Unit,
	}
	f, ok := formats[m.Format]
	if !ok {
		return opts, errors.Errorf("unknown format %q", m.Format)
	}
	opts.Format = f
	if m.Mipmap != "" {
		p, err := texture.ParseMipmapPolicy(m.Mipmap)
		if err != nil {
			return opts, err
		}
		opts.Mipmap = p
	}
	return opts, nil
}

// Files returns the face files in upload order.
func (m *Manifest) Files() []string {
	var files []string
	for _, l := range m.Levels {
		for _, f := range l {
			files = append(files, m.path(f))
		}
	}
	return files
}

func (m *Manifest) path(f string) string {
	if filepath.IsAbs(f) {
		return f
	}
	return filepath.Join(m.Dir, f)
}

// TextureName is the name the texture is registered under.
func (m *Manifest) TextureName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.SkyBox
}

// Images loads all face images.
func (m *Manifest) Images() ([]image.Image, error) {
	if m.SkyBox != "" {
		return qimage.LoadSkyBox(m.Dir, m.SkyBox)
	}
	files := m.Files()
	imgs := make([]image.Image, 0, len(files))
	for _, f := range files {
		img, err := qimage.Load(f)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// Build loads the images and creates the texture in tm.
func (m *Manifest) Build(tm *texture.Manager) (*texture.CubeTexture, error) {
	opts, err := m.Options()
	if err != nil {
		return nil, err
	}
	imgs, err := m.Images()
	if err != nil {
		return nil, err
	}
	return tm.BuildFromImages(m.TextureName(), imgs, opts)
}
