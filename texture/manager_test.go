// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"glcube/glh"
	"glcube/glh/glhtest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerBuildAndFree(t *testing.T) {
	r := glhtest.NewRecorder()
	tm := NewManager(r)
	a, err := tm.BuildFromImages("a", images(6, 4, 4), BuildOptions{})
	require.NoError(t, err)
	b, err := tm.BuildFromImages("b", images(6, 3, 3), BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, tm.Len())
	assert.Equal(t, []*CubeTexture{a, b}, tm.Textures())

	tm.Free(a)
	assert.Equal(t, 1, tm.Len())
	assert.True(t, r.Deleted(a.Handle()))
	assert.False(t, r.Deleted(b.Handle()))

	tm.FreeAll()
	assert.Equal(t, 0, tm.Len())
	assert.True(t, r.Deleted(b.Handle()))
}

func TestManagerBuildError(t *testing.T) {
	tm := NewManager(glhtest.NewRecorder())
	_, err := tm.BuildFromImages("empty", nil, BuildOptions{})
	assert.True(t, errors.Is(err, ErrNoImages))
	assert.Equal(t, 0, tm.Len())
}

func TestManagerTextureMode(t *testing.T) {
	r := glhtest.NewRecorder()
	tm := NewManager(r)
	assert.Equal(t, "GL_LINEAR_MIPMAP_LINEAR", tm.TextureMode())
	pot, err := tm.BuildFromImages("pot", images(6, 4, 4), BuildOptions{})
	require.NoError(t, err)
	npot, err := tm.BuildFromImages("npot", images(6, 3, 3), BuildOptions{})
	require.NoError(t, err)

	require.NoError(t, tm.SetTextureMode("GL_NEAREST"))
	v, _ := r.Param(pot.Handle(), glh.TextureMinFilter)
	assert.Equal(t, glh.NearestMipmapNearest, v)
	v, _ = r.Param(npot.Handle(), glh.TextureMinFilter)
	assert.Equal(t, glh.Nearest, v)
	v, _ = r.Param(npot.Handle(), glh.TextureMagFilter)
	assert.Equal(t, glh.Nearest, v)

	// new textures pick up the current mode
	c, err := tm.BuildFromImages("c", images(6, 3, 3), BuildOptions{})
	require.NoError(t, err)
	v, _ = r.Param(c.Handle(), glh.TextureMagFilter)
	assert.Equal(t, glh.Nearest, v)

	err = tm.SetTextureMode("GL_BILINEAR")
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Equal(t, "GL_NEAREST", tm.TextureMode())
}

func TestManagerList(t *testing.T) {
	tm := NewManager(glhtest.NewRecorder())
	_, err := tm.BuildFromImages("sky", images(6, 4, 4), BuildOptions{})
	require.NoError(t, err)
	var buf bytes.Buffer
	tm.List(&buf)
	out := buf.String()
	assert.Contains(t, out, "sky mipmap")
	assert.True(t, strings.HasSuffix(out, "1 textures 128 texels\n"), out)

	buf.Reset()
	tm.DescribeTextureModes(&buf)
	assert.Contains(t, buf.String(), " 6: GL_LINEAR_MIPMAP_LINEAR")
	assert.Contains(t, buf.String(), "6 modes")
}

func TestManagerLoadSkyBox(t *testing.T) {
	dir := t.TempDir()
	for i, suf := range []string{"rt", "lf", "up", "dn", "bk", "ft"} {
		f, err := os.Create(filepath.Join(dir, "night"+suf+".png"))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, solid(8, 8, color.NRGBA{uint8(i), 0, 0, 255})))
		require.NoError(t, f.Close())
	}
	r := glhtest.NewRecorder()
	tm := NewManager(r)
	c, err := tm.LoadSkyBox(dir, "night", BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "night", c.Name())
	assert.Equal(t, 8, c.Width())
	require.Len(t, r.Uploads, Faces)
	for i, u := range r.Uploads {
		assert.Equal(t, uint8(i), u.Pixels[0])
	}

	_, err = tm.LoadSkyBox(dir, "day", BuildOptions{})
	assert.Error(t, err)
	assert.Equal(t, 1, tm.Len())
}

func TestTextureModes(t *testing.T) {
	modes := TextureModes()
	require.Len(t, modes, 6)
	assert.Equal(t, "GL_NEAREST", modes[0])
	assert.Equal(t, "GL_LINEAR_MIPMAP_LINEAR", modes[5])
	tm := NewManager(glhtest.NewRecorder())
	for _, m := range modes {
		assert.NoError(t, tm.SetTextureMode(m))
	}
}

func TestManagerLoadSkyBoxFS(t *testing.T) {
	fsys := fstest.MapFS{}
	for i, suf := range []string{"rt", "lf", "up", "dn", "bk", "ft"} {
		var b bytes.Buffer
		require.NoError(t, png.Encode(&b, solid(4, 4, color.NRGBA{uint8(10 + i), 0, 0, 255})))
		fsys["gfx/env/night"+suf+".png"] = &fstest.MapFile{Data: b.Bytes()}
	}
	r := glhtest.NewRecorder()
	tm := NewManager(r)
	c, err := tm.LoadSkyBoxFS(fsys, "gfx/env", "night", BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Width())
	require.Len(t, r.Uploads, Faces)
	assert.Equal(t, uint8(15), r.Uploads[5].Pixels[0])
}
