// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"strings"
	"testing"
	"time"

	"glcube/cvars"
	"glcube/frame"
	"glcube/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCommandLine(t *testing.T) {
	defer func() {
		flag.Set("width", "-1")
		flag.Set("mipmap", "")
		cvars.VideoWidth.Reset()
		cvars.GlTextureMipmap.Reset()
		cvars.RSkySpeed.Reset()
	}()
	require.NoError(t, flag.Set("width", "800"))
	require.NoError(t, flag.Set("mipmap", "never"))
	require.NoError(t, flag.Set("set", "r_skyspeed=25"))
	require.NoError(t, applyCommandLine())
	assert.Equal(t, float32(800), cvars.VideoWidth.Value())
	assert.Equal(t, float32(768), cvars.VideoHeight.Value())
	assert.Equal(t, "never", cvars.GlTextureMipmap.String())
	assert.Equal(t, float32(25), cvars.RSkySpeed.Value())

	opts, err := buildOptions()
	require.NoError(t, err)
	assert.Equal(t, texture.MipmapNever, opts.Mipmap)
	assert.False(t, opts.Flip)
}

func TestBuildOptions(t *testing.T) {
	defer cvars.GlFlip.Reset()
	defer cvars.GlPremultiply.Reset()
	defer cvars.GlTextureMipmap.Reset()

	cvars.GlFlip.SetByString("1")
	cvars.GlPremultiply.SetByString("1")
	opts, err := buildOptions()
	require.NoError(t, err)
	assert.True(t, opts.Flip)
	assert.True(t, opts.PremultiplyAlpha)
	assert.Equal(t, texture.MipmapPowerOfTwo, opts.Mipmap)

	cvars.GlTextureMipmap.SetByString("sometimes")
	_, err = buildOptions()
	assert.ErrorIs(t, err, texture.ErrUnknownPolicy)
}

func TestFrameInterval(t *testing.T) {
	defer cvars.HostMaxFps.Reset()
	cvars.HostMaxFps.SetValue(50)
	assert.Equal(t, 20*time.Millisecond, frameInterval())
	cvars.HostMaxFps.SetValue(0)
	assert.Equal(t, frame.DefaultInterval, frameInterval())
}

func TestCycleTextureMode(t *testing.T) {
	c := cycleTextureMode()
	assert.True(t, strings.HasPrefix(c, "cycle gl_texturemode GL_NEAREST "))
	assert.True(t, strings.HasSuffix(c, " GL_LINEAR_MIPMAP_LINEAR"))
}

func TestCheckerFaces(t *testing.T) {
	faces := checkerFaces(4, 2, 0)
	require.Len(t, faces, texture.Faces)
	for f, buf := range faces {
		require.Len(t, buf, 4*4*4)
		c := faceColors[f]
		assert.Equal(t, []uint8{c[0], c[1], c[2], 255}, buf[0:4], "face %d", f)
		// second cell of the first row is dark
		assert.Equal(t, []uint8{c[0] / 4, c[1] / 4, c[2] / 4, 255}, buf[8:12], "face %d", f)
	}
	shifted := checkerFaces(4, 2, 2)
	assert.Equal(t, faces[0][8:12], shifted[0][0:4])
}
