// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"glcube/glh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tga(t *testing.T, typ, attr uint8, bpp uint8, w, h int, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, tgaHeader{
		ImageType:  typ,
		Width:      uint16(w),
		Height:     uint16(h),
		PixelSize:  bpp,
		Attributes: attr,
	}))
	buf.Write(data)
	return buf.Bytes()
}

func TestDecodeTGABottomUp(t *testing.T) {
	// BGR, first row in the file is the bottom row
	data := tga(t, tgaTrueColor, 0, 24, 1, 2, []byte{
		0, 0, 255, // red, bottom
		255, 0, 0, // blue, top
	})
	img, err := DecodeTGA(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 1))
}

func TestDecodeTGARLE(t *testing.T) {
	data := tga(t, tgaTrueColorRLE, tgaTopOrigin, 32, 3, 1, []byte{
		0x81, 10, 20, 30, 40, // run of 2
		0x00, 1, 2, 3, 4, // 1 raw
	})
	img, err := DecodeTGA(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{30, 20, 10, 40}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{30, 20, 10, 40}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{3, 2, 1, 4}, img.NRGBAAt(2, 0))
}

func TestDecodeTGAShort(t *testing.T) {
	data := tga(t, tgaTrueColor, 0, 32, 2, 2, []byte{1, 2, 3, 4})
	_, err := DecodeTGA(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestDecodeTGAColormapped(t *testing.T) {
	data := tga(t, 1, 0, 8, 1, 1, []byte{0})
	_, err := DecodeTGA(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestNRGBAKeepsPackedImage(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, n, NRGBA(n))
}

func TestNRGBAConvertsSubImage(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	n.SetNRGBA(2, 2, color.NRGBA{1, 2, 3, 255})
	sub := n.SubImage(image.Rect(2, 2, 4, 4))
	out := NRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, out.NRGBAAt(0, 0))
}

func TestPixels(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	n.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 4})

	p, err := Pixels(n, glh.RGBA, glh.UnsignedByte)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, p)

	p, err = Pixels(n, glh.RGB, glh.UnsignedByte)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, p)

	p, err = Pixels(n, glh.Alpha, glh.UnsignedByte)
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, p)

	_, err = Pixels(n, glh.RGBA, glh.Float)
	assert.Error(t, err)
}

func writePNG(t *testing.T, name string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadSkyBox(t *testing.T) {
	dir := t.TempDir()
	for i, suf := range skySuf {
		writePNG(t, filepath.Join(dir, "sky"+suf+".png"), color.NRGBA{uint8(i), 0, 0, 255})
	}
	imgs, err := LoadSkyBox(dir, "sky")
	require.NoError(t, err)
	require.Len(t, imgs, 6)
	for i, img := range imgs {
		r, _, _, _ := img.At(0, 0).RGBA()
		assert.Equal(t, uint32(i)*0x101, r, "face %d", i)
	}
}

func TestLoadSkyBoxMissingFace(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "skyrt.png"), color.NRGBA{A: 255})
	_, err := LoadSkyBox(dir, "sky")
	assert.Error(t, err)
}

func TestLoadSkyBoxFS(t *testing.T) {
	fsys := fstest.MapFS{}
	for i, suf := range skySuf {
		// BGRA
		fsys["gfx/env/night"+suf+".tga"] = &fstest.MapFile{
			Data: tga(t, 2, 0, 32, 1, 1, []byte{0, 0, uint8(i), 255}),
		}
	}
	imgs, err := LoadSkyBoxFS(fsys, "gfx/env", "night")
	require.NoError(t, err)
	require.Len(t, imgs, 6)
	for i, img := range imgs {
		r, _, _, _ := img.At(0, 0).RGBA()
		assert.Equal(t, uint32(i)*0x101, r, "face %d", i)
	}

	_, err = LoadSkyBoxFS(fsys, "gfx/env", "day")
	assert.Error(t, err)
}
