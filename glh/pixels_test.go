// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesPerPixel(t *testing.T) {
	assert.Equal(t, 4, BytesPerPixel(RGBA, UnsignedByte))
	assert.Equal(t, 3, BytesPerPixel(RGB, UnsignedByte))
	assert.Equal(t, 16, BytesPerPixel(RGBA, Float))
	assert.Equal(t, 8, BytesPerPixel(RGBA, HalfFloat))
	assert.Equal(t, 2, BytesPerPixel(RGB, UnsignedShort565))
	assert.Equal(t, 0, BytesPerPixel(RGBA, Enum(0)))
}

func TestBytes(t *testing.T) {
	assert.Nil(t, Bytes[float32](nil))
	b := Bytes([]float32{1, 2})
	assert.Len(t, b, 8)
	assert.Len(t, Bytes([]uint16{1, 2, 3}), 6)
	assert.NotNil(t, Bytes([]uint8{}))
}

func TestFlipRows(t *testing.T) {
	p := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	FlipRows(p, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, p)
}

func TestPremultiplyUnsignedByte(t *testing.T) {
	p := []byte{255, 128, 0, 128, 10, 20, 30, 255}
	require.True(t, Premultiply(p, RGBA, UnsignedByte))
	assert.Equal(t, []byte{128, 64, 0, 128, 10, 20, 30, 255}, p)
}

func TestPremultiplyFloat(t *testing.T) {
	px := []float32{1, 0.5, 0.25, 0.5}
	require.True(t, Premultiply(Bytes(px), RGBA, Float))
	assert.Equal(t, []float32{0.5, 0.25, 0.125, 0.5}, px)
}

func TestPremultiplyIgnoresRGB(t *testing.T) {
	p := []byte{255, 255, 255}
	assert.False(t, Premultiply(p, RGB, UnsignedByte))
	assert.Equal(t, []byte{255, 255, 255}, p)
}

func TestTransformKeepsInput(t *testing.T) {
	in := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	out := Transform(in, 1, 2, RGBA, UnsignedByte, PixelStore{FlipY: true})
	assert.Equal(t, []byte{5, 6, 7, 8, 1, 2, 3, 4}, out)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, in)
}

func TestTransformNoop(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	out := Transform(in, 1, 1, RGBA, UnsignedByte, PixelStore{})
	assert.Same(t, &in[0], &out[0])
	assert.Nil(t, Transform(nil, 4, 4, RGBA, UnsignedByte, PixelStore{FlipY: true}))
}
