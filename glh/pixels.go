// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Pixel lists the element types a raw pixel buffer can be made of.
type Pixel interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32
}

// Bytes reinterprets a typed pixel buffer as bytes without copying.
// A nil slice stays nil so it still means "allocate only".
func Bytes[T Pixel](s []T) []byte {
	if s == nil {
		return nil
	}
	if len(s) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// Components returns the number of channels of a pixel format.
func Components(format Enum) int {
	switch format {
	case RGBA:
		return 4
	case RGB:
		return 3
	case RG, LuminanceAlpha:
		return 2
	case Red, Alpha, Luminance:
		return 1
	}
	return 0
}

// BytesPerPixel returns the size of one source pixel for the format/type
// pair, or 0 if the combination is unknown.
func BytesPerPixel(format, xtype Enum) int {
	switch xtype {
	case UnsignedShort565, UnsignedShort4444, UnsignedShort5551:
		return 2
	case UnsignedByte, Byte:
		return Components(format)
	case UnsignedShort, Short, HalfFloat:
		return 2 * Components(format)
	case UnsignedInt, Int, Float:
		return 4 * Components(format)
	}
	return 0
}

// FlipRows reverses the row order of an image in place.
func FlipRows(pixels []byte, rowBytes, height int) {
	if rowBytes <= 0 || height < 2 || len(pixels) < rowBytes*height {
		return
	}
	tmp := make([]byte, rowBytes)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pixels[top*rowBytes : (top+1)*rowBytes]
		b := pixels[bottom*rowBytes : (bottom+1)*rowBytes]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}

// Premultiply multiplies the color channels of RGBA pixels by their alpha in
// place. Only RGBA with UnsignedByte or Float channels is handled; it reports
// whether the data was changed.
func Premultiply(pixels []byte, format, xtype Enum) bool {
	if format != RGBA {
		return false
	}
	switch xtype {
	case UnsignedByte:
		for i := 0; i+3 < len(pixels); i += 4 {
			a := uint32(pixels[i+3])
			pixels[i] = uint8((uint32(pixels[i])*a + 127) / 255)
			pixels[i+1] = uint8((uint32(pixels[i+1])*a + 127) / 255)
			pixels[i+2] = uint8((uint32(pixels[i+2])*a + 127) / 255)
		}
		return true
	case Float:
		// float buffers come from Bytes, which keeps the host byte order
		ne := binary.NativeEndian
		f := func(o int) float32 { return math.Float32frombits(ne.Uint32(pixels[o:])) }
		for i := 0; i+15 < len(pixels); i += 16 {
			a := f(i + 12)
			for c := 0; c < 3; c++ {
				o := i + 4*c
				ne.PutUint32(pixels[o:], math.Float32bits(f(o)*a))
			}
		}
		return true
	}
	return false
}

// Transform applies store to a copy of pixels and returns it. pixels itself
// is never modified. Without any transform the input is returned as is.
func Transform(pixels []byte, width, height int, format, xtype Enum, store PixelStore) []byte {
	if pixels == nil || (!store.FlipY && !store.PremultiplyAlpha) {
		return pixels
	}
	out := make([]byte, len(pixels))
	copy(out, pixels)
	if store.PremultiplyAlpha {
		Premultiply(out, format, xtype)
	}
	if store.FlipY {
		FlipRows(out, width*BytesPerPixel(format, xtype), height)
	}
	return out
}
