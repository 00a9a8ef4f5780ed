// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"image"

	"glcube/glh"

	"github.com/pkg/errors"
)

// MipmapPolicy decides whether BuildFromImages generates mipmaps.
type MipmapPolicy int

const (
	// MipmapPowerOfTwo generates mipmaps and repeats only if the first
	// image has power of two dimensions, otherwise it clamps. Older
	// hardware can not mipmap or repeat other sizes.
	MipmapPowerOfTwo MipmapPolicy = iota
	// MipmapAlways generates mipmaps and repeats regardless of size.
	MipmapAlways
	// MipmapNever never generates mipmaps and always clamps.
	MipmapNever
)

var policyNames = []string{"pot", "always", "never"}

func (p MipmapPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

// ParseMipmapPolicy parses the names used by String.
func ParseMipmapPolicy(s string) (MipmapPolicy, error) {
	for i, n := range policyNames {
		if n == s {
			return MipmapPolicy(i), nil
		}
	}
	return MipmapPowerOfTwo, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}

func (p MipmapPolicy) mipmap(width, height int) bool {
	switch p {
	case MipmapAlways:
		return true
	case MipmapNever:
		return false
	}
	return isPowerOf2(width) && isPowerOf2(height)
}

type BuildOptions struct {
	Flip             bool
	PremultiplyAlpha bool
	Unit             int
	// Format defaults to DefaultFormat.
	Format Format
	Mipmap MipmapPolicy
}

// BuildFromImages creates a cube texture from images given as level 0 faces
// +X..-Z, followed by the six faces of level 1 and so on. Only complete
// levels are uploaded, trailing images that do not fill a level are
// ignored. Depending on opts.Mipmap the texture then gets a mipmap chain and
// repeat wrapping or clamp wrapping, and always linear filtering.
func BuildFromImages(ctx glh.Context, images []image.Image, opts BuildOptions) (*CubeTexture, error) {
	if len(images) == 0 || images[0] == nil {
		return nil, ErrNoImages
	}
	t := NewCube(ctx, opts.Unit, -1, -1, opts.Format)
	t.SetPremultiplyAlpha(opts.PremultiplyAlpha)
	levels := len(images) / Faces
	for level := 0; level < levels; level++ {
		for face := PositiveX; face <= NegativeZ; face++ {
			if err := t.Upload(images[level*Faces+int(face)], opts.Flip, face, level); err != nil {
				t.Destroy()
				return nil, err
			}
		}
	}

	s := images[0].Bounds().Size()
	if opts.Mipmap.mipmap(s.X, s.Y) {
		t.EnableMipmap()
		t.EnableWrapRepeat()
	} else {
		t.EnableWrapClamp()
	}
	t.EnableLinearScaling()
	return t, nil
}

// BuildFromBuffers creates a cube texture from one width x height buffer per
// face. Missing or nil buffers leave the face allocated but uninitialized,
// buffers beyond the sixth are ignored. No filtering or wrapping is set.
func BuildFromBuffers[T glh.Pixel](ctx glh.Context, buffers [][]T, width, height int, opts BuildOptions) (*CubeTexture, error) {
	t := NewCube(ctx, opts.Unit, -1, -1, opts.Format)
	t.SetPremultiplyAlpha(opts.PremultiplyAlpha)
	for face := PositiveX; face <= NegativeZ; face++ {
		var data []byte
		if int(face) < len(buffers) {
			data = glh.Bytes(buffers[face])
		}
		if err := t.UploadDataSize(data, face, width, height, opts.Flip, 0); err != nil {
			t.Destroy()
			return nil, err
		}
	}
	return t, nil
}
