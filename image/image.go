// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"glcube/glh"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// extensions are tried in this order when Load gets a name without one.
var extensions = []string{".tga", ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp", ".gif"}

// Load reads an image file. If name has no extension the known extensions
// are tried in turn.
func Load(name string) (image.Image, error) {
	return LoadFS(osFS{}, filepath.ToSlash(name))
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys fs.FS, name string) (image.Image, error) {
	if path.Ext(name) != "" {
		return loadFile(fsys, name)
	}
	for _, ext := range extensions {
		if _, err := fs.Stat(fsys, name+ext); err == nil {
			img, err := loadFile(fsys, name+ext)
			if err != nil {
				log.Printf("Failed to load %v%v, %v", name, ext, err)
			}
			return img, err
		}
	}
	return nil, errors.Errorf("image %v not found", name)
}

// osFS opens names as given, fs.ValidPath is not enforced.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func loadFile(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f, path.Ext(name))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %v", name)
	}
	return img, nil
}

// Decode decodes an image. TGA has no magic number so it is selected by
// ext, everything else is detected from the data.
func Decode(r io.Reader, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		return DecodeTGA(r)
	}
	img, _, err := image.Decode(r)
	return img, err
}

// skySuf are the classic skybox name suffixes in cube face order
// +X, -X, +Y, -Y, +Z, -Z.
var skySuf = [6]string{"rt", "lf", "up", "dn", "bk", "ft"}

// LoadSkyBox loads the six face images dir/<name><suffix>.
func LoadSkyBox(dir, name string) ([]image.Image, error) {
	return LoadSkyBoxFS(osFS{}, filepath.ToSlash(dir), name)
}

// LoadSkyBoxFS is LoadSkyBox reading from fsys.
func LoadSkyBoxFS(fsys fs.FS, dir, name string) ([]image.Image, error) {
	imgs := make([]image.Image, 0, len(skySuf))
	for _, suf := range skySuf {
		img, err := LoadFS(fsys, path.Join(dir, name+suf))
		if err != nil {
			return nil, errors.Wrapf(err, "skybox %v", name)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// NRGBA returns img as tightly packed non premultiplied RGBA. Images that
// already are in that form are returned without copying.
func NRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// Pixels converts img into the source layout given by format and xtype.
// Only 8 bit RGBA, RGB and single channel layouts can be produced from an
// image.Image; other layouts have to be uploaded as raw buffers.
func Pixels(img image.Image, format, xtype glh.Enum) ([]byte, error) {
	if xtype != glh.UnsignedByte {
		return nil, errors.Errorf("can not convert image to %v pixels", xtype)
	}
	n := NRGBA(img)
	switch format {
	case glh.RGBA:
		return n.Pix, nil
	case glh.RGB:
		out := make([]byte, 0, len(n.Pix)/4*3)
		for i := 0; i < len(n.Pix); i += 4 {
			out = append(out, n.Pix[i], n.Pix[i+1], n.Pix[i+2])
		}
		return out, nil
	case glh.Red, glh.Luminance:
		return channel(n.Pix, 0), nil
	case glh.Alpha:
		return channel(n.Pix, 3), nil
	}
	return nil, errors.Errorf("can not convert image to %v pixels", format)
}

func channel(pix []byte, c int) []byte {
	out := make([]byte, 0, len(pix)/4)
	for i := c; i < len(pix); i += 4 {
		out = append(out, pix[i])
	}
	return out
}
