// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"

	"github.com/pkg/errors"
)

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
	tgaTopOrigin    = 0x20
)

// DecodeTGA decodes uncompressed and run length encoded 24 and 32 bit
// true color TGA images.
func DecodeTGA(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)
	var header tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "invalid tga header")
	}
	if header.ImageType != tgaTrueColor && header.ImageType != tgaTrueColorRLE {
		return nil, errors.Errorf("tga type %d is not supported", header.ImageType)
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, errors.New("tga is not 24bit or 32bit")
	}
	if header.IDLength != 0 {
		// skip Image ID
		if _, err := br.Discard(int(header.IDLength)); err != nil {
			return nil, errors.Wrap(err, "tga image id")
		}
	}

	width, height := int(header.Width), int(header.Height)
	bpp := int(header.PixelSize) / 8
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))

	// pixels are stored BGR(A), rows bottom up unless tgaTopOrigin is set
	put := func(i int, px []byte) {
		y := i / width
		if header.Attributes&tgaTopOrigin == 0 {
			y = height - 1 - y
		}
		o := nrgba.PixOffset(i%width, y)
		nrgba.Pix[o+0] = px[2]
		nrgba.Pix[o+1] = px[1]
		nrgba.Pix[o+2] = px[0]
		if bpp == 4 {
			nrgba.Pix[o+3] = px[3]
		} else {
			nrgba.Pix[o+3] = 255
		}
	}

	px := make([]byte, bpp)
	n := width * height
	if header.ImageType == tgaTrueColor {
		for i := 0; i < n; i++ {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errors.Wrap(err, "not enough pixels")
			}
			put(i, px)
		}
		return nrgba, nil
	}

	for i := 0; i < n; {
		c, err := br.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "not enough packets")
		}
		count := int(c&0x7f) + 1
		if i+count > n {
			return nil, errors.New("tga packet overruns image")
		}
		if c&0x80 != 0 {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errors.Wrap(err, "not enough pixels")
			}
			for ; count > 0; count-- {
				put(i, px)
				i++
			}
			continue
		}
		for ; count > 0; count-- {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, errors.Wrap(err, "not enough pixels")
			}
			put(i, px)
			i++
		}
	}
	return nrgba, nil
}
