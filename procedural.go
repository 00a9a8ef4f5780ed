// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"glcube/texture"
)

const (
	checkerSize = 256
	checkerCell = 32
)

// faceColors tint the generated faces, in face order +X..-Z.
var faceColors = [texture.Faces][3]uint8{
	{255, 64, 64},
	{64, 255, 255},
	{64, 255, 64},
	{255, 64, 255},
	{64, 64, 255},
	{255, 255, 64},
}

// checkerFaces returns one RGBA buffer of size x size texels per face, a
// checker board of cell sized squares alternating the face color with a
// dark shade. phase shifts the board horizontally.
func checkerFaces(size, cell, phase int) [][]uint8 {
	faces := make([][]uint8, texture.Faces)
	for f := range faces {
		buf := make([]uint8, size*size*4)
		c := faceColors[f]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				i := (y*size + x) * 4
				if ((x+phase)/cell+y/cell)%2 == 0 {
					buf[i], buf[i+1], buf[i+2] = c[0], c[1], c[2]
				} else {
					buf[i], buf[i+1], buf[i+2] = c[0]/4, c[1]/4, c[2]/4
				}
				buf[i+3] = 255
			}
		}
		faces[f] = buf
	}
	return faces
}
