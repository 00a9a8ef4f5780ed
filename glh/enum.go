// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import "fmt"

// Enum is a GL enumeration value. The numeric values are shared by desktop
// OpenGL and WebGL so both backends pass them through unchanged.
type Enum uint32

const (
	Texture0 Enum = 0x84C0

	TextureCubeMap          Enum = 0x8513
	TextureCubeMapPositiveX Enum = 0x8515
	TextureCubeMapNegativeX Enum = 0x8516
	TextureCubeMapPositiveY Enum = 0x8517
	TextureCubeMapNegativeY Enum = 0x8518
	TextureCubeMapPositiveZ Enum = 0x8519
	TextureCubeMapNegativeZ Enum = 0x851A

	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	TextureWrapR     Enum = 0x8072

	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703

	ClampToEdge    Enum = 0x812F
	Repeat         Enum = 0x2901
	MirroredRepeat Enum = 0x8370

	// pixel formats
	Alpha          Enum = 0x1906
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	Luminance      Enum = 0x1909
	LuminanceAlpha Enum = 0x190A
	Red            Enum = 0x1903
	RG             Enum = 0x8227

	// sized internal formats
	R8          Enum = 0x8229
	RG8         Enum = 0x822B
	RGB8        Enum = 0x8051
	RGBA8       Enum = 0x8058
	SRGB8Alpha8 Enum = 0x8C43
	RGBA16F     Enum = 0x881A
	RGBA32F     Enum = 0x8814
	RGB16F      Enum = 0x881B
	RGB32F      Enum = 0x8815

	// data types
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
	HalfFloat     Enum = 0x140B

	UnsignedShort4444 Enum = 0x8033
	UnsignedShort5551 Enum = 0x8034
	UnsignedShort565  Enum = 0x8363
)

var enumNames = map[Enum]string{
	TextureCubeMap:       "GL_TEXTURE_CUBE_MAP",
	Nearest:              "GL_NEAREST",
	Linear:               "GL_LINEAR",
	NearestMipmapNearest: "GL_NEAREST_MIPMAP_NEAREST",
	LinearMipmapNearest:  "GL_LINEAR_MIPMAP_NEAREST",
	NearestMipmapLinear:  "GL_NEAREST_MIPMAP_LINEAR",
	LinearMipmapLinear:   "GL_LINEAR_MIPMAP_LINEAR",
	ClampToEdge:          "GL_CLAMP_TO_EDGE",
	Repeat:               "GL_REPEAT",
	MirroredRepeat:       "GL_MIRRORED_REPEAT",
	RGB:                  "GL_RGB",
	RGBA:                 "GL_RGBA",
	UnsignedByte:         "GL_UNSIGNED_BYTE",
	Float:                "GL_FLOAT",
	HalfFloat:            "GL_HALF_FLOAT",
}

func (e Enum) String() string {
	if n, ok := enumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}
