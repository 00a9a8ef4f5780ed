// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"fmt"

	"glcube/glh"
)

// Face selects one of the six images of a cube map.
type Face int

const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// Faces is the number of faces of a cube map.
const Faces = 6

var faceNames = [Faces]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

func (f Face) Valid() bool {
	return f >= PositiveX && f <= NegativeZ
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Target is the upload target of the face.
func (f Face) Target() glh.Enum {
	return glh.TextureCubeMapPositiveX + glh.Enum(f)
}
