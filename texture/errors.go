// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidFace   = errors.New("invalid cube map face")
	ErrInvalidLevel  = errors.New("invalid mipmap level")
	ErrShortBuffer   = errors.New("pixel buffer too small")
	ErrUnknownSize   = errors.New("texture size not known")
	ErrDestroyed     = errors.New("texture destroyed")
	ErrNoImages      = errors.New("no images")
	ErrUnknownMode   = errors.New("unknown texture mode")
	ErrUnknownPolicy = errors.New("unknown mipmap policy")
)
