// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"image"
	"log"

	"glcube/glh"
	qimage "glcube/image"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CubeTexture owns one cube map texture object of a glh.Context.
//
// Every method brackets its context calls with a bind and an unbind of its
// own unit, so several cube textures can be used in any interleaving as long
// as everything runs on the thread of the context.
type CubeTexture struct {
	base
	id        uuid.UUID
	name      string
	mipmap    bool
	destroyed bool
}

// NewCube allocates the texture object. width and height may be -1 when
// the size is only known after the first level 0 upload.
func NewCube(ctx glh.Context, unit, width, height int, f Format) *CubeTexture {
	return &CubeTexture{
		base: base{
			ctx:    ctx,
			handle: ctx.CreateTexture(),
			unit:   unit,
			width:  width,
			height: height,
			format: f.orDefault(),
		},
		id: uuid.Must(uuid.NewV7()),
	}
}

// NewCubeDefault allocates an 8 bit RGBA cube texture on unit 0.
func NewCubeDefault(ctx glh.Context) *CubeTexture {
	return NewCube(ctx, 0, -1, -1, DefaultFormat)
}

func (t *CubeTexture) ID() uuid.UUID {
	return t.id
}

func (t *CubeTexture) Name() string {
	return t.name
}

func (t *CubeTexture) SetName(n string) {
	t.name = n
}

// Mipmap reports whether mipmap generation was requested.
func (t *CubeTexture) Mipmap() bool {
	return t.mipmap
}

func (t *CubeTexture) Destroyed() bool {
	return t.destroyed
}

func (t *CubeTexture) Bind() *CubeTexture {
	return t.BindUnit(t.unit)
}

func (t *CubeTexture) BindUnit(unit int) *CubeTexture {
	if t.destroyed {
		log.Printf("cube texture %v: bind after destroy", t.id)
		return t
	}
	t.ctx.ActiveTexture(unit)
	t.ctx.BindTexture(glh.TextureCubeMap, t.handle)
	return t
}

func (t *CubeTexture) Unbind() *CubeTexture {
	return t.UnbindUnit(t.unit)
}

func (t *CubeTexture) UnbindUnit(unit int) *CubeTexture {
	t.ctx.ActiveTexture(unit)
	t.ctx.BindTexture(glh.TextureCubeMap, glh.NoTexture)
	return t
}

func (t *CubeTexture) check(face Face, level int) error {
	switch {
	case t.destroyed:
		return ErrDestroyed
	case !face.Valid():
		return errors.Wrapf(ErrInvalidFace, "face %d", int(face))
	case level < 0:
		return errors.Wrapf(ErrInvalidLevel, "level %d", level)
	}
	return nil
}

// Upload puts img into face at the given mipmap level. A level 0 upload
// makes the image size the size of the texture.
func (t *CubeTexture) Upload(img image.Image, flip bool, face Face, level int) error {
	if err := t.check(face, level); err != nil {
		return err
	}
	if img == nil {
		return errors.Wrapf(ErrNoImages, "face %v level %d", face, level)
	}
	pix, err := qimage.Pixels(img, t.format.Pixel, t.format.Type)
	if err != nil {
		return errors.Wrapf(err, "face %v level %d", face, level)
	}
	s := img.Bounds().Size()
	return t.upload(pix, face, s.X, s.Y, flip, level)
}

// UploadData puts a raw pixel buffer of the current texture size into face.
// A nil buffer only allocates the storage.
func (t *CubeTexture) UploadData(data []byte, face Face, flip bool, level int) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if t.width < 0 || t.height < 0 {
		return ErrUnknownSize
	}
	return t.UploadDataSize(data, face, t.width, t.height, flip, level)
}

// UploadDataSize is UploadData with an explicit size. A level 0 upload
// makes width and height the size of the texture.
func (t *CubeTexture) UploadDataSize(data []byte, face Face, width, height int, flip bool, level int) error {
	if err := t.check(face, level); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrUnknownSize, "%dx%d", width, height)
	}
	if data != nil {
		if need := width * height * t.format.BytesPerPixel(); len(data) < need {
			return errors.Wrapf(ErrShortBuffer, "face %v level %d: got %d bytes, need %d",
				face, level, len(data), need)
		}
	}
	return t.upload(data, face, width, height, flip, level)
}

func (t *CubeTexture) upload(pix []byte, face Face, width, height int, flip bool, level int) error {
	t.Bind()
	defer t.Unbind()
	err := t.ctx.TexImage2D(face.Target(), level, t.format.Internal, width, height,
		t.format.Pixel, t.format.Type, pix, t.store(flip))
	if err != nil {
		return errors.Wrapf(err, "upload face %v level %d", face, level)
	}
	if level == 0 {
		t.width = width
		t.height = height
	}
	return nil
}

func (t *CubeTexture) setParameters(pname []glh.Enum, param glh.Enum) {
	if t.destroyed {
		log.Printf("cube texture %v: parameter change after destroy", t.id)
		return
	}
	t.Bind()
	for _, p := range pname {
		t.ctx.TexParameteri(glh.TextureCubeMap, p, param)
	}
	t.Unbind()
}

func (t *CubeTexture) EnableLinearScaling() {
	t.SetMinFilter(true)
	t.SetMagFilter(true)
}

func (t *CubeTexture) EnableNearestScaling() {
	t.SetMinFilter(false)
	t.SetMagFilter(false)
}

// SetMinFilter selects the minification filter. With mipmaps enabled the
// mipmap variants are used.
func (t *CubeTexture) SetMinFilter(linear bool) {
	var f glh.Enum
	switch {
	case t.mipmap && linear:
		f = glh.LinearMipmapLinear
	case t.mipmap:
		f = glh.NearestMipmapNearest
	case linear:
		f = glh.Linear
	default:
		f = glh.Nearest
	}
	t.setParameters([]glh.Enum{glh.TextureMinFilter}, f)
}

func (t *CubeTexture) SetMagFilter(linear bool) {
	f := glh.Nearest
	if linear {
		f = glh.Linear
	}
	t.setParameters([]glh.Enum{glh.TextureMagFilter}, f)
}

// EnableMipmap generates the mipmap chain of all faces from level 0. All six
// faces need a level 0 image for the result to be defined.
func (t *CubeTexture) EnableMipmap() {
	if t.destroyed {
		log.Printf("cube texture %v: mipmap after destroy", t.id)
		return
	}
	t.Bind()
	t.mipmap = true
	t.ctx.GenerateMipmap(glh.TextureCubeMap)
	t.Unbind()
}

var wrapAxes = []glh.Enum{glh.TextureWrapS, glh.TextureWrapT, glh.TextureWrapR}

func (t *CubeTexture) EnableWrapClamp() {
	t.setParameters(wrapAxes, glh.ClampToEdge)
}

func (t *CubeTexture) EnableWrapRepeat() {
	t.setParameters(wrapAxes, glh.Repeat)
}

func (t *CubeTexture) EnableWrapMirrorRepeat() {
	t.setParameters(wrapAxes, glh.MirroredRepeat)
}

// Destroy deletes the texture object. Further calls are no-ops.
func (t *CubeTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.ctx.DeleteTexture(t.handle)
}
