// SPDX-License-Identifier: GPL-2.0-or-later

// Package glhtest provides a fake glh.Context that records every call and
// models the binding state a real context would have.
package glhtest

import (
	"fmt"

	"glcube/glh"
)

// Call is one recorded context call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Upload is one recorded TexImage2D call.
type Upload struct {
	Texture        glh.TexID
	Target         glh.Enum
	Level          int
	InternalFormat glh.Enum
	Width, Height  int
	Format, Type   glh.Enum
	Pixels         []byte
	Store          glh.PixelStore
}

// Recorder implements glh.Context.
type Recorder struct {
	Calls   []Call
	Uploads []Upload

	// UploadErr, when set, is returned by the next TexImage2D call which
	// then records nothing.
	UploadErr error

	next     glh.TexID
	live     map[glh.TexID]bool
	deleted  map[glh.TexID]bool
	unit     int
	bindings map[int]map[glh.Enum]glh.TexID
	params   map[glh.TexID]map[glh.Enum]glh.Enum
	mipmaps  map[glh.TexID]int
}

func NewRecorder() *Recorder {
	return &Recorder{
		live:     make(map[glh.TexID]bool),
		deleted:  make(map[glh.TexID]bool),
		bindings: make(map[int]map[glh.Enum]glh.TexID),
		params:   make(map[glh.TexID]map[glh.Enum]glh.Enum),
		mipmaps:  make(map[glh.TexID]int),
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) CreateTexture() glh.TexID {
	r.next++
	r.live[r.next] = true
	r.record("CreateTexture", r.next)
	return r.next
}

func (r *Recorder) DeleteTexture(id glh.TexID) {
	r.record("DeleteTexture", id)
	delete(r.live, id)
	r.deleted[id] = true
	for _, b := range r.bindings {
		for t, bound := range b {
			if bound == id {
				b[t] = glh.NoTexture
			}
		}
	}
}

func (r *Recorder) ActiveTexture(unit int) {
	r.record("ActiveTexture", unit)
	r.unit = unit
}

func (r *Recorder) BindTexture(target glh.Enum, id glh.TexID) {
	r.record("BindTexture", target, id)
	b, ok := r.bindings[r.unit]
	if !ok {
		b = make(map[glh.Enum]glh.TexID)
		r.bindings[r.unit] = b
	}
	b[target] = id
}

// bindingTarget maps a cube face target onto the cube map binding point.
func bindingTarget(target glh.Enum) glh.Enum {
	if target >= glh.TextureCubeMapPositiveX && target <= glh.TextureCubeMapNegativeZ {
		return glh.TextureCubeMap
	}
	return target
}

func (r *Recorder) TexImage2D(target glh.Enum, level int, internalFormat glh.Enum, width, height int,
	format, xtype glh.Enum, pixels []byte, store glh.PixelStore) error {
	if err := r.UploadErr; err != nil {
		r.UploadErr = nil
		return err
	}
	r.record("TexImage2D", target, level, width, height, store)
	var p []byte
	if pixels != nil {
		p = append([]byte{}, pixels...)
	}
	r.Uploads = append(r.Uploads, Upload{
		Texture:        r.Bound(r.unit, bindingTarget(target)),
		Target:         target,
		Level:          level,
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
		Format:         format,
		Type:           xtype,
		Pixels:         p,
		Store:          store,
	})
	return nil
}

func (r *Recorder) TexParameteri(target, pname, param glh.Enum) {
	r.record("TexParameteri", target, pname, param)
	id := r.Bound(r.unit, target)
	p, ok := r.params[id]
	if !ok {
		p = make(map[glh.Enum]glh.Enum)
		r.params[id] = p
	}
	p[pname] = param
}

func (r *Recorder) GenerateMipmap(target glh.Enum) {
	r.record("GenerateMipmap", target)
	r.mipmaps[r.Bound(r.unit, target)]++
}

// Bound returns the texture bound to target on unit.
func (r *Recorder) Bound(unit int, target glh.Enum) glh.TexID {
	return r.bindings[unit][target]
}

// ActiveUnit returns the currently selected texture unit.
func (r *Recorder) ActiveUnit() int {
	return r.unit
}

// Param returns the value of a texture parameter set on id.
func (r *Recorder) Param(id glh.TexID, pname glh.Enum) (glh.Enum, bool) {
	v, ok := r.params[id][pname]
	return v, ok
}

// Mipmaps returns how often mipmap generation was requested for id.
func (r *Recorder) Mipmaps(id glh.TexID) int {
	return r.mipmaps[id]
}

// Live reports whether id was created and not yet deleted.
func (r *Recorder) Live(id glh.TexID) bool {
	return r.live[id]
}

// Deleted reports whether id was deleted.
func (r *Recorder) Deleted(id glh.TexID) bool {
	return r.deleted[id]
}

// UploadsFor returns the uploads that went into texture id.
func (r *Recorder) UploadsFor(id glh.TexID) []Upload {
	var u []Upload
	for _, up := range r.Uploads {
		if up.Texture == id {
			u = append(u, up)
		}
	}
	return u
}

// Ops returns the names of all recorded calls.
func (r *Recorder) Ops() []string {
	ops := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// Reset forgets the recorded calls but keeps the context state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Uploads = nil
}
