// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads Quake .pak archives.
package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

const entrySize = 64

// Pack is an opened archive. It implements fs.FS, directories are implied
// by the slash separated entry names.
type Pack struct {
	f     *os.File
	files map[string]*qfile
	name  string
	mod   time.Time
}

type qfile struct {
	offset int64
	size   int64
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

// Names returns the entry names in sorted order.
func (p *Pack) Names() []string {
	n := make([]string, 0, len(p.files))
	for k := range p.files {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Open opens the entry name. Only regular files can be opened.
func (p *Pack) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	q, ok := p.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &file{
		SectionReader: io.NewSectionReader(p.f, q.offset, q.size),
		info:          fileInfo{name: path.Base(name), size: q.size, mod: p.mod},
	}, nil
}

// ReadFile implements fs.ReadFileFS.
func (p *Pack) ReadFile(name string) ([]byte, error) {
	f, err := p.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

type file struct {
	*io.SectionReader
	info fileInfo
}

func (f *file) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

func (*file) Close() error {
	return nil
}

type fileInfo struct {
	name string // base name of the file
	size int64
	mod  time.Time
}

func (f *fileInfo) Name() string {
	return f.name
}
func (f *fileInfo) Size() int64 {
	return f.size
}
func (f *fileInfo) Mode() fs.FileMode {
	return 0o444
}
func (f *fileInfo) ModTime() time.Time {
	return f.mod
}
func (f *fileInfo) IsDir() bool {
	return false
}
func (f *fileInfo) Sys() any {
	return nil
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return err
	}
	if !bytes.Equal([]byte("PACK"), h.ID[:]) {
		return errors.New("not a pack")
	}
	if h.Offset < 0 || h.Size < 0 {
		return errors.New("bad directory")
	}
	if _, err := p.f.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return err
	}
	filenum := h.Size / entrySize
	p.files = make(map[string]*qfile, filenum)
	for i := int32(0); i < filenum; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return errors.Wrap(err, "directory")
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		// some tools write backslashes
		name := strings.ReplaceAll(string(e.Name[:n]), "\\", "/")
		if p.files[name] != nil {
			return errors.Errorf("file %v in pack is not unique", name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

// Open opens and indexes the pak file name.
func Open(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if fi, err := f.Stat(); err == nil {
		p.mod = fi.ModTime()
	}
	if err := p.init(); err != nil {
		p.Close()
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// Write writes a pak containing files to w. Entries are written in sorted
// name order.
func Write(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for n := range files {
		if len(n) >= len(entry{}.Name) {
			return errors.Errorf("name %v too long", n)
		}
		names = append(names, n)
	}
	sort.Strings(names)
	offset := int32(binary.Size(header{}))
	entries := make([]entry, 0, len(names))
	for _, n := range names {
		e := entry{Offset: offset, Size: int32(len(files[n]))}
		copy(e.Name[:], n)
		entries = append(entries, e)
		offset += e.Size
	}
	h := header{Offset: offset, Size: int32(len(entries) * entrySize)}
	copy(h.ID[:], "PACK")
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := w.Write(files[n]); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, entries)
}
