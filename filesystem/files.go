// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem layers game directories and their pak files into one
// read only fs.FS, the way Quake searches for its data.
package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"glcube/pack"

	"github.com/pkg/errors"
)

type layer struct {
	name string
	fsys fs.FS
	c    io.Closer
}

// SearchPath is an fs.FS looking through its layers from the most recently
// added game directory down to the base directory. Within one directory
// quakespasm.pak shadows pakN, pakN shadows pak(N-1) and all paks shadow
// loose files. A quakespasm.pak in the base directory shadows everything,
// including game directories added later.
type SearchPath struct {
	mutex  sync.RWMutex
	top    []layer
	layers []layer // highest priority first
}

// New returns a search path over baseDir/id1, extended by baseDir/game if
// game is not empty.
func New(baseDir, game string) (*SearchPath, error) {
	s := &SearchPath{}
	if err := s.AddGameDir(filepath.Join(baseDir, "id1")); err != nil {
		return nil, err
	}
	if game != "" {
		if err := s.AddGameDir(filepath.Join(baseDir, game)); err != nil {
			s.Close()
			return nil, err
		}
	}
	if p, err := pack.Open(filepath.Join(baseDir, "quakespasm.pak")); err == nil {
		s.top = []layer{{name: p.String(), fsys: p, c: p}}
	}
	return s, nil
}

// all returns top and layers in search order. The caller holds mutex.
func (s *SearchPath) all() []layer {
	return append(append([]layer{}, s.top...), s.layers...)
}

// AddGameDir puts dir and its paks in front of the search path.
func (s *SearchPath) AddGameDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return errors.Errorf("%v is not a directory", dir)
	}
	l := []layer{{name: dir, fsys: os.DirFS(dir)}}
	// 1) Add pak[i].pak files to the beginning order high number to low number
	// 2) add quakespasm.pak to the beginning
	for i := 0; ; i++ {
		p, err := pack.Open(filepath.Join(dir, fmt.Sprintf("pak%d.pak", i)))
		if err != nil {
			break
		}
		l = append([]layer{{name: p.String(), fsys: p, c: p}}, l...)
	}
	if p, err := pack.Open(filepath.Join(dir, "quakespasm.pak")); err == nil {
		l = append([]layer{{name: p.String(), fsys: p, c: p}}, l...)
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.layers = append(l, s.layers...)
	return nil
}

// Open returns name from the first layer having it.
func (s *SearchPath) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, l := range s.all() {
		f, err := l.fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Layers returns the names of the layers, highest priority first.
func (s *SearchPath) Layers() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	all := s.all()
	n := make([]string, 0, len(all))
	for _, l := range all {
		n = append(n, l.name)
	}
	return n
}

func (s *SearchPath) String() string {
	return strings.Join(s.Layers(), ", ")
}

// Close closes all pak files and reports the first failure. The search
// path is empty afterwards.
func (s *SearchPath) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	var first error
	for _, l := range s.all() {
		if l.c == nil {
			continue
		}
		if err := l.c.Close(); err != nil && first == nil {
			first = errors.Wrap(err, l.name)
		}
	}
	s.top = nil
	s.layers = nil
	return first
}
