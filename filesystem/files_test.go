// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"glcube/pack"
)

func writePak(t *testing.T, name string, files map[string][]byte) {
	t.Helper()
	var b bytes.Buffer
	if err := pack.Write(&b, files); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// testdir builds
//
//	id1/pak0.pak: doc1 doc2 doc3
//	id1/pak1.pak: doc1 doc2
//	id1/doc1.txt id1/doc5.txt
//	mod/doc3.txt
func testdir(t *testing.T) string {
	base := t.TempDir()
	id1 := filepath.Join(base, "id1")
	writeFile(t, filepath.Join(id1, "doc1.txt"), "loose doc1")
	writeFile(t, filepath.Join(id1, "doc5.txt"), "good file5\n")
	writePak(t, filepath.Join(id1, "pak0.pak"), map[string][]byte{
		"doc1.txt": []byte("this is the first doc\r\n"),
		"doc2.txt": []byte("this is the second doc"),
		"doc3.txt": []byte("third"),
	})
	writePak(t, filepath.Join(id1, "pak1.pak"), map[string][]byte{
		"doc1.txt": []byte("this is the first doc 2. version\r\n"),
		"doc2.txt": []byte("this is the second doc 2. version"),
	})
	writeFile(t, filepath.Join(base, "mod", "doc3.txt"), "mod third")
	return base
}

func read(t *testing.T, fsys fs.FS, name string) string {
	t.Helper()
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("No file %v: %v", name, err)
	}
	return string(b)
}

func TestFilesystemOrder(t *testing.T) {
	s, err := New(testdir(t), "")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := read(t, s, "doc1.txt"); got != "this is the first doc 2. version\r\n" {
		t.Errorf("doc1.txt: %q", got)
	}
	if got := read(t, s, "doc2.txt"); got != "this is the second doc 2. version" {
		t.Errorf("doc2.txt: %q", got)
	}
	if got := read(t, s, "doc3.txt"); got != "third" {
		t.Errorf("doc3.txt: %q", got)
	}
	if got := read(t, s, "doc5.txt"); got != "good file5\n" {
		t.Errorf("doc5.txt: %q", got)
	}
	if _, err := s.Open("doc9.txt"); !os.IsNotExist(err) {
		t.Errorf("Open(doc9.txt) = %v", err)
	}
	if l := s.Layers(); len(l) != 3 {
		t.Errorf("Layers() = %v", l)
	}
}

func TestFilesystemGame(t *testing.T) {
	s, err := New(testdir(t), "mod")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := read(t, s, "doc3.txt"); got != "mod third" {
		t.Errorf("doc3.txt: %q", got)
	}
	if got := read(t, s, "doc2.txt"); got != "this is the second doc 2. version" {
		t.Errorf("doc2.txt: %q", got)
	}
}

func TestFilesystemMissingBase(t *testing.T) {
	if _, err := New(t.TempDir(), ""); err == nil {
		t.Errorf("New without id1 succeeded")
	}
}

func TestFilesystemBaseQuakespasm(t *testing.T) {
	base := testdir(t)
	writeFile(t, filepath.Join(base, "mod", "doc2.txt"), "mod second")
	writePak(t, filepath.Join(base, "quakespasm.pak"), map[string][]byte{
		"doc2.txt": []byte("qs second"),
		"doc5.txt": []byte("qs fifth"),
	})
	s, err := New(base, "mod")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := read(t, s, "doc2.txt"); got != "qs second" {
		t.Errorf("doc2.txt: %q", got)
	}
	if got := read(t, s, "doc5.txt"); got != "qs fifth" {
		t.Errorf("doc5.txt: %q", got)
	}
	if got := read(t, s, "doc3.txt"); got != "mod third" {
		t.Errorf("doc3.txt: %q", got)
	}
	if l := s.Layers(); len(l) != 5 || l[0] != filepath.Join(base, "quakespasm.pak") {
		t.Errorf("Layers() = %v", l)
	}

	if err := s.AddGameDir(filepath.Join(base, "mod")); err != nil {
		t.Fatal(err)
	}
	if got := read(t, s, "doc2.txt"); got != "qs second" {
		t.Errorf("doc2.txt after AddGameDir: %q", got)
	}
}

func TestFilesystemDirQuakespasm(t *testing.T) {
	base := testdir(t)
	writePak(t, filepath.Join(base, "id1", "quakespasm.pak"), map[string][]byte{
		"doc1.txt": []byte("qs first"),
	})
	s, err := New(base, "")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := read(t, s, "doc1.txt"); got != "qs first" {
		t.Errorf("doc1.txt: %q", got)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if l := s.Layers(); len(l) != 0 {
		t.Errorf("Layers() after Close = %v", l)
	}
}
