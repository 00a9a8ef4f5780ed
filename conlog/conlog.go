// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"io"
	"log"
	"strings"
)

var (
	p = log.Printf
)

// SetPrintf replaces the sink of Printf. nil restores log.Printf.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// Writer returns an io.Writer that sends every written line to Printf.
func Writer() io.Writer {
	return &writer{}
}

type writer struct {
	buf strings.Builder
}

func (w *writer) Write(b []byte) (int, error) {
	w.buf.Write(b)
	s := w.buf.String()
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return len(b), nil
	}
	for _, l := range strings.Split(s[:i], "\n") {
		Printf("%s\n", l)
	}
	w.buf.Reset()
	w.buf.WriteString(s[i+1:])
	return len(b), nil
}
