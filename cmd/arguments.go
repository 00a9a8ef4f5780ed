// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"unicode"
)

// Arg is a single token of a command line.
type Arg struct {
	a string
}

func (a Arg) String() string {
	return a.a
}

func (a Arg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a Arg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a Arg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []Arg
	// the trimmed line
	full string
}

// Argv returns argument i or an empty Arg if there is none.
func (c *Arguments) Argv(i int) Arg {
	if i < 0 || i >= len(c.args) {
		return Arg{}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []Arg {
	return c.args
}

// ArgumentString returns everything after the command name, without the
// quotes of a quoted first argument.
func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single command line into arguments. Double quotes group
// words, "//" starts a comment that runs to the end of the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []Arg{}
	rest := args.full
	for {
		rest = strings.TrimLeft(rest, " \t")
		switch {
		case rest == "", rest[0] == '\r', rest[0] == '\n', strings.HasPrefix(rest, "//"):
			return
		case rest[0] == '"':
			end := strings.IndexAny(rest[1:], "\"\n")
			if end < 0 {
				// unterminated, take the rest
				args.args = append(args.args, Arg{rest[1:]})
				return
			}
			args.args = append(args.args, Arg{rest[1 : end+1]})
			rest = rest[end+2:]
		default:
			end := strings.IndexFunc(rest, func(r rune) bool { return r <= ' ' })
			if end < 0 {
				end = len(rest)
			}
			args.args = append(args.args, Arg{rest[:end]})
			rest = rest[end:]
		}
	}
}
