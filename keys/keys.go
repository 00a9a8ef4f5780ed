// SPDX-License-Identifier: GPL-2.0-or-later

// Package keys binds keys to console text.
package keys

import (
	"fmt"
	"io"
	"sort"

	"glcube/cmd"
	"glcube/keycode"

	"github.com/pkg/errors"
)

type Bindings struct {
	b map[keycode.KeyCode]string
}

func New() *Bindings {
	return &Bindings{b: make(map[keycode.KeyCode]string)}
}

// Bind sets the text run when k is pressed. Empty text unbinds.
func (b *Bindings) Bind(k keycode.KeyCode, text string) {
	if text == "" {
		delete(b.b, k)
		return
	}
	b.b[k] = text
}

// BindName is Bind with the key given by name.
func (b *Bindings) BindName(name, text string) error {
	k := keycode.StringToKey(name)
	if k == keycode.NONE {
		return errors.Errorf("\"%s\" isn't a valid key", name)
	}
	b.Bind(k, text)
	return nil
}

func (b *Bindings) Binding(k keycode.KeyCode) (string, bool) {
	t, ok := b.b[k]
	return t, ok
}

func (b *Bindings) UnbindAll() {
	clear(b.b)
}

// List writes the bindings sorted by key name.
func (b *Bindings) List(w io.Writer) {
	names := make([]string, 0, len(b.b))
	byName := make(map[string]string, len(b.b))
	for k, t := range b.b {
		n := keycode.KeyToString(k)
		names = append(names, n)
		byName[n] = t
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "   %s \"%s\"\n", n, byName[n])
	}
	fmt.Fprintf(w, "%d bindings\n", len(names))
}

// AddCommands registers bind, unbind, unbindall and bindlist. Output goes
// to w.
func (b *Bindings) AddCommands(c *cmd.Commands, w func() io.Writer) error {
	bind := func(a cmd.Arguments) error {
		args := a.Args()
		switch len(args) {
		case 1:
			fmt.Fprintf(w(), "bind <key> [command] : attach a command to a key\n")
			return nil
		case 2:
			k := keycode.StringToKey(args[1].String())
			if k == keycode.NONE {
				return errors.Errorf("\"%s\" isn't a valid key", args[1])
			}
			if t, ok := b.Binding(k); ok {
				fmt.Fprintf(w(), "\"%s\" = \"%s\"\n", args[1], t)
			} else {
				fmt.Fprintf(w(), "\"%s\" is not bound\n", args[1])
			}
			return nil
		}
		// everything after the key name, keeping quotes of later words
		k := args[1].String()
		rest := cmd.Parse(a.ArgumentString())
		return b.BindName(k, rest.ArgumentString())
	}
	unbind := func(a cmd.Arguments) error {
		if len(a.Args()) != 2 {
			fmt.Fprintf(w(), "unbind <key> : remove commands from a key\n")
			return nil
		}
		return b.BindName(a.Argv(1).String(), "")
	}
	for _, e := range []struct {
		name string
		f    cmd.Func
	}{
		{"bind", bind},
		{"unbind", unbind},
		{"unbindall", func(cmd.Arguments) error {
			b.UnbindAll()
			return nil
		}},
		{"bindlist", func(cmd.Arguments) error {
			b.List(w())
			return nil
		}},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}
