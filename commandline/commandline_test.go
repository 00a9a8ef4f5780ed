// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func TestBoolInt(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := boolInt{false, 4}
	b := boolInt{false, 5}
	c := boolInt{true, 6}
	d := boolInt{false, 7}
	e := boolInt{false, 8}
	f := boolInt{true, 9}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	flags.Var(&d, "d", "usage")
	flags.Var(&e, "e", "usage")
	flags.Var(&f, "f", "usage")
	if err := flags.Parse([]string{"-a", "-b=3", "-e=true", "-f=false"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if b.set != true {
		t.Errorf("b.set = %v", b.set)
	}
	if c.set != true {
		t.Errorf("c.set = %v", c.set)
	}
	if d.set != false {
		t.Errorf("d.set = %v", d.set)
	}
	if e.set != true {
		t.Errorf("e.set = %v", e.set)
	}
	if f.set != false {
		t.Errorf("f.set = %v", f.set)
	}
	if a.num != 4 {
		t.Errorf("a.num = %v", a.num)
	}
	if b.num != 3 {
		t.Errorf("b.num = %v", b.num)
	}
	if c.num != 6 {
		t.Errorf("c.num = %v", c.num)
	}
	if d.num != 7 {
		t.Errorf("d.num = %v", d.num)
	}
}

func TestAssignments(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var a assignments
	flags.Var(&a, "set", "usage")
	if err := flags.Parse([]string{"-set", "gl_flip=1", "-set=r_skyspeed=20"}); err != nil {
		t.Fatal(err)
	}
	if len(a) != 2 || a[0] != "gl_flip=1" || a[1] != "r_skyspeed=20" {
		t.Errorf("assignments = %v", a)
	}
	if err := flags.Parse([]string{"-set", "gl_flip"}); err == nil {
		t.Errorf("-set gl_flip accepted")
	}
	var b assignments
	err := b.Set("r_skyspeed")
	if err == nil || !strings.Contains(err.Error(), `"r_skyspeed" is not of the form name=value`) {
		t.Errorf("Set(r_skyspeed) = %v", err)
	}
	if len(b) != 0 {
		t.Errorf("invalid assignment kept: %v", b)
	}
}

func TestScripts(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"+texturelist"}, "texturelist"},
		{[]string{"+gl_texturemode", "GL_NEAREST", "+reload"}, "gl_texturemode GL_NEAREST; reload"},
		{[]string{"ignored", "+echo", "a", "-x", "b", "+wait"}, "echo a; wait"},
	} {
		if got := scripts(tc.args); got != tc.want {
			t.Errorf("scripts(%q) = %q, want %q", tc.args, got, tc.want)
		}
	}
}
