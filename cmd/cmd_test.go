// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestCommands(t *testing.T) {
	c := New()
	var got []string
	if err := c.Add("Echo", func(a Arguments) error {
		got = append(got, a.ArgumentString())
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("echo", nil); err == nil {
		t.Errorf("duplicate add accepted")
	}
	fail := errors.New("fail")
	c.Add("fail", func(Arguments) error { return fail })

	if !c.Exists("ECHO") {
		t.Errorf("Exists(ECHO) = false")
	}
	if ok, err := c.Execute(Parse("ECHO hi")); !ok || err != nil {
		t.Errorf("Execute(ECHO hi) = %v, %v", ok, err)
	}
	if len(got) != 1 || got[0] != "hi" {
		t.Errorf("got %v", got)
	}
	if ok, err := c.Execute(Parse("fail")); ok || !errors.Is(err, fail) {
		t.Errorf("Execute(fail) = %v, %v", ok, err)
	}
	if ok, _ := c.Execute(Parse("unknown")); ok {
		t.Errorf("Execute(unknown) = true")
	}
	if ok, _ := c.Execute(Parse("")); ok {
		t.Errorf("Execute(\"\") = true")
	}

	var buf bytes.Buffer
	c.PrintList(&buf, "")
	if want := "  echo\n  fail\n2 commands\n"; buf.String() != want {
		t.Errorf("PrintList = %q, want %q", buf.String(), want)
	}
	buf.Reset()
	c.PrintList(&buf, "f")
	if want := "  fail\n1 commands beginning with \"f\"\n"; buf.String() != want {
		t.Errorf("PrintList(f) = %q, want %q", buf.String(), want)
	}
}
