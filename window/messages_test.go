// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"strings"
	"testing"
)

func TestFailMessage(t *testing.T) {
	if m := FailMessage(false, ""); m != getAWebGLBrowser {
		t.Errorf("FailMessage(false, \"\") = %q", m)
	}
	m := FailMessage(true, "no adapter")
	if !strings.HasPrefix(m, otherProblem) {
		t.Errorf("FailMessage(true, ...) = %q", m)
	}
	if !strings.HasSuffix(m, "<br/><br/>Status: no adapter") {
		t.Errorf("FailMessage(true, \"no adapter\") = %q", m)
	}
}

func TestFailHTML(t *testing.T) {
	h := FailHTML("oops")
	if !strings.HasPrefix(h, "<div ") || !strings.HasSuffix(h, ">oops</div>") {
		t.Errorf("FailHTML(\"oops\") = %q", h)
	}
}
