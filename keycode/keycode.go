// SPDX-License-Identifier: GPL-2.0-or-later

// Package keycode names keyboard keys. Printable ASCII keys are their own
// code, the others follow the Quake numbering.
package keycode

import (
	"strings"
)

type KeyCode int

const (
	NONE       KeyCode = -1
	TAB        KeyCode = 9
	ENTER      KeyCode = 13
	ESCAPE     KeyCode = 27
	SPACE      KeyCode = 32
	BACKSPACE  KeyCode = 127
	UPARROW    KeyCode = 128
	DOWNARROW  KeyCode = 129
	LEFTARROW  KeyCode = 130
	RIGHTARROW KeyCode = 131
	ALT        KeyCode = 132
	CTRL       KeyCode = 133
	SHIFT      KeyCode = 134
	F1         KeyCode = 135
	F2         KeyCode = 136
	F3         KeyCode = 137
	F4         KeyCode = 138
	F5         KeyCode = 139
	F6         KeyCode = 140
	F7         KeyCode = 141
	F8         KeyCode = 142
	F9         KeyCode = 143
	F10        KeyCode = 144
	F11        KeyCode = 145
	F12        KeyCode = 146
	INS        KeyCode = 147
	DEL        KeyCode = 148
	PGDN       KeyCode = 149
	PGUP       KeyCode = 150
	HOME       KeyCode = 151
	END        KeyCode = 152
	KP_SLASH   KeyCode = 154
	KP_STAR    KeyCode = 155
	KP_MINUS   KeyCode = 156
	KP_PLUS    KeyCode = 160
	KP_ENTER   KeyCode = 167
	PAUSE      KeyCode = 255
)

var (
	s2k = map[string]KeyCode{
		"TAB":        TAB,
		"ENTER":      ENTER,
		"ESCAPE":     ESCAPE,
		"SPACE":      SPACE,
		"BACKSPACE":  BACKSPACE,
		"UPARROW":    UPARROW,
		"DOWNARROW":  DOWNARROW,
		"LEFTARROW":  LEFTARROW,
		"RIGHTARROW": RIGHTARROW,

		"ALT":   ALT,
		"CTRL":  CTRL,
		"SHIFT": SHIFT,

		"KP_SLASH": KP_SLASH,
		"KP_STAR":  KP_STAR,
		"KP_MINUS": KP_MINUS,
		"KP_PLUS":  KP_PLUS,
		"KP_ENTER": KP_ENTER,

		"F1":  F1,
		"F2":  F2,
		"F3":  F3,
		"F4":  F4,
		"F5":  F5,
		"F6":  F6,
		"F7":  F7,
		"F8":  F8,
		"F9":  F9,
		"F10": F10,
		"F11": F11,
		"F12": F12,

		"INS":  INS,
		"DEL":  DEL,
		"PGDN": PGDN,
		"PGUP": PGUP,
		"HOME": HOME,
		"END":  END,

		"PAUSE": PAUSE,

		"SEMICOLON": ';', // because a raw semicolon seperates commands

		"BACKQUOTE": '`', // because a raw backquote may toggle the console
		"TILDE":     '~', // because a raw tilde may toggle the console
	}
	k2s = reverseMap(s2k)
)

func reverseMap(m map[string]KeyCode) map[KeyCode]string {
	r := make(map[KeyCode]string)
	for k, v := range m {
		// the printable aliases keep their character
		if v > 32 && v < 127 {
			continue
		}
		r[v] = k
	}
	return r
}

func KeyToString(k KeyCode) string {
	if k == NONE {
		return "<KEY NOT FOUND>"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	s, ok := k2s[k]
	if ok {
		return s
	}
	return "<UNKNOWN KEYNUM>"
}

// StringToKey parses a single character or a key name, names ignore case.
func StringToKey(s string) KeyCode {
	if len(s) == 0 {
		return NONE
	}
	if len(s) == 1 {
		return KeyCode(s[0])
	}
	v, ok := s2k[strings.ToUpper(s)]
	if ok {
		return v
	}
	return NONE
}
