// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console text until it is executed once per frame.
package cbuf

import (
	"glcube/cmd"
	"glcube/conlog"
)

// Efunc tries to execute a parsed line. It reports whether it handled it.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

type CommandBuffer struct {
	text string
	// set by the wait command, the remaining text is executed one frame
	// later
	wait      bool
	executors []Efunc
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// Wait stops the current Execute after the running line.
func (c *CommandBuffer) Wait() {
	c.wait = true
}

func (c *CommandBuffer) AddText(text string) {
	c.text = c.text + text
}

// InsertText puts text in front of the buffered text.
func (c *CommandBuffer) InsertText(text string) {
	c.text = text + "\n" + c.text
}

// Pending reports whether text is buffered.
func (c *CommandBuffer) Pending() bool {
	return len(c.text) != 0
}

// Execute runs the buffered lines, separated by newlines or by semicolons
// outside of quotes, until the buffer is empty or a line waits. Errors of a
// line are logged and do not stop the following lines.
func (c *CommandBuffer) Execute() {
	for len(c.text) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.text); i++ {
			switch c.text[i] {
			case '"':
				quote = !quote
				continue LineLoop
			case ';':
				if quote {
					continue LineLoop
				}
				break LineLoop
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.text[:i]
		// but remove this char as well
		if i < len(c.text) {
			i++
		}
		c.text = c.text[i:]
		if err := c.execute(line); err != nil {
			conlog.Printf("%v", err)
		}
		if c.wait {
			// wait for the next frame to continue executing
			c.wait = false
			return
		}
	}
}

func (c *CommandBuffer) execute(s string) error {
	a := cmd.Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil // no tokens
	}
	if args[0].String() == "wait" {
		c.wait = true
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	conlog.Printf("Unknown command \"%s\"", args[0])
	return nil
}
