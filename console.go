// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"os"
	"strings"

	"glcube/cbuf"
	"glcube/cmd"
	"glcube/conlog"
	"glcube/cvar"
	"glcube/keycode"
	"glcube/keys"
	"glcube/texture"

	"github.com/pkg/errors"
)

// console executes command text against its commands and the cvars.
type console struct {
	buf  cbuf.CommandBuffer
	cmds *cmd.Commands
	// lines typed on stdin, see readStdin
	lines chan string
}

func newConsole() *console {
	c := &console{
		cmds:  cmd.New(),
		lines: make(chan string, 1),
	}
	c.buf.SetCommandExecutors([]cbuf.Efunc{c.executeCommand, executeCvar})
	c.must(c.cmds.Add("cmdlist", c.cmdList))
	c.must(c.cmds.Add("cvarlist", cvarList))
	c.must(c.cmds.Add("echo", echo))
	c.must(c.cmds.Add("exec", c.exec))
	c.must(c.cmds.Add("toggle", toggle))
	c.must(c.cmds.Add("cycle", cycleCmd))
	c.must(c.cmds.Add("inc", inc))
	c.must(c.cmds.Add("reset", reset))
	return c
}

func (c *console) must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

// addTextureCommands registers the commands working on tm. reload rebuilds
// the shown texture.
func (c *console) addTextureCommands(tm *texture.Manager, reload func() error) {
	c.must(c.cmds.Add("texturelist", func(cmd.Arguments) error {
		tm.List(conlog.Writer())
		return nil
	}))
	c.must(c.cmds.Add("texturemodes", func(cmd.Arguments) error {
		tm.DescribeTextureModes(conlog.Writer())
		return nil
	}))
	c.must(c.cmds.Add("reload", func(cmd.Arguments) error {
		return reload()
	}))
}

// readStdin feeds the lines typed on stdin into the console.
func (c *console) readStdin() {
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			c.lines <- scanner.Text()
		}
	}()
}

// defaultBindings are the keys of the viewer before any bind command.
func defaultBindings() *keys.Bindings {
	b := keys.New()
	for k, t := range map[keycode.KeyCode]string{
		'm':               cycleTextureMode(),
		'l':               "texturelist",
		'c':               "cvarlist",
		'r':               "reload",
		'f':               "toggle gl_flip",
		'p':               "toggle gl_premultiply",
		keycode.UPARROW:   "inc r_skyspeed 5",
		keycode.DOWNARROW: "inc r_skyspeed -5",
		keycode.PGUP:      "inc host_maxfps 10",
		keycode.PGDN:      "inc host_maxfps -10",
	} {
		b.Bind(k, t)
	}
	return b
}

// AddText queues text for the next frame.
func (c *console) AddText(text string) {
	c.buf.AddText(text + "\n")
}

// frame moves typed lines into the buffer and executes it.
func (c *console) frame() {
	for {
		select {
		case s := <-c.lines:
			c.buf.AddText(s + "\n")
		default:
			c.buf.Execute()
			return
		}
	}
}

func (c *console) executeCommand(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
	return c.cmds.Execute(a)
}

// executeCvar prints a cvar given by name alone and sets it otherwise.
func executeCvar(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
	args := a.Args()
	cv, ok := cvar.Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"", cv.Name(), cv.String())
		return true, nil
	}
	return true, cvar.Set(cv.Name(), a.ArgumentString())
}

func (c *console) cmdList(a cmd.Arguments) error {
	c.cmds.PrintList(conlog.Writer(), a.Argv(1).String())
	return nil
}

func cvarList(cmd.Arguments) error {
	cvar.List(conlog.Writer())
	return nil
}

func echo(a cmd.Arguments) error {
	conlog.Printf("%s", a.ArgumentString())
	return nil
}

// exec runs a script file before the rest of the buffer.
func (c *console) exec(a cmd.Arguments) error {
	if len(a.Args()) != 2 {
		conlog.Printf("exec <filename> : execute a script file")
		return nil
	}
	b, err := os.ReadFile(a.Argv(1).String())
	if err != nil {
		return errors.Wrap(err, "couldn't exec")
	}
	conlog.Printf("execing %v", a.Argv(1))
	c.buf.InsertText(string(b))
	return nil
}

func getCvar(a cmd.Arguments) (*cvar.Cvar, error) {
	name := a.Argv(1).String()
	cv, ok := cvar.Get(name)
	if !ok {
		return nil, errors.Errorf("variable %q not found", name)
	}
	return cv, nil
}

func toggle(a cmd.Arguments) error {
	cv, err := getCvar(a)
	if err != nil {
		return err
	}
	cv.Toggle()
	return nil
}

// cycleCmd sets a cvar to the value following its current one in the
// argument list.
func cycleCmd(a cmd.Arguments) error {
	cv, err := getCvar(a)
	if err != nil {
		return err
	}
	var values []string
	for _, v := range a.Args()[2:] {
		values = append(values, v.String())
	}
	if len(values) == 0 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values")
		return nil
	}
	cv.SetByString(cycle(cv.String(), values))
	return nil
}

func inc(a cmd.Arguments) error {
	cv, err := getCvar(a)
	if err != nil {
		return err
	}
	d := float32(1)
	if len(a.Args()) > 2 {
		d = a.Argv(2).Float32()
	}
	cv.SetValue(cv.Value() + d)
	return nil
}

func reset(a cmd.Arguments) error {
	cv, err := getCvar(a)
	if err != nil {
		return err
	}
	cv.Reset()
	return nil
}

// cycle returns the value following current, wrapping around. Unknown
// values continue with the first one.
func cycle(current string, values []string) string {
	for i, v := range values {
		if strings.EqualFold(v, current) {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
