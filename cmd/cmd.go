// SPDX-License-Identifier: GPL-2.0-or-later

// Package cmd holds the console commands.
package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Func func(args Arguments) error

type Commands map[string]Func

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f Func) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It reports false if
// there is no such command.
func (c *Commands) Execute(a Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a); err != nil {
			return false, errors.Wrap(err, name)
		}
		return true, nil
	}
	return false, nil
}

// PrintList writes the commands starting with part, all if part is empty.
func (c *Commands) PrintList(w io.Writer, part string) {
	count := 0
	for _, cmd := range c.List() {
		if strings.HasPrefix(cmd, part) {
			fmt.Fprintf(w, "  %s\n", cmd)
			count++
		}
	}
	if part == "" {
		fmt.Fprintf(w, "%v commands\n", count)
	} else {
		fmt.Fprintf(w, "%v commands beginning with \"%v\"\n", count, part)
	}
}
