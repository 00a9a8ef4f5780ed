// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	conDebug   bool
	fullscreen bool
	window     bool
	listModes  bool

	fsaa = boolInt{false, 4}

	height int
	width  int
	unit   int

	basedir  string
	game     string
	manifest string
	skyDir   string
	sky      string
	mipmap   string

	sets assignments
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

// assignments collects repeated "-set name=value" flags.
type assignments []string

func (a *assignments) Set(s string) error {
	if !strings.Contains(s, "=") {
		return errors.Errorf("%q is not of the form name=value", s)
	}
	*a = append(*a, s)
	return nil
}

func (a *assignments) String() string {
	return strings.Join(*a, ",")
}

func init() {
	flag.BoolVar(&conDebug, "condebug", false, "enable console debugging")
	flag.BoolVar(&fullscreen, "f", false, "")
	flag.BoolVar(&fullscreen, "fullscreen", false, "")
	flag.BoolVar(&window, "window", false, "")
	flag.BoolVar(&window, "w", false, "")
	flag.BoolVar(&listModes, "listmodes", false, "print the texture modes and exit")

	flag.Var(&fsaa, "fsaa", "enable multisampling, optional number of samples")
	flag.Var(&sets, "set", "set a cvar, name=value, may be repeated")

	flag.IntVar(&height, "height", -1, "window height, negative is unset")
	flag.IntVar(&width, "width", -1, "window width, negative is unset")
	flag.IntVar(&unit, "unit", 0, "texture unit of the sky")

	flag.StringVar(&basedir, "basedir", "", "quake directory, skyboxes are then searched in id1 and -game")
	flag.StringVar(&game, "game", "", "mod directory below -basedir")
	flag.StringVar(&manifest, "manifest", "", "yaml file describing the cube texture")
	flag.StringVar(&skyDir, "skydir", "gfx/env", "directory of skybox images")
	flag.StringVar(&sky, "sky", "", "skybox name, faces are <name>rt, <name>lf, ...")
	flag.StringVar(&mipmap, "mipmap", "", "mipmap policy: pot, always or never")
}

func Height() int {
	return height
}

func Width() int {
	return width
}

func Unit() int {
	return unit
}

func Fsaa() int {
	if !fsaa.set {
		return 0
	}
	return fsaa.num
}

func ConsoleDebug() bool {
	return conDebug
}

// Fullscreen is true if -fullscreen was given and not overruled by -window.
func Fullscreen() bool {
	return fullscreen && !window
}

func Window() bool {
	return window
}

func ListModes() bool {
	return listModes
}

func BaseDirectory() string {
	return basedir
}

func Game() string {
	return game
}

func Manifest() string {
	return manifest
}

func SkyDirectory() string {
	return skyDir
}

func Sky() string {
	return sky
}

func Mipmap() string {
	return mipmap
}

// Assignments returns the -set values in command line order.
func Assignments() []string {
	return append([]string(nil), sets...)
}

// StartupCommands turns the arguments left after the flags into console
// text. Commands lead with a + and continue until a - or another +:
//
//	glcube -sky stormy +gl_texturemode GL_NEAREST +texturelist
func StartupCommands() string {
	return scripts(flag.Args())
}

func scripts(args []string) string {
	plus := false
	cmd := ""
	for _, a := range args {
		if a == "" {
			continue
		}
		switch a[0] {
		case '+':
			// we only care about what follows after the '+'
			if len(cmd) == 0 {
				cmd = a[1:]
			} else {
				cmd += "; " + a[1:]
			}
			plus = true
		case '-':
			plus = false
		default:
			if plus {
				cmd = cmd + " " + a
			}
		}
	}
	return cmd
}
