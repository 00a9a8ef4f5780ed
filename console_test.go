// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glcube/conlog"
	"glcube/cvars"
	"glcube/glh/glhtest"
	"glcube/keycode"
	"glcube/texture"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog collects everything printed to the console.
func captureLog(t *testing.T) *strings.Builder {
	var b strings.Builder
	conlog.SetPrintf(func(format string, v ...interface{}) {
		b.WriteString(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
		b.WriteString("\n")
	})
	t.Cleanup(func() { conlog.SetPrintf(nil) })
	return &b
}

func TestCycle(t *testing.T) {
	values := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycle("a", values))
	assert.Equal(t, "a", cycle("C", values))
	assert.Equal(t, "a", cycle("x", values))
}

func TestConsoleCvars(t *testing.T) {
	defer cvars.GlFlip.Reset()
	defer cvars.RSkySpeed.Reset()
	defer cvars.GlTextureMode.Reset()
	out := captureLog(t)
	c := newConsole()

	c.AddText("gl_flip 1")
	c.AddText("inc r_skyspeed 5; inc r_skyspeed")
	c.AddText(cycleTextureMode())
	c.AddText("r_skyspeed")
	c.frame()
	assert.True(t, cvars.GlFlip.Bool())
	assert.Equal(t, float32(16), cvars.RSkySpeed.Value())
	assert.Equal(t, "GL_NEAREST", cvars.GlTextureMode.String())
	assert.Contains(t, out.String(), `"r_skyspeed" is "16"`)

	c.AddText("toggle gl_flip; reset r_skyspeed")
	c.frame()
	assert.False(t, cvars.GlFlip.Bool())
	assert.Equal(t, float32(10), cvars.RSkySpeed.Value())

	c.AddText("toggle no_such_cvar")
	c.AddText("no_such_command")
	c.frame()
	assert.Contains(t, out.String(), `variable "no_such_cvar" not found`)
	assert.Contains(t, out.String(), `Unknown command "no_such_command"`)
}

func TestConsoleExec(t *testing.T) {
	defer cvars.RSkySpeed.Reset()
	out := captureLog(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "sky.cfg")
	require.NoError(t, os.WriteFile(script, []byte("r_skyspeed 3\necho done\n"), 0o644))

	c := newConsole()
	c.AddText("exec " + script)
	c.frame()
	assert.Equal(t, float32(3), cvars.RSkySpeed.Value())
	assert.Contains(t, out.String(), "done")

	c.AddText("exec " + filepath.Join(dir, "missing.cfg"))
	c.frame()
	assert.Contains(t, out.String(), "couldn't exec")
}

func TestConsoleTextureCommands(t *testing.T) {
	out := captureLog(t)
	tm := texture.NewManager(glhtest.NewRecorder())
	_, err := texture.BuildFromBuffers(tm.Context(), checkerFaces(4, 2, 0), 4, 4, texture.BuildOptions{})
	require.NoError(t, err)
	reloads := 0
	fail := false
	c := newConsole()
	c.addTextureCommands(tm, func() error {
		reloads++
		if fail {
			return errors.New("broken")
		}
		return nil
	})

	c.AddText("texturelist; texturemodes; reload")
	c.frame()
	assert.Equal(t, 1, reloads)
	assert.Contains(t, out.String(), "0 textures 0 texels")
	assert.Contains(t, out.String(), "6 modes")

	fail = true
	c.AddText("reload")
	c.frame()
	assert.Equal(t, 2, reloads)
	assert.Contains(t, out.String(), "reload: broken")

	c.AddText("cmdlist tex")
	c.frame()
	assert.Contains(t, out.String(), "2 commands beginning with \"tex\"")
}

func TestDefaultBindings(t *testing.T) {
	b := defaultBindings()
	got, ok := b.Binding('m')
	assert.True(t, ok)
	assert.Equal(t, cycleTextureMode(), got)
	got, ok = b.Binding(keycode.PGDN)
	assert.True(t, ok)
	assert.Equal(t, "inc host_maxfps -10", got)
	_, ok = b.Binding(keycode.ESCAPE)
	assert.False(t, ok)
}
