// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !js

package window

import (
	"fmt"
	"log"
	"unsafe"

	"glcube/glh"
	"glcube/keycode"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type Config struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	VSync      bool
	// Fsaa is the number of multisample samples, 0 disables multisampling.
	Fsaa int
}

// Window is an SDL window with a current OpenGL 4.1 or newer core context.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
	ctx     *glh.GLContext
}

// version is a GL core profile version. The viewer shaders need 4.1.
type version struct {
	major, minor int
}

var versions = []version{{4, 6}, {4, 1}}

// attempt is one context version and set of framebuffer attributes to try.
type attempt struct {
	name        string
	version     version
	fsaa        int
	depthBits   int
	stencilBits int
}

// attempts lists the configurations from most to least wanted. Every
// framebuffer configuration is tried with every version before falling
// back to the next framebuffer configuration.
func attempts(fsaa int) []attempt {
	var fb []attempt
	if fsaa > 0 {
		fb = append(fb, attempt{name: "multisampled", fsaa: fsaa, depthBits: 24, stencilBits: 8})
	}
	fb = append(fb,
		attempt{name: "default", depthBits: 24, stencilBits: 8},
		attempt{name: "16bit depth", depthBits: 16, stencilBits: 8},
		attempt{name: "no stencil", depthBits: 16},
	)
	a := make([]attempt, 0, len(fb)*len(versions))
	for _, f := range fb {
		for _, v := range versions {
			f.version = v
			a = append(a, f)
		}
	}
	return a
}

func (a attempt) String() string {
	return fmt.Sprintf("%s %d.%d", a.name, a.version.major, a.version.minor)
}

func (a attempt) apply() {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, a.version.major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, a.version.minor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, a.depthBits)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, a.stencilBits)
	if a.fsaa > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, a.fsaa)
	} else {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 0)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 0)
	}
}

// hasDebugOutput reports whether glDebugMessageCallback is core in the
// given version.
func hasDebugOutput(major, minor int32) bool {
	return major > 4 || (major == 4 && minor >= 3)
}

// Open creates the window and its GL context. Every failed configuration is
// reported to onError before the next one is tried; onError may be nil.
// Must be called on the main thread after sdl.Init.
func Open(cfg Config, onError func(string)) (*Window, error) {
	if onError == nil {
		onError = func(msg string) { log.Print(msg) }
	}
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	w := &Window{}
	for _, a := range attempts(cfg.Fsaa) {
		a.apply()
		win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			cfg.Width, cfg.Height, flags)
		if err != nil {
			onError(fmt.Sprintf("%v window: %v", a, err))
			continue
		}
		context, err := win.GLCreateContext()
		if err != nil {
			win.Destroy()
			onError(fmt.Sprintf("%v GL context: %v", a, err))
			continue
		}
		w.window = win
		w.context = context
		break
	}
	if w.window == nil {
		return nil, errors.New("couldn't create window")
	}

	// Initialize Glow
	if err := gl.Init(); err != nil {
		w.Close()
		onError(err.Error())
		return nil, errors.Wrap(err, "couldn't init gl")
	}
	log.Printf("GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if hasDebugOutput(major, minor) {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}

	swap := 0
	if cfg.VSync {
		swap = 1
	}
	if err := sdl.GLSetSwapInterval(swap); err != nil {
		log.Printf("Couldn't set swap interval: %v", err)
	}
	w.ctx = glh.NewGLContext()
	w.window.Show()
	return w, nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity HIGH: %s", source, gltype, id, message)
	} else if severity != gl.DEBUG_SEVERITY_NOTIFICATION {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d: %s", source, gltype, id, severity, message)
	}
}

// Context returns the texture context of the window.
func (w *Window) Context() glh.Context {
	return w.ctx
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *Window) SetTitle(t string) {
	w.window.SetTitle(t)
}

func (w *Window) Swap() {
	w.window.GLSwap()
}

var sdlKeys = map[sdl.Keycode]keycode.KeyCode{
	sdl.K_TAB:         keycode.TAB,
	sdl.K_RETURN:      keycode.ENTER,
	sdl.K_ESCAPE:      keycode.ESCAPE,
	sdl.K_SPACE:       keycode.SPACE,
	sdl.K_BACKSPACE:   keycode.BACKSPACE,
	sdl.K_UP:          keycode.UPARROW,
	sdl.K_DOWN:        keycode.DOWNARROW,
	sdl.K_LEFT:        keycode.LEFTARROW,
	sdl.K_RIGHT:       keycode.RIGHTARROW,
	sdl.K_LALT:        keycode.ALT,
	sdl.K_RALT:        keycode.ALT,
	sdl.K_LCTRL:       keycode.CTRL,
	sdl.K_RCTRL:       keycode.CTRL,
	sdl.K_LSHIFT:      keycode.SHIFT,
	sdl.K_RSHIFT:      keycode.SHIFT,
	sdl.K_F1:          keycode.F1,
	sdl.K_F2:          keycode.F2,
	sdl.K_F3:          keycode.F3,
	sdl.K_F4:          keycode.F4,
	sdl.K_F5:          keycode.F5,
	sdl.K_F6:          keycode.F6,
	sdl.K_F7:          keycode.F7,
	sdl.K_F8:          keycode.F8,
	sdl.K_F9:          keycode.F9,
	sdl.K_F10:         keycode.F10,
	sdl.K_F11:         keycode.F11,
	sdl.K_F12:         keycode.F12,
	sdl.K_INSERT:      keycode.INS,
	sdl.K_DELETE:      keycode.DEL,
	sdl.K_PAGEDOWN:    keycode.PGDN,
	sdl.K_PAGEUP:      keycode.PGUP,
	sdl.K_HOME:        keycode.HOME,
	sdl.K_END:         keycode.END,
	sdl.K_KP_DIVIDE:   keycode.KP_SLASH,
	sdl.K_KP_MULTIPLY: keycode.KP_STAR,
	sdl.K_KP_MINUS:    keycode.KP_MINUS,
	sdl.K_KP_PLUS:     keycode.KP_PLUS,
	sdl.K_KP_ENTER:    keycode.KP_ENTER,
	sdl.K_PAUSE:       keycode.PAUSE,
}

// translateKey maps SDL keys to key codes. SDL uses ASCII for printable
// keys as well.
func translateKey(k sdl.Keycode) keycode.KeyCode {
	if kc, ok := sdlKeys[k]; ok {
		return kc
	}
	if k > 32 && k < 127 {
		return keycode.KeyCode(k)
	}
	return keycode.NONE
}

// PollEvents drains the event queue, passing every pressed key to onKey,
// and reports whether the window was asked to close, either by the window
// manager or by the escape key. onKey may be nil.
func (w *Window) PollEvents(onKey func(keycode.KeyCode)) bool {
	quit := false
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			k := translateKey(ev.Keysym.Sym)
			if k == keycode.ESCAPE {
				quit = true
			} else if k != keycode.NONE && onKey != nil {
				onKey(k)
			}
		}
	}
	return quit
}

func (w *Window) Close() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
