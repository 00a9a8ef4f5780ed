// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"glcube/cmd"
	"glcube/commandline"
	"glcube/conlog"
	"glcube/cvar"
	"glcube/cvars"
	"glcube/filesystem"
	"glcube/frame"
	"glcube/keycode"
	"glcube/keys"
	"glcube/glh"
	"glcube/manifest"
	"glcube/texture"
	"glcube/window"

	"github.com/chewxy/math32"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	flag.Parse()
	if commandline.ListModes() {
		texture.NewManager(nil).DescribeTextureModes(os.Stdout)
		return
	}
	if err := applyCommandLine(); err != nil {
		log.Fatalf("Command line: %v", err)
	}
	mainthread.Run(run)
}

// run drives the frames from its own goroutine, everything touching GL or
// SDL is handed to the main thread.
func run() {
	var v *viewer
	var err error
	mainthread.Call(func() {
		v, err = newViewer()
	})
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}
	defer mainthread.Call(v.close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timer := frame.NewTimer(frameInterval())
	cvars.HostMaxFps.SetCallback(func(*cvar.Cvar) {
		timer.SetInterval(frameInterval())
	})
	var onFrame frame.Callback
	onFrame = func(now time.Duration) {
		quit := false
		mainthread.Call(func() {
			quit = v.frame(now)
		})
		if quit {
			cancel()
			return
		}
		timer.Request(onFrame)
	}
	timer.Request(onFrame)
	if err := timer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Frame loop: %v", err)
	}
}

type viewer struct {
	win     *window.Window
	tm      *texture.Manager
	sky     *skyDrawer
	tex     *texture.CubeTexture
	con     *console
	binds   *keys.Bindings
	files   *filesystem.SearchPath
	watcher *manifest.Watcher
	clock   frame.Clock
	angle   float32
}

func newViewer() (*viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdl init")
	}
	win, err := window.Open(window.Config{
		Title:      "glcube",
		Width:      int32(cvars.VideoWidth.Value()),
		Height:     int32(cvars.VideoHeight.Value()),
		Fullscreen: cvars.VideoFullscreen.Bool(),
		VSync:      cvars.VideoVerticalSync.Bool(),
		Fsaa:       int(cvars.VideoFsaa.Value()),
	}, func(msg string) {
		conlog.Printf("Video: %s", msg)
	})
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	sky, err := newSkyDrawer()
	if err != nil {
		win.Close()
		sdl.Quit()
		return nil, err
	}
	v := &viewer{
		win:   win,
		tm:    texture.NewManager(win.Context()),
		sky:   sky,
		con:   newConsole(),
		binds: defaultBindings(),
	}
	if err := v.tm.SetTextureMode(cvars.GlTextureMode.String()); err != nil {
		conlog.Printf("gl_texturemode: %v", err)
	}
	if b := commandline.BaseDirectory(); b != "" {
		v.files, err = filesystem.New(b, commandline.Game())
		if err != nil {
			v.close()
			return nil, err
		}
		v.con.must(v.con.cmds.Add("path", func(cmd.Arguments) error {
			conlog.Printf("Current search path:")
			for _, l := range v.files.Layers() {
				conlog.Printf("%s", l)
			}
			return nil
		}))
	}
	if err := v.reload(); err != nil {
		v.close()
		return nil, err
	}

	cvars.GlTextureMode.SetCallback(func(cv *cvar.Cvar) {
		if err := v.tm.SetTextureMode(cv.String()); err != nil {
			conlog.Printf("gl_texturemode: %v", err)
		}
	})
	reload := func(cv *cvar.Cvar) {
		if err := v.reload(); err != nil {
			conlog.Printf("%s: reload failed: %v", cv.Name(), err)
		}
	}
	cvars.GlFlip.SetCallback(reload)
	cvars.GlPremultiply.SetCallback(reload)
	cvars.GlTextureMipmap.SetCallback(reload)

	v.con.addTextureCommands(v.tm, v.reload)
	v.con.must(v.binds.AddCommands(v.con.cmds, conlog.Writer))
	v.con.AddText(commandline.StartupCommands())
	v.con.readStdin()

	if p := commandline.Manifest(); p != "" {
		w, err := manifest.Watch(p)
		if err != nil {
			conlog.Printf("Not watching %v: %v", p, err)
		} else {
			v.watcher = w
		}
	}
	return v, nil
}

// load builds the texture selected on the command line: a manifest, a
// skybox or a generated checker box.
func (v *viewer) load() (*texture.CubeTexture, error) {
	if p := commandline.Manifest(); p != "" {
		m, err := manifest.Load(p)
		if err != nil {
			return nil, err
		}
		return m.Build(v.tm)
	}
	opts, err := buildOptions()
	if err != nil {
		return nil, err
	}
	if s := commandline.Sky(); s != "" {
		if v.files != nil {
			return v.tm.LoadSkyBoxFS(v.files, commandline.SkyDirectory(), s, opts)
		}
		return v.tm.LoadSkyBox(commandline.SkyDirectory(), s, opts)
	}
	t, err := texture.BuildFromBuffers(v.tm.Context(), checkerFaces(checkerSize, checkerCell, 0),
		checkerSize, checkerSize, opts)
	if err != nil {
		return nil, err
	}
	t.SetName("checker")
	t.EnableWrapClamp()
	v.tm.Add(t)
	return t, nil
}

// reload replaces the current texture. On failure the old one stays.
func (v *viewer) reload() error {
	t, err := v.load()
	if err != nil {
		return err
	}
	if v.tex != nil {
		v.tm.Free(v.tex)
	}
	v.tex = t
	v.win.SetTitle("glcube: " + t.Name())
	return nil
}

func (v *viewer) key(k keycode.KeyCode) {
	if b, ok := v.binds.Binding(k); ok {
		v.con.AddText(b)
	}
}

// frame renders one frame and reports whether to quit.
func (v *viewer) frame(now time.Duration) bool {
	if v.win.PollEvents(v.key) {
		return true
	}
	v.con.frame()
	if v.watcher != nil {
		select {
		case <-v.watcher.Changes:
			if err := v.reload(); err != nil {
				conlog.Printf("Reload failed: %v", err)
			}
		default:
		}
	}
	v.clock.Update(now)
	dt := float32(v.clock.FrameTime().Seconds())
	v.angle = math32.Mod(v.angle+cvars.RSkySpeed.Value()*dt, 360)
	if v.clock.FrameCount()%60 == 0 {
		v.win.SetTitle(fmt.Sprintf("glcube: %s %.0f fps", v.tex.Name(), v.clock.FPS()))
	}

	w, h := v.win.Size()
	glh.Viewport(w, h)
	glh.ClearColor(0, 0, 0, 1)
	v.sky.draw(v.tex, w, h, v.angle)
	v.win.Swap()
	return false
}

func (v *viewer) close() {
	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.files != nil {
		v.files.Close()
	}
	v.tm.FreeAll()
	v.win.Close()
	sdl.Quit()
}
