// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"strings"
	"time"

	"glcube/commandline"
	"glcube/cvar"
	"glcube/cvars"
	"glcube/frame"
	"glcube/texture"

	"github.com/pkg/errors"
)

// applyCommandLine copies the command line settings into the cvars. The
// -set assignments are applied last and win.
func applyCommandLine() error {
	if w := commandline.Width(); w > 0 {
		cvars.VideoWidth.SetValue(float32(w))
	}
	if h := commandline.Height(); h > 0 {
		cvars.VideoHeight.SetValue(float32(h))
	}
	if commandline.Fullscreen() {
		cvars.VideoFullscreen.SetByString("1")
	} else if commandline.Window() {
		cvars.VideoFullscreen.SetByString("0")
	}
	if f := commandline.Fsaa(); f > 0 {
		cvars.VideoFsaa.SetValue(float32(f))
	}
	if m := commandline.Mipmap(); m != "" {
		cvars.GlTextureMipmap.SetByString(m)
	}
	for _, a := range commandline.Assignments() {
		if err := cvar.SetAssignment(a); err != nil {
			return err
		}
	}
	return nil
}

// buildOptions returns the texture options selected by the cvars.
func buildOptions() (texture.BuildOptions, error) {
	p, err := texture.ParseMipmapPolicy(cvars.GlTextureMipmap.String())
	if err != nil {
		return texture.BuildOptions{}, errors.Wrap(err, "gl_texture_mipmap")
	}
	return texture.BuildOptions{
		Flip:             cvars.GlFlip.Bool(),
		PremultiplyAlpha: cvars.GlPremultiply.Bool(),
		Unit:             commandline.Unit(),
		Mipmap:           p,
	}, nil
}

// frameInterval is the frame time for host_maxfps.
func frameInterval() time.Duration {
	fps := cvars.HostMaxFps.Value()
	if fps <= 0 {
		return frame.DefaultInterval
	}
	return time.Duration(float32(time.Second) / fps)
}

// cycleTextureMode is the console text switching to the next texture mode.
func cycleTextureMode() string {
	return "cycle gl_texturemode " + strings.Join(texture.TextureModes(), " ")
}
