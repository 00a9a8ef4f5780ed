// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"glcube/cvar"
)

var (
	Fov               *cvar.Cvar
	GlFlip            *cvar.Cvar
	GlPremultiply     *cvar.Cvar
	GlTextureMipmap   *cvar.Cvar
	GlTextureMode     *cvar.Cvar
	HostMaxFps        *cvar.Cvar
	RSkySpeed         *cvar.Cvar
	VideoFsaa         *cvar.Cvar
	VideoFullscreen   *cvar.Cvar
	VideoHeight       *cvar.Cvar
	VideoVerticalSync *cvar.Cvar
	VideoWidth        *cvar.Cvar
)

func init() {
	Fov = cvar.MustRegister("fov", "90", cvar.ARCHIVE)
	GlFlip = cvar.MustRegister("gl_flip", "0", cvar.ARCHIVE)
	GlPremultiply = cvar.MustRegister("gl_premultiply", "0", cvar.ARCHIVE)
	GlTextureMipmap = cvar.MustRegister("gl_texture_mipmap", "pot", cvar.ARCHIVE)
	GlTextureMode = cvar.MustRegister("gl_texturemode", "GL_LINEAR_MIPMAP_LINEAR", cvar.ARCHIVE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "60", cvar.ARCHIVE)
	RSkySpeed = cvar.MustRegister("r_skyspeed", "10", cvar.ARCHIVE)
	VideoFullscreen = cvar.MustRegister("vid_fullscreen", "0", cvar.ARCHIVE)
	VideoHeight = cvar.MustRegister("vid_height", "768", cvar.ARCHIVE)
	VideoVerticalSync = cvar.MustRegister("vid_vsync", "1", cvar.ARCHIVE)
	VideoWidth = cvar.MustRegister("vid_width", "1024", cvar.ARCHIVE)
	VideoFsaa = cvar.MustRegister("vid_fsaa", "0", cvar.ARCHIVE)
}
