// SPDX-License-Identifier: GPL-2.0-or-later

package window

const (
	getAWebGLBrowser = "This page requires a browser that supports WebGL.<br/>" +
		`<a href="http://get.webgl.org">Click here to upgrade your browser.</a>`
	otherProblem = "It doesn't appear your computer can support WebGL.<br/>" +
		`<a href="http://get.webgl.org">Click here for more information.</a>`
)

// FailMessage returns the text shown when no rendering context could be
// created. webglKnown tells whether the browser knows WebGL at all, status
// is the message of the creation error event if there was one.
func FailMessage(webglKnown bool, status string) string {
	s := getAWebGLBrowser
	if webglKnown {
		s = otherProblem
	}
	if status != "" {
		s += "<br/><br/>Status: " + status
	}
	return s
}

// FailHTML wraps msg into a centered block.
func FailHTML(msg string) string {
	return `<div style="margin: auto; width:500px;z-index:10000;margin-top:20em;text-align:center;">` +
		msg + `</div>`
}
