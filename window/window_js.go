// SPDX-License-Identifier: GPL-2.0-or-later

//go:build js

package window

import (
	"syscall/js"

	"glcube/glh"

	"github.com/pkg/errors"
)

// contextNames are tried in order until the canvas hands out a context.
var contextNames = []string{"webgl2", "webgl", "experimental-webgl", "webkit-3d", "moz-webgl"}

// Create3DContext returns the first rendering context canvas supports, or
// a null value.
func Create3DContext(canvas js.Value, attrs map[string]any) js.Value {
	for _, n := range contextNames {
		if c := getContext(canvas, n, attrs); c.Truthy() {
			return c
		}
	}
	return js.Null()
}

func getContext(canvas js.Value, name string, attrs map[string]any) (c js.Value) {
	defer func() {
		// some browsers throw for unknown context names
		if recover() != nil {
			c = js.Null()
		}
	}()
	if attrs == nil {
		return canvas.Call("getContext", name)
	}
	return canvas.Call("getContext", name, attrs)
}

// showFailure replaces the page body with the failure message.
func showFailure(status string) {
	doc := js.Global().Get("document")
	body := doc.Call("getElementsByTagName", "body").Index(0)
	if !body.Truthy() {
		return
	}
	known := js.Global().Get("WebGL2RenderingContext").Truthy()
	body.Set("innerHTML", FailHTML(FailMessage(known, status)))
}

// Setup creates a rendering context for canvas. Creation errors are passed
// to onError, which defaults to replacing the page with a failure message.
func Setup(canvas js.Value, attrs map[string]any, onError func(string)) (*glh.WebGLContext, error) {
	if onError == nil {
		onError = showFailure
	}
	var listener js.Func
	if canvas.Get("addEventListener").Truthy() {
		listener = js.FuncOf(func(this js.Value, args []js.Value) any {
			msg := ""
			if len(args) > 0 {
				if m := args[0].Get("statusMessage"); m.Type() == js.TypeString {
					msg = m.String()
				}
			}
			onError(msg)
			return nil
		})
		canvas.Call("addEventListener", "webglcontextcreationerror", listener, false)
		defer func() {
			canvas.Call("removeEventListener", "webglcontextcreationerror", listener, false)
			listener.Release()
		}()
	}
	c := Create3DContext(canvas, attrs)
	if !c.Truthy() {
		onError("")
		return nil, errors.New("no WebGL context available")
	}
	return glh.NewWebGLContext(c), nil
}
