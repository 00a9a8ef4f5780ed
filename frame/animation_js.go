// SPDX-License-Identifier: GPL-2.0-or-later

//go:build js

package frame

import (
	"syscall/js"
	"time"
)

var (
	requestNames = []string{
		"requestAnimationFrame",
		"webkitRequestAnimationFrame",
		"mozRequestAnimationFrame",
		"oRequestAnimationFrame",
		"msRequestAnimationFrame",
	}
	cancelNames = []string{
		"cancelAnimationFrame",
		"cancelRequestAnimationFrame",
		"webkitCancelAnimationFrame",
		"webkitCancelRequestAnimationFrame",
		"mozCancelAnimationFrame",
		"mozCancelRequestAnimationFrame",
		"msCancelAnimationFrame",
		"msCancelRequestAnimationFrame",
		"oCancelAnimationFrame",
		"oCancelRequestAnimationFrame",
	}
)

// AnimationFrame schedules callbacks on the display refresh of the browser.
// Without any requestAnimationFrame variant it falls back to setTimeout with
// DefaultInterval.
type AnimationFrame struct {
	request func(js.Func) js.Value
	cancel  func(js.Value)
	next    RequestID
	pending map[RequestID]pendingFrame
}

type pendingFrame struct {
	handle js.Value
	fn     js.Func
}

func lookup(window js.Value, names []string) (string, bool) {
	for _, n := range names {
		if v := window.Get(n); v.Type() == js.TypeFunction {
			return n, true
		}
	}
	return "", false
}

func NewAnimationFrame() *AnimationFrame {
	w := js.Global()
	a := &AnimationFrame{
		pending: make(map[RequestID]pendingFrame),
	}
	if n, ok := lookup(w, requestNames); ok {
		a.request = func(f js.Func) js.Value {
			return w.Call(n, f)
		}
	} else {
		a.request = func(f js.Func) js.Value {
			return w.Call("setTimeout", f, DefaultInterval.Milliseconds())
		}
	}
	if n, ok := lookup(w, cancelNames); ok {
		a.cancel = func(h js.Value) {
			w.Call(n, h)
		}
	} else {
		a.cancel = func(h js.Value) {
			w.Call("clearTimeout", h)
		}
	}
	return a
}

// Request runs cb on the next display refresh. The timestamp passed is the
// one of the browser when it provides one.
func (a *AnimationFrame) Request(cb Callback) RequestID {
	a.next++
	id := a.next
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		delete(a.pending, id)
		fn.Release()
		now := Since()
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			now = time.Duration(args[0].Float() * float64(time.Millisecond))
		}
		cb(now)
		return nil
	})
	a.pending[id] = pendingFrame{handle: a.request(fn), fn: fn}
	return id
}

func (a *AnimationFrame) Cancel(id RequestID) {
	p, ok := a.pending[id]
	if !ok {
		return
	}
	delete(a.pending, id)
	a.cancel(p.handle)
	p.fn.Release()
}
