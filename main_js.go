// SPDX-License-Identifier: GPL-2.0-or-later

//go:build js

package main

import (
	"flag"
	"log"
	"syscall/js"
	"time"

	"glcube/conlog"
	"glcube/frame"
	"glcube/texture"
	"glcube/window"
)

// main animates a generated cube texture on the canvas with id "glcube".
// Every frame the faces are regenerated and uploaded again.
func main() {
	flag.Parse()
	if err := applyCommandLine(); err != nil {
		log.Fatalf("Command line: %v", err)
	}
	canvas := js.Global().Get("document").Call("getElementById", "glcube")
	if !canvas.Truthy() {
		log.Fatal("No canvas glcube")
	}
	ctx, err := window.Setup(canvas, map[string]any{"premultipliedAlpha": false}, nil)
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}
	opts, err := buildOptions()
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}
	tm := texture.NewManager(ctx)
	t, err := texture.BuildFromBuffers(ctx, checkerFaces(checkerSize, checkerCell, 0),
		checkerSize, checkerSize, opts)
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}
	t.SetName("checker")
	t.EnableLinearScaling()
	t.EnableWrapClamp()
	tm.Add(t)
	tm.List(conlog.Writer())

	af := frame.NewAnimationFrame()
	var onFrame frame.Callback
	onFrame = func(now time.Duration) {
		phase := int(now/(time.Second/checkerCell)) % (2 * checkerCell)
		for f, buf := range checkerFaces(checkerSize, checkerCell, phase) {
			if err := t.UploadData(buf, texture.Face(f), opts.Flip, 0); err != nil {
				conlog.Printf("Upload %v: %v", texture.Face(f), err)
				return
			}
		}
		af.Request(onFrame)
	}
	af.Request(onFrame)
	select {}
}
