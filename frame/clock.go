// SPDX-License-Identifier: GPL-2.0-or-later

package frame

import (
	"time"
)

var (
	startTime = time.Now()
)

// Since returns the time since process start. It is the timestamp handed
// to frame callbacks.
func Since() time.Duration {
	return time.Since(startTime)
}

const (
	minFrameTime = time.Millisecond
	maxFrameTime = 100 * time.Millisecond
)

// Clock accounts the time between frames.
type Clock struct {
	time       time.Duration
	oldTime    time.Duration
	frameTime  time.Duration
	frameCount int

	fpsStart  time.Duration
	fpsFrames int
	fps       float32
}

func (c *Clock) Time() time.Duration      { return c.time }
func (c *Clock) FrameTime() time.Duration { return c.frameTime }
func (c *Clock) FrameCount() int          { return c.frameCount }

// FPS is the frame rate over the last full second, zero before that.
func (c *Clock) FPS() float32 { return c.fps }

// Update starts the frame at now. The frame time is clamped to
// [1ms, 100ms], the first frame gets the minimum.
func (c *Clock) Update(now time.Duration) {
	c.time = now
	if c.frameCount == 0 {
		c.frameTime = minFrameTime
		c.fpsStart = now
	} else {
		c.frameTime = min(max(now-c.oldTime, minFrameTime), maxFrameTime)
		c.fpsFrames++
		if d := now - c.fpsStart; d >= time.Second {
			c.fps = float32(c.fpsFrames) / float32(d.Seconds())
			c.fpsStart = now
			c.fpsFrames = 0
		}
	}
	c.oldTime = now
	c.frameCount++
}
