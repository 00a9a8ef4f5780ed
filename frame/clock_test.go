// SPDX-License-Identifier: GPL-2.0-or-later

package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	var c Clock
	c.Update(5 * time.Second)
	assert.Equal(t, time.Millisecond, c.FrameTime())
	assert.Equal(t, 1, c.FrameCount())

	c.Update(5*time.Second + 20*time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, c.FrameTime())

	// stalls and clock hiccups are clamped
	c.Update(7 * time.Second)
	assert.Equal(t, 100*time.Millisecond, c.FrameTime())
	c.Update(7 * time.Second)
	assert.Equal(t, time.Millisecond, c.FrameTime())
	assert.Equal(t, 4, c.FrameCount())
	assert.Equal(t, 7*time.Second, c.Time())
}

func TestClockFPS(t *testing.T) {
	var c Clock
	for i := 0; i <= 50; i++ {
		c.Update(time.Duration(i) * 20 * time.Millisecond)
	}
	assert.InDelta(t, 50, c.FPS(), 0.01)
}
