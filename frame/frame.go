// SPDX-License-Identifier: GPL-2.0-or-later

// Package frame schedules per frame callbacks, either from the display
// refresh of a browser or from a fixed interval timer.
package frame

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the frame interval of the timer fallback.
const DefaultInterval = time.Second / 60

// Callback is run once for the frame it was requested for.
type Callback func(now time.Duration)

// RequestID identifies a pending callback. IDs are never zero.
type RequestID uint64

type Scheduler interface {
	// Request runs cb on the next frame.
	Request(cb Callback) RequestID
	// Cancel drops a pending request. Unknown IDs are ignored.
	Cancel(id RequestID)
}

type request struct {
	id RequestID
	cb Callback
}

// Timer is a Scheduler driven by a fixed interval. Callbacks run on the
// goroutine calling Run or Step, which lets them use a GL context owned by
// that goroutine. Request and Cancel may be called from anywhere.
type Timer struct {
	mu       sync.Mutex
	interval time.Duration
	next     RequestID
	pending  []request
}

func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{interval: interval}
}

func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// SetInterval changes the interval used by Run from the next tick on.
func (t *Timer) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	t.mu.Lock()
	t.interval = d
	t.mu.Unlock()
}

func (t *Timer) Request(cb Callback) RequestID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.pending = append(t.pending, request{t.next, cb})
	return t.next
}

func (t *Timer) Cancel(id RequestID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, r := range t.pending {
		if r.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of requested callbacks.
func (t *Timer) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Step runs the callbacks pending at the time of the call in request order
// and returns how many ran. Callbacks requested while stepping run on the
// next step.
func (t *Timer) Step(now time.Duration) int {
	t.mu.Lock()
	due := t.pending
	t.pending = nil
	t.mu.Unlock()
	for _, r := range due {
		r.cb(now)
	}
	return len(due)
}

// Run steps once per interval until ctx is done.
func (t *Timer) Run(ctx context.Context) error {
	interval := t.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.Step(Since())
			if i := t.Interval(); i != interval {
				interval = i
				ticker.Reset(interval)
			}
		}
	}
}
