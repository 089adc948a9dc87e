package intro

import "time"

// FrameFunc runs once per loop advance with the loop's current time.
// Returning false unregisters the callback.
type FrameFunc func(now time.Duration) bool

// CancelFunc detaches a scheduled callback. Safe to call more than once.
type CancelFunc func()

type loopTimer struct {
	id       int
	deadline time.Duration
	fn       func()
}

// Loop is the cooperative run loop every adapter schedules against. The
// host drives it (the demo app calls Advance from ebiten's Update at 60
// TPS); tests advance virtual time directly. All callbacks run on the
// goroutine that calls Advance, so callbacks never interleave.
type Loop struct {
	now    time.Duration
	nextID int
	frames map[int]FrameFunc
	order  []int
	timers []loopTimer
}

func NewLoop() *Loop {
	return &Loop{frames: map[int]FrameFunc{}}
}

// Now returns the loop's monotonic virtual time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// EachFrame registers fn to run on every Advance until it returns false
// or the returned cancel is called.
func (l *Loop) EachFrame(fn FrameFunc) CancelFunc {
	if fn == nil {
		return func() {}
	}
	l.nextID++
	id := l.nextID
	l.frames[id] = fn
	l.order = append(l.order, id)
	return func() {
		delete(l.frames, id)
	}
}

// After schedules fn once the loop has advanced d past the current time.
// A non-positive d fires on the next Advance, even Advance(0).
func (l *Loop) After(d time.Duration, fn func()) CancelFunc {
	if fn == nil {
		return func() {}
	}
	if d < 0 {
		d = 0
	}
	l.nextID++
	id := l.nextID
	l.timers = append(l.timers, loopTimer{id: id, deadline: l.now + d, fn: fn})
	return func() {
		for i := range l.timers {
			if l.timers[i].id == id {
				l.timers = append(l.timers[:i], l.timers[i+1:]...)
				return
			}
		}
	}
}

// Advance moves time forward by dt, fires every timer whose deadline has
// passed (in deadline order), then runs one frame pass. Frame callbacks
// registered during the frame pass wait for the next Advance.
func (l *Loop) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.now += dt

	// Timers may schedule more timers; keep draining until nothing is due.
	for {
		idx := -1
		for i := range l.timers {
			if l.timers[i].deadline > l.now {
				continue
			}
			if idx < 0 || l.timers[i].deadline < l.timers[idx].deadline ||
				(l.timers[i].deadline == l.timers[idx].deadline && l.timers[i].id < l.timers[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		t := l.timers[idx]
		l.timers = append(l.timers[:idx], l.timers[idx+1:]...)
		t.fn()
	}

	// Snapshot so callbacks added mid-pass run next frame.
	ids := append([]int(nil), l.order...)
	for _, id := range ids {
		fn, ok := l.frames[id]
		if !ok {
			continue
		}
		if !fn(l.now) {
			delete(l.frames, id)
		}
	}

	// Compact the order list once it has accumulated dead ids.
	if len(l.order) > 2*len(l.frames) && len(l.order) > 16 {
		kept := l.order[:0]
		for _, id := range l.order {
			if _, ok := l.frames[id]; ok {
				kept = append(kept, id)
			}
		}
		l.order = kept
	}
}
