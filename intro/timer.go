package intro

import "time"

// TimerTrigger fires once a fixed wall-clock duration has elapsed since
// attach. Elapsed time accumulates on the frame loop and is written into
// the store on every tick up to and including the firing tick.
type TimerTrigger struct {
	Duration time.Duration
}

func (t *TimerTrigger) Attach(store *Store, loop *Loop, reached func()) CancelFunc {
	guard := &oneShot{fn: reached}
	start := loop.Now()
	return loop.EachFrame(func(now time.Duration) bool {
		elapsed := now - start
		store.SetTimerElapsed(elapsed)
		if elapsed < t.Duration {
			return true
		}
		guard.fire()
		return false
	})
}
