package intro

import "time"

const (
	// InstantRevealThreshold is the effective reveal duration at or below
	// which the animated path is skipped so unlock, chrome, and content
	// land in the same frame.
	InstantRevealThreshold = 100 * time.Millisecond
	// autoRevealDelay gives non-blocking patterns one paint before the
	// run self-completes.
	autoRevealDelay = 100 * time.Millisecond
)

// Controller turns a trigger's "condition met" signal into the
// locked → revealing → ready transition.
type Controller struct {
	store    *Store
	loop     *Loop
	duration time.Duration

	revealing bool
	cancel    CancelFunc
}

// NewController creates the controller for one run. duration is the
// effective reveal duration (per-instance override already applied).
func NewController(store *Store, loop *Loop, duration time.Duration) *Controller {
	return &Controller{store: store, loop: loop, duration: duration}
}

// TriggerReveal runs the reveal transition. Every call after the first is
// a no-op, as is any call once the run is already ready (a trigger firing
// after a dev override completed the run must not restage anything).
func (c *Controller) TriggerReveal() {
	if c.revealing {
		return
	}
	if c.store.Phase() == PhaseReady {
		return
	}
	c.revealing = true

	// Instant patterns present unlock, chrome, and content together
	// rather than through a visibly staged transition. This applies to
	// sequence patterns too: their staging already happened per step.
	if c.duration <= InstantRevealThreshold {
		c.store.CompleteIntro()
		return
	}

	c.store.SetPhase(PhaseRevealing)
	started := c.loop.Now()
	c.cancel = c.loop.EachFrame(func(now time.Duration) bool {
		progress := float64(now-started) / float64(c.duration)
		if progress >= 1 {
			c.store.CompleteIntro()
			return false
		}
		c.store.SetRevealProgress(progress)
		return true
	})
}

// ScheduleAutoComplete arms the self-completion path for patterns with no
// blocking trigger. Returns the disposer for the pending delay.
func (c *Controller) ScheduleAutoComplete() CancelFunc {
	return c.loop.After(autoRevealDelay, c.TriggerReveal)
}

// Close cancels any in-flight reveal animation.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
