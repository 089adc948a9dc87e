package intro

import (
	"log"
	"time"
)

const (
	// mediaRetryInterval bounds how often a missing or replaced target is
	// re-queried.
	mediaRetryInterval = 100 * time.Millisecond
	// DefaultMediaFailsafe forces the reveal when the target never
	// reaches the requested position, so a mis-configured pattern can
	// never permanently gate the visitor.
	DefaultMediaFailsafe = 5 * time.Second
)

// Media is a playback target the media-time trigger observes. It is
// satisfied by ebiten's *audio.Player.
type Media interface {
	Position() time.Duration
	IsPlaying() bool
}

// MediaResolver looks up the named playback target. It may return nil
// while the target doesn't exist yet; the trigger keeps retrying on a
// bounded interval and tolerates the target being swapped out in place.
type MediaResolver func(name string) Media

// MediaTrigger fires once the target's playback position reaches
// Position. The live position is reported into the store on every frame
// regardless of trigger state, for diagnostics.
type MediaTrigger struct {
	Target   string
	Position time.Duration
	Resolve  MediaResolver
	// Failsafe overrides DefaultMediaFailsafe when positive.
	Failsafe time.Duration
}

func (m *MediaTrigger) Attach(store *Store, loop *Loop, reached func()) CancelFunc {
	failsafe := m.Failsafe
	if failsafe <= 0 {
		failsafe = DefaultMediaFailsafe
	}

	var target Media
	if m.Resolve != nil {
		target = m.Resolve(m.Target)
	}

	var cancelFrame, cancelRetry, cancelFailsafe CancelFunc

	settle := func() {
		cancelFrame()
		cancelFailsafe()
		cancelRetry()
	}
	guard := &oneShot{fn: func() {
		settle()
		reached()
	}}

	var retry func()
	retry = func() {
		if m.Resolve != nil {
			if found := m.Resolve(m.Target); found != nil {
				// Re-resolving also picks up a replaced target.
				target = found
			}
		}
		cancelRetry = loop.After(mediaRetryInterval, retry)
	}
	cancelRetry = loop.After(mediaRetryInterval, retry)

	cancelFailsafe = loop.After(failsafe, func() {
		if target == nil {
			log.Printf("intro: media target %q never appeared; firing failsafe reveal", m.Target)
		} else {
			log.Printf("intro: media target %q never reached %v; firing failsafe reveal", m.Target, m.Position)
		}
		guard.fire()
	})

	cancelFrame = loop.EachFrame(func(time.Duration) bool {
		if target == nil {
			return true
		}
		pos := target.Position()
		store.SetMediaTime(pos)
		if pos < m.Position {
			return true
		}
		guard.fire()
		return false
	})

	return func() {
		guard.fired = true
		settle()
	}
}
