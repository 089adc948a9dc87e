package intro

import (
	"log"
	"sort"
	"time"
)

// SequenceTrigger runs a multi-step scripted timeline and fires once the
// last step has settled. Steps run strictly one at a time in ascending At
// order; gaps between steps become idle time and overlapping declarations
// clamp the inter-step delay to zero.
type SequenceTrigger struct {
	Steps []SequenceStep
	// Scripts runs step-declared tengo actions; nil disables scripting.
	Scripts *ScriptRunner
}

func (s *SequenceTrigger) Attach(store *Store, loop *Loop, reached func()) CancelFunc {
	run := &sequenceRun{
		store:   store,
		loop:    loop,
		scripts: s.Scripts,
		steps:   append([]SequenceStep(nil), s.Steps...),
	}
	run.guard = &oneShot{fn: reached}

	// Declaration order is not trusted.
	sort.SliceStable(run.steps, func(i, j int) bool {
		return run.steps[i].At < run.steps[j].At
	})

	run.schedule(0, 0)

	return func() {
		run.disposed = true
		run.guard.fired = true
		if run.cancel != nil {
			run.cancel()
		}
	}
}

type sequenceRun struct {
	store    *Store
	loop     *Loop
	scripts  *ScriptRunner
	steps    []SequenceStep
	guard    *oneShot
	cancel   CancelFunc
	disposed bool
}

// schedule queues step i, delaying until its At offset where the timeline
// hasn't already passed it.
func (r *sequenceRun) schedule(i int, prevEnd time.Duration) {
	if r.disposed {
		return
	}
	if i >= len(r.steps) {
		r.guard.fire()
		return
	}
	delay := r.steps[i].At - prevEnd
	if delay <= 0 {
		r.start(i)
		return
	}
	r.cancel = r.loop.After(delay, func() {
		r.start(i)
	})
}

func (r *sequenceRun) start(i int) {
	if r.disposed {
		return
	}
	step := r.steps[i]
	end := step.At + step.Duration

	r.store.SetCurrentStep(i)
	r.store.SetStepProgress(0)

	// Declared side effects land atomically before any animation frame.
	if step.Actions.ChromeVisible != nil {
		r.store.SetChromeVisible(*step.Actions.ChromeVisible)
	}
	if step.Actions.ScrollLocked != nil {
		r.store.SetScrollLocked(*step.Actions.ScrollLocked)
	}
	if step.Script != "" {
		if r.scripts == nil {
			log.Printf("intro: step %q declares a script but no runner is configured", step.ID)
		} else if err := r.scripts.RunStep(r.store, step, r.loop.Now()); err != nil {
			// A broken script must not gate the visitor.
			log.Printf("intro: step %q script error: %v", step.ID, err)
		}
	}

	if step.Duration <= 0 {
		r.store.SetStepProgress(1)
		r.schedule(i+1, end)
		return
	}

	started := r.loop.Now()
	r.cancel = r.loop.EachFrame(func(now time.Duration) bool {
		if r.disposed {
			return false
		}
		progress := float64(now-started) / float64(step.Duration)
		if progress >= 1 {
			r.store.SetStepProgress(1)
			r.schedule(i+1, end)
			return false
		}
		r.store.SetStepProgress(progress)
		return true
	})
}
