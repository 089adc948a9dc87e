package intro

import (
	"testing"
	"time"
)

func boolPtr(b bool) *bool { return &b }

func TestSequenceGapTiming(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	fired := 0
	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{ID: "a", At: 0, Duration: time.Second},
		{ID: "b", At: 1500 * time.Millisecond, Duration: 500 * time.Millisecond},
	}}
	trigger.Attach(store, loop, func() { fired++ })

	// Step a starts immediately at t=0.
	if st := store.State(); st.CurrentStep != 0 || st.StepProgress != 0 {
		t.Fatalf("step a not started at t=0: %+v", st)
	}

	loop.Advance(500 * time.Millisecond)
	if got := store.State().StepProgress; got != 0.5 {
		t.Fatalf("step a progress at 500ms = %v, want 0.5", got)
	}

	// Step a ends at t=1000; the 500ms gap is idle time.
	loop.Advance(500 * time.Millisecond)
	if st := store.State(); st.CurrentStep != 0 || st.StepProgress != 1 {
		t.Fatalf("step a not settled at t=1000: %+v", st)
	}

	loop.Advance(499 * time.Millisecond)
	if got := store.State().CurrentStep; got != 0 {
		t.Fatalf("step b started during the idle gap")
	}

	loop.Advance(time.Millisecond)
	if st := store.State(); st.CurrentStep != 1 || st.StepProgress != 0 {
		t.Fatalf("step b not started at t=1500: %+v", st)
	}

	loop.Advance(500 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("sequence did not complete at t=2000 (fired=%d)", fired)
	}
}

func TestSequenceOverlapClampsDelay(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	fired := 0
	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{ID: "a", At: 0, Duration: time.Second},
		{ID: "b", At: 500 * time.Millisecond, Duration: 500 * time.Millisecond},
	}}
	trigger.Attach(store, loop, func() { fired++ })

	// Step a settles at t=1000; b's declared start is already past, so it
	// begins immediately rather than before a ends.
	loop.Advance(999 * time.Millisecond)
	if got := store.State().CurrentStep; got != 0 {
		t.Fatalf("step b started before step a settled")
	}
	loop.Advance(time.Millisecond)
	if st := store.State(); st.CurrentStep != 1 || st.StepProgress != 0 {
		t.Fatalf("step b not started right after a settled: %+v", st)
	}

	loop.Advance(500 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("sequence did not complete (fired=%d)", fired)
	}
}

func TestSequenceDeclarationOrderNotTrusted(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{ID: "late", At: time.Second, Duration: 0},
		{ID: "early", At: 0, Duration: 100 * time.Millisecond},
	}}
	trigger.Attach(store, loop, func() {})

	// Sorted by At: "early" runs as step 0 despite being declared second.
	if got := store.State().CurrentStep; got != 0 {
		t.Fatalf("CurrentStep = %d at start, want 0", got)
	}
	loop.Advance(100 * time.Millisecond)
	if got := store.State().CurrentStep; got != 0 {
		t.Fatalf("late step ran early")
	}
	loop.Advance(900 * time.Millisecond)
	if got := store.State().CurrentStep; got != 1 {
		t.Fatalf("late step never ran: step=%d", got)
	}
}

func TestSequenceEmptyCompletesImmediately(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()
	before := store.State()

	fired := 0
	trigger := &SequenceTrigger{}
	trigger.Attach(store, loop, func() { fired++ })

	if fired != 1 {
		t.Fatalf("empty sequence did not complete immediately")
	}
	if got := store.State(); got != before {
		t.Fatalf("empty sequence changed state: %+v", got)
	}
	loop.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("empty sequence fired again")
	}
}

func TestSequenceZeroDurationStepResolvesWithoutFrame(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	fired := 0
	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{ID: "a", At: 0, Duration: 0},
		{ID: "b", At: 0, Duration: 0},
	}}
	trigger.Attach(store, loop, func() { fired++ })

	// Both steps resolve synchronously at attach, no frame needed.
	if fired != 1 {
		t.Fatalf("zero-duration chain did not complete at attach (fired=%d)", fired)
	}
	if st := store.State(); st.CurrentStep != 1 || st.StepProgress != 1 {
		t.Fatalf("unexpected final step state: %+v", st)
	}
}

func TestSequenceStepActions(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{
			ID:       "show-chrome",
			At:       0,
			Duration: 100 * time.Millisecond,
			Actions:  StepActions{ChromeVisible: boolPtr(true)},
		},
		{
			ID:       "unlock",
			At:       200 * time.Millisecond,
			Duration: 0,
			Actions:  StepActions{ScrollLocked: boolPtr(false)},
		},
	}}
	trigger.Attach(store, loop, func() {})

	if st := store.State(); !st.ChromeVisible {
		t.Fatalf("step action did not show chrome at step start")
	}
	if st := store.State(); !st.ScrollLocked {
		t.Fatalf("second step's action applied before its start")
	}

	loop.Advance(100 * time.Millisecond) // step one settles
	loop.Advance(100 * time.Millisecond) // idle gap elapses, step two starts
	if st := store.State(); st.ScrollLocked {
		t.Fatalf("step action did not unlock scroll")
	}
}

func TestSequenceDisposeStopsFurtherSteps(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	fired := 0
	trigger := &SequenceTrigger{Steps: []SequenceStep{
		{ID: "a", At: 0, Duration: time.Second},
		{ID: "b", At: time.Second, Duration: time.Second},
	}}
	dispose := trigger.Attach(store, loop, func() { fired++ })

	loop.Advance(500 * time.Millisecond)
	dispose()
	progressAtDispose := store.State().StepProgress

	loop.Advance(5 * time.Second)
	st := store.State()
	if st.CurrentStep != 0 {
		t.Fatalf("step after disposal point started: step=%d", st.CurrentStep)
	}
	if st.StepProgress != progressAtDispose {
		t.Fatalf("disposed sequence still animated progress")
	}
	if fired != 0 {
		t.Fatalf("disposed sequence fired completion")
	}
}
