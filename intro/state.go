package intro

import "time"

// State is the observable snapshot of one intro run. Only Phase (and the
// derived Completed flag) is totally ordered; the numeric progress fields
// belong to individual triggers and must never be used to infer phase.
type State struct {
	Phase Phase

	// MediaTime is the last sampled playback position of the media-time
	// trigger's target, written for diagnostics regardless of trigger state.
	MediaTime time.Duration
	// TimerElapsed is the timer trigger's accumulated time since attach.
	TimerElapsed time.Duration
	// RevealProgress is the reveal animation's progress in [0, 1].
	RevealProgress float64
	// CurrentStep is the index of the sequence step currently running.
	CurrentStep int
	// StepProgress is the current step's intra-step progress in [0, 1].
	StepProgress float64

	ScrollLocked  bool
	ChromeVisible bool

	// Completed is a one-way flag: once true it never regresses, even
	// though Phase is the authoritative gate. Consumers that only need
	// "is the gate over" read Completed.
	Completed bool
}
