package intro

import "time"

// TriggerType identifies the external signal a trigger observes.
type TriggerType string

const (
	TriggerMediaTime  TriggerType = "media-time"
	TriggerTimer      TriggerType = "timer"
	TriggerScroll     TriggerType = "scroll"
	TriggerVisibility TriggerType = "visibility"
	TriggerSequence   TriggerType = "sequence"
)

// Blocking reports whether this trigger type gates the phase. Patterns
// with no blocking trigger self-complete shortly after attach.
func (t TriggerType) Blocking() bool {
	switch t {
	case TriggerMediaTime, TriggerTimer, TriggerSequence:
		return true
	}
	return false
}

// TriggerDescriptor is one trigger entry in a pattern definition. Only
// the fields relevant to Type are read.
type TriggerDescriptor struct {
	Type TriggerType
	// Target names the media element the media-time trigger watches.
	Target string
	// Position is the playback position the media-time trigger fires at.
	Position time.Duration
	// Duration is the timer trigger's fire time.
	Duration time.Duration
	// Steps is the sequence trigger's timeline.
	Steps []SequenceStep
}

// StepActions are side effects a sequence step applies when it starts.
// Nil fields leave the corresponding flag untouched.
type StepActions struct {
	ChromeVisible *bool
	ScrollLocked  *bool
}

// SequenceStep is one scripted interval of a sequence timeline.
type SequenceStep struct {
	ID string
	// At is the step's offset from the start of the sequence. Steps are
	// processed in ascending At order regardless of declaration order.
	At       time.Duration
	Duration time.Duration
	Actions  StepActions
	// Script is optional tengo source run when the step starts, after
	// Actions are applied.
	Script string
}

// Meta is the human-readable pattern metadata a picker lists without
// loading the full definition.
type Meta struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Tags        []string
	Category    string
}

// Pattern is a named, reusable trigger configuration plus defaults.
type Pattern struct {
	ID       string
	Meta     Meta
	Triggers []TriggerDescriptor
	// RevealDuration is the default reveal animation length; at or below
	// the instant threshold the reveal skips the animated path entirely.
	RevealDuration time.Duration
	// HideChrome hides persistent UI while the gate is up.
	HideChrome bool
}

// Blocking reports whether any declared trigger gates the phase.
func (p *Pattern) Blocking() bool {
	if p == nil {
		return false
	}
	for _, d := range p.Triggers {
		if d.Type.Blocking() {
			return true
		}
	}
	return false
}
