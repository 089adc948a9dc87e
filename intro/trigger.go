package intro

// Trigger observes one external signal and requests the reveal at most
// once. Attach begins observing and returns a disposer; disposal must
// synchronously cancel all scheduled work owned by the adapter so nothing
// can mutate the store afterward. The reached callback may be invoked
// internally more than once but is delivered at most once.
type Trigger interface {
	Attach(store *Store, loop *Loop, reached func()) CancelFunc
}

// oneShot delivers a callback at most once. The guard is local to each
// adapter, not derived from store state, so a late or duplicate internal
// firing can never re-trigger the transition.
type oneShot struct {
	fired bool
	fn    func()
}

func (o *oneShot) fire() {
	if o.fired || o.fn == nil {
		return
	}
	o.fired = true
	o.fn()
}

// buildTrigger maps a descriptor onto its adapter. Non-blocking types
// map to the inert marker adapter; unknown types map to nil and are
// skipped by the session.
func buildTrigger(d TriggerDescriptor, media MediaResolver, scripts *ScriptRunner) Trigger {
	switch d.Type {
	case TriggerMediaTime:
		return &MediaTrigger{Target: d.Target, Position: d.Position, Resolve: media}
	case TriggerTimer:
		return &TimerTrigger{Duration: d.Duration}
	case TriggerSequence:
		return &SequenceTrigger{Steps: d.Steps, Scripts: scripts}
	case TriggerScroll, TriggerVisibility:
		return &RevealMarker{}
	}
	return nil
}
