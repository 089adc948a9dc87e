package intro

import "time"

// Store is the single mutable source of truth for one intro run. A single
// owner creates it; all mutation goes through the action methods below,
// each of which runs to completion within one loop tick. Listeners are
// invoked synchronously after any action that changed state.
type Store struct {
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewStore creates the store for one run. A nil pattern models "no
// intro" as a degenerate, already-complete run: born ready, completed,
// unlocked, chrome visible.
func NewStore(pattern *Pattern, lockByDefault bool) *Store {
	s := &Store{listeners: map[int]func(State){}}
	if pattern == nil {
		s.state = State{
			Phase:          PhaseReady,
			RevealProgress: 1,
			ChromeVisible:  true,
			Completed:      true,
		}
		return s
	}
	s.state = State{
		Phase:         PhaseLocked,
		ChromeVisible: !pattern.HideChrome,
		ScrollLocked:  lockByDefault,
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	return s.state
}

// Phase returns the current phase.
func (s *Store) Phase() Phase {
	return s.state.Phase
}

// Subscribe registers a synchronous change listener and returns its
// cancel. The listener sees the post-action state.
func (s *Store) Subscribe(fn func(State)) CancelFunc {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) commit(next State) {
	if next == s.state {
		return
	}
	s.state = next
	for _, fn := range s.listeners {
		fn(next)
	}
}

// SetPhase advances the phase. Backward transitions are no-ops. Reaching
// revealing clears the scroll lock; reaching ready leaves the store fully
// unlocked, fully visible, and completed no matter which path got there.
func (s *Store) SetPhase(p Phase) {
	if !s.state.Phase.CanAdvanceTo(p) {
		return
	}
	next := s.state
	next.Phase = p
	switch p {
	case PhaseRevealing:
		next.ScrollLocked = false
	case PhaseReady:
		next.ScrollLocked = false
		next.ChromeVisible = true
		next.Completed = true
		next.RevealProgress = 1
	}
	s.commit(next)
}

// CompleteIntro is the idempotent entry point trigger adapters call.
func (s *Store) CompleteIntro() {
	s.SetPhase(PhaseReady)
}

func (s *Store) SetMediaTime(t time.Duration) {
	next := s.state
	next.MediaTime = t
	s.commit(next)
}

func (s *Store) SetTimerElapsed(t time.Duration) {
	next := s.state
	next.TimerElapsed = t
	s.commit(next)
}

func (s *Store) SetRevealProgress(p float64) {
	next := s.state
	next.RevealProgress = clamp01(p)
	s.commit(next)
}

func (s *Store) SetCurrentStep(i int) {
	if i < 0 {
		i = 0
	}
	next := s.state
	next.CurrentStep = i
	s.commit(next)
}

func (s *Store) SetStepProgress(p float64) {
	next := s.state
	next.StepProgress = clamp01(p)
	s.commit(next)
}

func (s *Store) SetScrollLocked(locked bool) {
	next := s.state
	next.ScrollLocked = locked
	s.commit(next)
}

func (s *Store) SetChromeVisible(visible bool) {
	next := s.state
	next.ChromeVisible = visible
	s.commit(next)
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
