package intro

import "time"

// Settings carries the per-instance configuration merged over a pattern's
// defaults.
type Settings struct {
	// RevealDuration overrides the pattern's reveal duration when
	// positive. An override at or below the instant threshold suppresses
	// the revealing phase entirely, sequence patterns included.
	RevealDuration time.Duration
	// LockScroll locks scrolling for the lifetime of the gate.
	LockScroll bool
	// ContentFadeStep is the sequence step gated content fades in during.
	ContentFadeStep int
}

// Overlay names a component rendered outside the gated content tree. The
// engine passes it through untouched; the caller provides the renderer.
type Overlay struct {
	Component string
	Props     map[string]any
}

// Config is the static configuration for one run. A new config means a
// brand-new session; nothing is reused across runs.
type Config struct {
	Pattern  *Pattern
	Settings Settings
	Overlay  *Overlay
}

// Options are the collaborators a session attaches to.
type Options struct {
	Loop    *Loop
	Locker  ScrollLocker
	Media   MediaResolver
	Chrome  func(visible bool)
	Scripts *ScriptRunner
	// LockOwner keys this session's holds on the shared scroll-lock
	// service so concurrent lockers don't clobber each other's release.
	LockOwner string
}

// Session owns one intro run end to end: store, controller, trigger
// adapters, and the lock bridge.
type Session struct {
	cfg  Config
	opts Options
	loop *Loop

	store      *Store
	controller *Controller
	bridge     *Bridge

	disposers []CancelFunc
	started   bool
	closed    bool
}

// NewSession builds the run but does not attach anything yet. A nil
// pattern yields a session that is already complete.
func NewSession(cfg Config, opts Options) *Session {
	loop := opts.Loop
	if loop == nil {
		loop = NewLoop()
	}

	owner := opts.LockOwner
	if owner == "" {
		owner = "intro"
	}

	store := NewStore(cfg.Pattern, cfg.Settings.LockScroll)

	duration := time.Duration(0)
	if cfg.Pattern != nil {
		duration = cfg.Pattern.RevealDuration
	}
	if cfg.Settings.RevealDuration > 0 {
		duration = cfg.Settings.RevealDuration
	}

	return &Session{
		cfg:        cfg,
		opts:       opts,
		loop:       loop,
		store:      store,
		controller: NewController(store, loop, duration),
		bridge:     NewBridge(store, opts.Locker, owner, opts.Chrome),
	}
}

// Start attaches every declared trigger and arms the auto-complete path
// for non-blocking patterns. Calling Start twice is a no-op.
func (s *Session) Start() {
	if s.started || s.closed {
		return
	}
	s.started = true

	pattern := s.cfg.Pattern
	if pattern == nil {
		return
	}

	scripts := s.opts.Scripts
	if scripts == nil && patternHasScripts(pattern) {
		scripts = NewScriptRunner()
	}

	for _, d := range pattern.Triggers {
		trigger := buildTrigger(d, s.opts.Media, scripts)
		if trigger == nil {
			continue
		}
		s.disposers = append(s.disposers, trigger.Attach(s.store, s.loop, s.controller.TriggerReveal))
	}

	if !pattern.Blocking() {
		s.disposers = append(s.disposers, s.controller.ScheduleAutoComplete())
	}
}

// Store returns the run's phase store.
func (s *Session) Store() *Store {
	return s.store
}

// State returns a snapshot of the run's state.
func (s *Session) State() State {
	return s.store.State()
}

// Pattern returns the configured pattern; nil means no intro.
func (s *Session) Pattern() *Pattern {
	return s.cfg.Pattern
}

// Overlay returns the configured overlay, if any.
func (s *Session) Overlay() *Overlay {
	return s.cfg.Overlay
}

// ContentOpacity computes the gated content's visibility for this run's
// configured fade step.
func (s *Session) ContentOpacity() float64 {
	return ContentOpacity(s.store.State(), s.cfg.Settings.ContentFadeStep)
}

// Close disposes every adapter and unconditionally releases the scroll
// lock, even when no trigger ever fired.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, dispose := range s.disposers {
		dispose()
	}
	s.disposers = nil
	s.controller.Close()
	s.bridge.Close()
}

func patternHasScripts(p *Pattern) bool {
	for _, d := range p.Triggers {
		for _, step := range d.Steps {
			if step.Script != "" {
				return true
			}
		}
	}
	return false
}
