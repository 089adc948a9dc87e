package intro

// Phase is the authoritative gate state for one intro run. Values are
// strings so they read cleanly in debug output and definition files.
type Phase string

const (
	// PhaseLocked blocks interaction until a trigger condition is met.
	PhaseLocked Phase = "locked"
	// PhaseRevealing is the animated transition out of the gate.
	PhaseRevealing Phase = "revealing"
	// PhaseReady means the gate is over and the page is interactive.
	PhaseReady Phase = "ready"
)

func (p Phase) rank() int {
	switch p {
	case PhaseLocked:
		return 0
	case PhaseRevealing:
		return 1
	case PhaseReady:
		return 2
	}
	return -1
}

// CanAdvanceTo reports whether moving from p to next is a legal, strictly
// forward transition. locked → ready is allowed (the instant reveal path);
// nothing may leave ready.
func (p Phase) CanAdvanceTo(next Phase) bool {
	pr, nr := p.rank(), next.rank()
	if pr < 0 || nr < 0 {
		return false
	}
	return nr > pr
}
