package intro

// RevealMarker backs the scroll and visibility trigger types. It observes
// nothing: its presence in a pattern simply means the pattern is
// non-blocking, and the controller self-completes the run shortly after
// attach. The actual scroll-driven reveal is cosmetic and never gates the
// phase.
type RevealMarker struct{}

func (RevealMarker) Attach(*Store, *Loop, func()) CancelFunc {
	return func() {}
}
