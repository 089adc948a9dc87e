package patterns

import (
	"github.com/milk9111/introgate/intro"
)

// RegisterBuiltins installs the stock pattern set: the two trivial
// patterns eagerly, and the heavier gate patterns lazily from their
// embedded definition files so an app that never selects them pays
// nothing.
func RegisterBuiltins(r *Registry) {
	r.Register(&intro.Pattern{
		ID: "scroll-reveal",
		Meta: intro.Meta{
			Name:        "Scroll Reveal",
			Description: "Non-blocking; content reveals as the visitor scrolls.",
			Icon:        "scroll",
			Tags:        []string{"cosmetic", "non-blocking"},
			Category:    "reveal",
		},
		Triggers: []intro.TriggerDescriptor{{Type: intro.TriggerScroll}},
	})

	r.Register(&intro.Pattern{
		ID: "instant",
		Meta: intro.Meta{
			Name:        "Instant",
			Description: "No gate; everything is interactive on first paint.",
			Icon:        "bolt",
			Category:    "reveal",
		},
	})

	lazies := []struct {
		id   string
		file string
		meta intro.Meta
	}{
		{
			id:   "splash-audio",
			file: "splash_audio.yaml",
			meta: intro.Meta{
				Name:        "Audio Splash",
				Description: "Gates until the splash track reaches its cue point.",
				Icon:        "waveform",
				Tags:        []string{"gate", "media"},
				Category:    "gate",
			},
		},
		{
			id:   "countdown",
			file: "countdown.yaml",
			meta: intro.Meta{
				Name:        "Countdown",
				Description: "Gates for a fixed duration after load.",
				Icon:        "clock",
				Tags:        []string{"gate", "timer"},
				Category:    "gate",
			},
		},
		{
			id:   "scripted-tour",
			file: "scripted_tour.yaml",
			meta: intro.Meta{
				Name:        "Scripted Tour",
				Description: "Multi-step timeline with per-step side effects.",
				Icon:        "film",
				Tags:        []string{"gate", "sequence"},
				Category:    "gate",
			},
		},
	}
	for _, l := range lazies {
		file := l.file
		r.RegisterLazy(l.id, l.meta, func() (*intro.Pattern, error) {
			spec, err := LoadSpec(file)
			if err != nil {
				return nil, err
			}
			return spec.Pattern()
		})
	}
}
