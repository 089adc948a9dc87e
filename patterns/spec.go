package patterns

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/introgate/intro"
)

type PatternSpec struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Icon        string        `yaml:"icon"`
	Tags        []string      `yaml:"tags"`
	Category    string        `yaml:"category"`
	RevealMS    int           `yaml:"reveal_ms"`
	HideChrome  bool          `yaml:"hide_chrome"`
	Triggers    []TriggerSpec `yaml:"triggers"`
}

type TriggerSpec struct {
	Type       string     `yaml:"type"`
	Target     string     `yaml:"target"`
	PositionMS int        `yaml:"position_ms"`
	DurationMS int        `yaml:"duration_ms"`
	Steps      []StepSpec `yaml:"steps"`
}

type StepSpec struct {
	ID         string       `yaml:"id"`
	AtMS       int          `yaml:"at_ms"`
	DurationMS int          `yaml:"duration_ms"`
	Actions    *ActionsSpec `yaml:"actions"`
	Script     string       `yaml:"script"`
}

type ActionsSpec struct {
	ChromeVisible *bool `yaml:"chrome_visible"`
	ScrollLocked  *bool `yaml:"scroll_locked"`
}

// LoadSpec reads and decodes an embedded (or disk-overridden) pattern
// definition file.
func LoadSpec(filename string) (PatternSpec, error) {
	var zero PatternSpec
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("patterns: load %s: %w", filename, err)
	}

	var spec PatternSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("patterns: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Pattern converts the decoded spec into the engine's definition type.
func (s PatternSpec) Pattern() (*intro.Pattern, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("patterns: definition missing id")
	}

	p := &intro.Pattern{
		ID: s.ID,
		Meta: intro.Meta{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Icon:        s.Icon,
			Tags:        s.Tags,
			Category:    s.Category,
		},
		RevealDuration: time.Duration(s.RevealMS) * time.Millisecond,
		HideChrome:     s.HideChrome,
	}

	for _, t := range s.Triggers {
		d, err := t.descriptor()
		if err != nil {
			return nil, fmt.Errorf("patterns: %s: %w", s.ID, err)
		}
		p.Triggers = append(p.Triggers, d)
	}

	return p, nil
}

func (t TriggerSpec) descriptor() (intro.TriggerDescriptor, error) {
	var d intro.TriggerDescriptor
	switch t.Type {
	case "media-time", "video-time":
		// "video-time" is accepted as a legacy alias.
		d.Type = intro.TriggerMediaTime
		d.Target = t.Target
		d.Position = time.Duration(t.PositionMS) * time.Millisecond
	case "timer":
		d.Type = intro.TriggerTimer
		d.Duration = time.Duration(t.DurationMS) * time.Millisecond
	case "sequence":
		d.Type = intro.TriggerSequence
		for _, st := range t.Steps {
			if st.AtMS < 0 || st.DurationMS < 0 {
				return d, fmt.Errorf("step %q has negative timing", st.ID)
			}
			step := intro.SequenceStep{
				ID:       st.ID,
				At:       time.Duration(st.AtMS) * time.Millisecond,
				Duration: time.Duration(st.DurationMS) * time.Millisecond,
				Script:   st.Script,
			}
			if st.Actions != nil {
				step.Actions = intro.StepActions{
					ChromeVisible: st.Actions.ChromeVisible,
					ScrollLocked:  st.Actions.ScrollLocked,
				}
			}
			d.Steps = append(d.Steps, step)
		}
	case "scroll":
		d.Type = intro.TriggerScroll
	case "visibility":
		d.Type = intro.TriggerVisibility
	default:
		return d, fmt.Errorf("unknown trigger type %q", t.Type)
	}
	return d, nil
}
