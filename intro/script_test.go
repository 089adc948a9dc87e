package intro

import (
	"strings"
	"testing"
)

func TestScriptRunnerStepBuiltins(t *testing.T) {
	store := NewStore(testPattern(true), true)
	runner := NewScriptRunner()

	step := SequenceStep{
		ID: "headline",
		Script: strings.Join([]string{
			`set_chrome_visible(true)`,
			`set_scroll_locked(false)`,
		}, "\n"),
	}
	if err := runner.RunStep(store, step, 0); err != nil {
		t.Fatalf("RunStep: %v", err)
	}

	st := store.State()
	if !st.ChromeVisible || st.ScrollLocked {
		t.Fatalf("script builtins did not mutate the store: %+v", st)
	}
}

func TestScriptRunnerCompileErrorReturned(t *testing.T) {
	store := NewStore(testPattern(true), true)
	runner := NewScriptRunner()

	step := SequenceStep{ID: "bad", Script: `set_chrome_visible(`}
	if err := runner.RunStep(store, step, 0); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestScriptRunnerExposesStepGlobals(t *testing.T) {
	store := NewStore(testPattern(true), true)
	store.SetCurrentStep(2)
	runner := NewScriptRunner()

	step := SequenceStep{
		ID: "check",
		Script: strings.Join([]string{
			`if __step_id != "check" { set_chrome_visible(true) }`,
			`if __step != 2 { set_chrome_visible(true) }`,
		}, "\n"),
	}
	if err := runner.RunStep(store, step, 0); err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if store.State().ChromeVisible {
		t.Fatalf("step globals had unexpected values")
	}
}

func TestScriptRunnerErrorDoesNotStopSequence(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	fired := 0
	trigger := &SequenceTrigger{
		Scripts: NewScriptRunner(),
		Steps: []SequenceStep{
			{ID: "broken", At: 0, Duration: 0, Script: `this is not tengo`},
			{ID: "after", At: 0, Duration: 0},
		},
	}
	trigger.Attach(store, loop, func() { fired++ })

	if fired != 1 {
		t.Fatalf("broken script gated the sequence (fired=%d)", fired)
	}
	if got := store.State().CurrentStep; got != 1 {
		t.Fatalf("step after the broken script never ran")
	}
}
