package intro

import (
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptRunner executes step-declared tengo actions when a sequence step
// starts. Programs are compiled once per distinct source and re-run with
// fresh globals on each invocation.
type ScriptRunner struct {
	cache map[string]*tengo.Compiled
}

func NewScriptRunner() *ScriptRunner {
	return &ScriptRunner{cache: map[string]*tengo.Compiled{}}
}

// RunStep runs the step's script with the store-mutating builtins bound.
// Errors are returned for the caller to log; they never abort the
// sequence.
func (r *ScriptRunner) RunStep(store *Store, step SequenceStep, now time.Duration) error {
	compiled, err := r.compile(step.Script)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	globals := map[string]any{
		"__step_id": step.ID,
		"__step":    store.State().CurrentStep,
		"__now_ms":  now.Milliseconds(),
		"set_chrome_visible": &tengo.UserFunction{
			Name: "set_chrome_visible",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				store.SetChromeVisible(!args[0].IsFalsy())
				return tengo.UndefinedValue, nil
			},
		},
		"set_scroll_locked": &tengo.UserFunction{
			Name: "set_scroll_locked",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				store.SetScrollLocked(!args[0].IsFalsy())
				return tengo.UndefinedValue, nil
			},
		},
		"log": &tengo.UserFunction{
			Name: "log",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				for _, a := range args {
					s, _ := tengo.ToString(a)
					log.Printf("intro: step %s: %s", step.ID, s)
				}
				return tengo.UndefinedValue, nil
			},
		},
	}
	for name, v := range globals {
		if err := compiled.Set(name, v); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}

	if err := compiled.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (r *ScriptRunner) compile(src string) (*tengo.Compiled, error) {
	if c, ok := r.cache[src]; ok {
		return c, nil
	}

	s := tengo.NewScript([]byte(src))
	s.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))
	for _, name := range []string{"__step_id", "__step", "__now_ms", "set_chrome_visible", "set_scroll_locked", "log"} {
		if err := s.Add(name, nil); err != nil {
			return nil, err
		}
	}

	c, err := s.Compile()
	if err != nil {
		return nil, err
	}
	r.cache[src] = c
	return c, nil
}
