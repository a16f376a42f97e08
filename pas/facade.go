// Package pas is the engine's external-interfaces facade (component 11):
// it holds the process-wide name-to-set registry a command script runs
// against, delegates formula evaluation to package eval, and
// exposes the Renderer/Command surfaces an ecosystem-specific consumer (a
// surface parser, a PNG/DOT renderer, a CLI) plugs into. The surface parser
// and renderers themselves are out of scope; only their interfaces live
// here, referenced only by interface.
package pas

import (
	"github.com/rs/zerolog"

	"github.com/pas-lang/pas/aset"
	"github.com/pas-lang/pas/eval"
	"github.com/pas-lang/pas/formula"
	"github.com/pas-lang/pas/name"
	"github.com/pas-lang/pas/pasconfig"
)

// Engine holds the evaluator and the named-set registry a running command
// script accumulates into. The zero value is not usable; use NewEngine.
type Engine struct {
	evaluator *eval.Evaluator
	sets      map[string]*aset.Set
}

// NewEngine builds an Engine with cfg's resource limits and log used for
// operation tracing.
func NewEngine(cfg pasconfig.Config, log zerolog.Logger) *Engine {
	return &Engine{
		evaluator: eval.NewEvaluator(log, cfg),
		sets:      make(map[string]*aset.Set),
	}
}

// DefaultEngine builds an Engine with pasconfig.DefaultConfig and logging
// disabled.
func DefaultEngine() *Engine {
	return &Engine{
		evaluator: eval.DefaultEvaluator(),
		sets:      make(map[string]*aset.Set),
	}
}

// Define evaluates f into an Automatic Set over output's tracks and binds it
// to setName in the registry. Returns *CommandError wrapping ErrDuplicateSet
// if setName is already bound; the existing binding is left untouched.
func (e *Engine) Define(setName string, f *formula.Formula, output []name.Name) (*aset.Set, error) {
	if _, exists := e.sets[setName]; exists {
		return nil, &CommandError{Command: "define", SetName: setName, Err: ErrDuplicateSet}
	}
	s, err := e.evaluator.Eval(f, output)
	if err != nil {
		return nil, &CommandError{Command: "define", SetName: setName, Err: err}
	}
	e.sets[setName] = s
	return s, nil
}

// Lookup returns the set bound to setName, or *CommandError wrapping
// ErrUnknownSet if none exists.
func (e *Engine) Lookup(setName string) (*aset.Set, error) {
	s, ok := e.sets[setName]
	if !ok {
		return nil, &CommandError{Command: "lookup", SetName: setName, Err: ErrUnknownSet}
	}
	return s, nil
}

// Names returns the currently bound set names, in no particular order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.sets))
	for n := range e.sets {
		names = append(names, n)
	}
	return names
}
