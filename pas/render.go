package pas

import "github.com/pas-lang/pas/automaton"

// CoordinateExtractor maps a combined-symbol position along an accepted
// word to the (x, y) pixel/plot coordinate it contributes to. Per
// original_source's render/dot.rs and render/png.rs, the renderer is handed
// a finalized minimized DFA plus this extractor rather than the Automatic
// Set itself — the extractor is the only place track-to-axis assignment is
// decided.
type CoordinateExtractor func(tuple []uint64) (x, y uint64)

// Renderer hands a finalized, minimized 2-track DFA plus its coordinate
// extractor off to an ecosystem-specific consumer. Implementations of the
// PNG (pixel (x, y) set iff (x, y) is in the set, clipped at the
// automaton-computed maxima) and NFA-DOT (nodes labeled by id, accepting
// nodes double-circled, initial state shaded, edges labeled by symbol bit
// patterns) formats live outside this module; this
// engine only defines the interface they implement against.
type Renderer interface {
	Render(dfa *automaton.DFA, extract CoordinateExtractor, path string) error
}

// Command is one script command (render_png, nfa_dot, stats) bound to a set
// name, per the command script grammar. Execute runs the command
// against e's registry.
type Command interface {
	Name() string
	SetName() string
	Execute(e *Engine) error
}

// StatsCommand implements Command for `stats(setname)`: it looks the set up
// and computes its StatsResult. The surface parser (out of scope) is
// expected to route script text into commands like this one; report is
// filled in on successful Execute for the caller to read back.
type StatsCommand struct {
	Set    string
	Report *StatsResult
}

func (c *StatsCommand) Name() string    { return "stats" }
func (c *StatsCommand) SetName() string { return c.Set }

func (c *StatsCommand) Execute(e *Engine) error {
	result, err := e.Stats(c.Set)
	if err != nil {
		return err
	}
	c.Report = result
	return nil
}

// RenderCommand implements Command for both `render_png` and `nfa_dot`:
// both hand a set's DFA and an extractor to a Renderer plugged in by the
// caller; this engine never implements Renderer itself.
type RenderCommand struct {
	Kind     string // "render_png" or "nfa_dot"
	Set      string
	Path     string
	Extract  CoordinateExtractor
	Renderer Renderer
}

func (c *RenderCommand) Name() string    { return c.Kind }
func (c *RenderCommand) SetName() string { return c.Set }

func (c *RenderCommand) Execute(e *Engine) error {
	if c.Renderer == nil {
		return &CommandError{Command: c.Kind, SetName: c.Set, Err: ErrNotImplemented}
	}
	s, err := e.Lookup(c.Set)
	if err != nil {
		return err
	}
	if len(s.Tracks()) != 2 {
		return &CommandError{Command: c.Kind, SetName: c.Set, Err: ErrTrackCountForRender}
	}
	return c.Renderer.Render(s.DFA(), c.Extract, c.Path)
}
