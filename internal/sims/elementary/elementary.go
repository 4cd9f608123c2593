package elementary

import (
	"fmt"

	"eca/internal/core"
	"eca/internal/rule"
)

// Elementary projects a one-dimensional rule engine onto a 2D history, one
// generation per row with the oldest at the top.
type Elementary struct {
	cfg    Config
	engine *rule.Engine
	hist   *core.ByteGrid
	rows   int
	gen    int
}

// New creates an automaton with the given configuration.
func New(cfg Config) (*Elementary, error) {
	engine, err := rule.NewEngine(cfg.Width, int(cfg.Rule))
	if err != nil {
		return nil, err
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	e := &Elementary{cfg: cfg, engine: engine, hist: core.NewByteGrid(cfg.Width, cfg.Height)}
	e.Reset(0)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.hist.W, H: e.hist.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.hist.Cells() }

// Rule reports the active rule.
func (e *Elementary) Rule() rule.Rule { return e.engine.Rule() }

// Generation reports how many generations the newest row is past the seed.
func (e *Elementary) Generation() int { return e.gen }

// Reset reseeds the engine and rebuilds the history. The automaton is fully
// deterministic, so the seed is ignored.
func (e *Elementary) Reset(seed int64) {
	e.engine.Reseed()
	e.hist.Clear()
	e.rows = 0
	e.gen = 0
	if !e.cfg.Prefill {
		e.push(e.engine.Generation())
		return
	}
	for i, row := range e.engine.Render(e.hist.H) {
		e.hist.SetRow(i, row)
		e.rows++
	}
	e.gen = e.rows - 1
}

// Step computes the next generation and appends it to the history, scrolling
// the oldest row out once the history is full.
func (e *Elementary) Step() {
	e.push(e.engine.Advance())
	e.gen++
}

func (e *Elementary) push(row []uint8) {
	if e.rows == e.hist.H {
		e.hist.ScrollUp()
		e.rows--
	}
	e.hist.SetRow(e.rows, row)
	e.rows++
}

// SetRule switches to rule n and restarts from the seed.
func (e *Elementary) SetRule(n int) error {
	if err := e.engine.SetRule(n); err != nil {
		return err
	}
	e.cfg.Rule = e.engine.Rule()
	e.Reset(0)
	return nil
}

// AdjustRule moves the rule number by delta with wrap-around and restarts.
func (e *Elementary) AdjustRule(delta int) {
	// Shift always yields a valid rule.
	_ = e.SetRule(int(e.engine.Rule().Shift(delta)))
}

// ToggleRuleBit flips the output for one neighbourhood pattern and restarts.
func (e *Elementary) ToggleRuleBit(pattern uint8) {
	_ = e.SetRule(int(e.engine.Rule().Toggle(pattern)))
}

// Resize reallocates the history at width by height and restarts from the
// seed. On error the automaton is unchanged.
func (e *Elementary) Resize(width, height int) error {
	if height < 1 {
		return fmt.Errorf("height %d below 1: %w", height, rule.ErrInvalidArgument)
	}
	if err := e.engine.Resize(width); err != nil {
		return err
	}
	e.cfg.Width, e.cfg.Height = width, height
	e.hist = core.NewByteGrid(width, height)
	e.Reset(0)
	return nil
}

// SetIntParameter implements core.IntParameterSetter.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		return e.SetRule(value) == nil
	case "w":
		return e.Resize(value, e.hist.H) == nil
	case "h":
		return e.Resize(e.hist.W, value) == nil
	}
	return false
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			// FromMap only yields validated values.
			panic(err)
		}
		return sim
	})
}
