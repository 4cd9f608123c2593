package rule

import "fmt"

// MinWidth is the narrowest generation that still has an interior cell.
const MinWidth = 3

// Engine evolves a single row of cells under an elementary rule. The first and
// last cells are never rewritten; they keep their seeded value.
//
// An Engine is not safe for concurrent use. Separate engines share nothing.
type Engine struct {
	rule Rule
	cur  []uint8
}

// NewEngine validates the width and rule number and seeds the first
// generation with a single live centre cell.
func NewEngine(width, rule int) (*Engine, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	r, err := Parse(rule)
	if err != nil {
		return nil, err
	}
	return &Engine{rule: r, cur: seed(width)}, nil
}

// Rule reports the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// Width reports the generation length.
func (e *Engine) Width() int { return len(e.cur) }

// SetRule replaces the rule used by future calls to Advance. The current
// generation is left as is; call Reseed to restart from the seed.
func (e *Engine) SetRule(rule int) error {
	r, err := Parse(rule)
	if err != nil {
		return err
	}
	e.rule = r
	return nil
}

// Reseed restores the single-centre-cell generation at the current width.
func (e *Engine) Reseed() {
	e.cur = seed(len(e.cur))
}

// Resize reseeds the engine at a new width. On error the engine is unchanged.
func (e *Engine) Resize(width int) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	e.cur = seed(width)
	return nil
}

// Advance computes, stores and returns the next generation. The returned
// slice is owned by the caller.
func (e *Engine) Advance() []uint8 {
	n := len(e.cur)
	next := make([]uint8, n)
	next[0] = e.cur[0]
	next[n-1] = e.cur[n-1]
	for i := 1; i < n-1; i++ {
		next[i] = e.rule.Next(Pattern(e.cur[i-1], e.cur[i], e.cur[i+1]))
	}
	e.cur = next
	return e.Generation()
}

// Generation returns a copy of the current generation.
func (e *Engine) Generation() []uint8 {
	return append([]uint8(nil), e.cur...)
}

// Render returns rows generations: the current one followed by rows-1 calls to
// Advance. It returns nil when rows is not positive.
func (e *Engine) Render(rows int) [][]uint8 {
	if rows <= 0 {
		return nil
	}
	out := make([][]uint8, 0, rows)
	out = append(out, e.Generation())
	for len(out) < rows {
		out = append(out, e.Advance())
	}
	return out
}

func checkWidth(width int) error {
	if width < MinWidth {
		return fmt.Errorf("width %d below minimum %d: %w", width, MinWidth, ErrInvalidArgument)
	}
	return nil
}

func seed(width int) []uint8 {
	cells := make([]uint8, width)
	cells[width/2] = 1
	return cells
}
