package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a width or rule number falls outside
// the range the engine accepts.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// MinRule is the smallest Wolfram rule number.
	MinRule = 0
	// MaxRule is the largest Wolfram rule number.
	MaxRule = 255
	// Patterns is the number of distinct three-cell neighbourhoods.
	Patterns = 8
)

// Rule is a Wolfram rule number. Bit p (counting from the least significant
// end) holds the next state of a cell whose neighbourhood encodes to p.
type Rule uint8

// Parse validates n and converts it into a Rule.
func Parse(n int) (Rule, error) {
	if n < MinRule || n > MaxRule {
		return 0, fmt.Errorf("rule %d outside [%d,%d]: %w", n, MinRule, MaxRule, ErrInvalidArgument)
	}
	return Rule(n), nil
}

// ParseString accepts a decimal rule number or one written with a 0b, 0o or
// 0x prefix.
func ParseString(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("rule %q: %w", s, ErrInvalidArgument)
	}
	if n < MinRule || n > MaxRule {
		return 0, fmt.Errorf("rule %d outside [%d,%d]: %w", n, MinRule, MaxRule, ErrInvalidArgument)
	}
	return Rule(n), nil
}

// Pattern encodes a neighbourhood as left*4 + center*2 + right.
func Pattern(left, center, right uint8) uint8 {
	return (left&1)<<2 | (center&1)<<1 | right&1
}

// Next returns the state produced for the given neighbourhood pattern.
func (r Rule) Next(pattern uint8) uint8 {
	return uint8(r>>(pattern&7)) & 1
}

// Binary renders the rule as eight digits, most significant first.
func (r Rule) Binary() string {
	return fmt.Sprintf("%08b", uint8(r))
}

func (r Rule) String() string {
	return strconv.Itoa(int(r))
}

// Shift moves the rule number by delta, wrapping around [0,255].
func (r Rule) Shift(delta int) Rule {
	n := (int(r) + delta) % (MaxRule + 1)
	if n < 0 {
		n += MaxRule + 1
	}
	return Rule(n)
}

// Toggle flips the output bit for a single pattern.
func (r Rule) Toggle(pattern uint8) Rule {
	return r ^ Rule(1)<<(pattern&7)
}

// Mirror returns the rule obtained by swapping left and right neighbours.
func (r Rule) Mirror() Rule {
	var out Rule
	for p := uint8(0); p < Patterns; p++ {
		l, c, rt := p>>2&1, p>>1&1, p&1
		if r.Next(Pattern(rt, c, l)) == 1 {
			out |= 1 << p
		}
	}
	return out
}

// Complement returns the rule obtained by exchanging live and dead cells.
func (r Rule) Complement() Rule {
	var out Rule
	for p := uint8(0); p < Patterns; p++ {
		if r.Next(7-p) == 0 {
			out |= 1 << p
		}
	}
	return out
}

// Transition is one entry of a rule's lookup table.
type Transition struct {
	Left, Center, Right uint8
	Next                uint8
}

// Pattern returns the encoded neighbourhood of the transition.
func (t Transition) Pattern() uint8 { return Pattern(t.Left, t.Center, t.Right) }

// Table lists the eight transitions from pattern 111 down to 000.
func (r Rule) Table() [Patterns]Transition {
	var out [Patterns]Transition
	for i := range out {
		p := uint8(Patterns - 1 - i)
		out[i] = Transition{
			Left:   p >> 2 & 1,
			Center: p >> 1 & 1,
			Right:  p & 1,
			Next:   r.Next(p),
		}
	}
	return out
}
