package elementary

import (
	"strconv"

	"eca/internal/rule"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   rule.Rule

	// Prefill renders the whole history on reset instead of growing it one
	// generation per step.
	Prefill bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 30, Prefill: true}
}

// FromMap populates a Config from a string map. Invalid values keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= rule.MinWidth {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := rule.ParseString(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["prefill"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Prefill = parsed
		}
	}
	return c
}
