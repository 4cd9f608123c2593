package ui

import (
	"fmt"
	"strings"

	"eca/internal/core"
)

type generationProvider interface {
	Generation() int
}

// statusLine summarises the simulation state for the overlay.
func statusLine(sim core.Sim, paused bool) string {
	parts := []string{sim.Name()}
	if r, ok := sim.(ruleProvider); ok {
		parts = append(parts, fmt.Sprintf("rule %d", r.Rule()))
	}
	if g, ok := sim.(generationProvider); ok {
		parts = append(parts, fmt.Sprintf("gen %d", g.Generation()))
	}
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, "  ")
}
