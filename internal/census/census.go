// Package census classifies elementary rules by running each one from the
// single-cell seed and watching for a repeated generation.
package census

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"eca/internal/rule"
)

// Class is the coarse behaviour observed for a rule.
type Class string

const (
	// ClassUniform rules settle on a row whose interior is all one state.
	ClassUniform Class = "uniform"
	// ClassPeriodic rules revisit an earlier generation.
	ClassPeriodic Class = "periodic"
	// ClassComplex rules never repeat within the step budget.
	ClassComplex Class = "complex"
)

// Options controls a census run.
type Options struct {
	Width   int
	Steps   int
	Workers int
}

// DefaultOptions returns the settings used by the CLI.
func DefaultOptions() Options {
	return Options{Width: 64, Steps: 256, Workers: runtime.NumCPU()}
}

// Result summarises one rule's run.
type Result struct {
	Rule       rule.Rule `json:"rule"`
	Class      Class     `json:"class"`
	Transient  int       `json:"transient"`
	Period     int       `json:"period"`
	Steps      int       `json:"steps"`
	PeakLive   int       `json:"peak_live"`
	Density    float64   `json:"density"`
	Mirror     rule.Rule `json:"mirror"`
	Complement rule.Rule `json:"complement"`
}

// Evaluate runs r for up to steps generations. Transient is the generation
// at which the cycle starts and Period its length; both are -1 and 0 for
// ClassComplex. Steps reports how many generations were computed.
func Evaluate(r rule.Rule, width, steps int) (Result, error) {
	engine, err := rule.NewEngine(width, int(r))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Rule:       r,
		Class:      ClassComplex,
		Transient:  -1,
		Mirror:     r.Mirror(),
		Complement: r.Complement(),
	}
	gen := engine.Generation()
	seen := map[string]int{string(gen): 0}
	res.PeakLive = countLive(gen)

	for step := 1; step <= steps; step++ {
		gen = engine.Advance()
		res.Steps = step
		if live := countLive(gen); live > res.PeakLive {
			res.PeakLive = live
		}
		key := string(gen)
		if first, ok := seen[key]; ok {
			res.Transient = first
			res.Period = step - first
			res.Class = ClassPeriodic
			if res.Period == 1 && uniformInterior(gen) {
				res.Class = ClassUniform
			}
			break
		}
		seen[key] = step
	}
	res.Density = float64(countLive(gen)) / float64(width)
	return res, nil
}

// Run evaluates rules on a pool of workers. Results are ordered by rule.
func Run(ctx context.Context, rules []rule.Rule, opts Options) ([]Result, error) {
	if opts.Width < rule.MinWidth {
		return nil, fmt.Errorf("census width %d: %w", opts.Width, rule.ErrInvalidArgument)
	}
	if opts.Steps < 0 {
		return nil, fmt.Errorf("census steps %d: %w", opts.Steps, rule.ErrInvalidArgument)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan rule.Rule)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				// Width was validated above.
				res, _ := Evaluate(r, opts.Width, opts.Steps)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, r := range rules {
			select {
			case jobs <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(rules))
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Rule < all[j].Rule })
	return all, nil
}

// Summary counts results per class.
func Summary(results []Result) map[Class]int {
	out := map[Class]int{}
	for _, r := range results {
		out[r.Class]++
	}
	return out
}

func countLive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

func uniformInterior(cells []uint8) bool {
	for i := 2; i < len(cells)-1; i++ {
		if cells[i] != cells[1] {
			return false
		}
	}
	return true
}
