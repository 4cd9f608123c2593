package census

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca/internal/rule"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		rule      rule.Rule
		class     Class
		transient int
		period    int
		peak      int
		steps     int
	}{
		{rule: 0, class: ClassUniform, transient: 1, period: 1, peak: 1, steps: 2},
		{rule: 255, class: ClassUniform, transient: 1, period: 1, peak: 62, steps: 2},
		{rule: 204, class: ClassPeriodic, transient: 0, period: 1, peak: 1, steps: 1},
		{rule: 1, class: ClassPeriodic, transient: 0, period: 2, peak: 59, steps: 2},
		{rule: 90, class: ClassPeriodic, transient: 0, period: 126, peak: 31, steps: 126},
		{rule: 250, class: ClassPeriodic, transient: 30, period: 2, peak: 31, steps: 32},
		{rule: 30, class: ClassComplex, transient: -1, period: 0, peak: 42, steps: 128},
		{rule: 110, class: ClassComplex, transient: -1, period: 0, peak: 26, steps: 128},
	}
	for _, tc := range cases {
		res, err := Evaluate(tc.rule, 64, 128)
		require.NoError(t, err)
		assert.Equal(t, tc.class, res.Class, "rule %d class", tc.rule)
		assert.Equal(t, tc.transient, res.Transient, "rule %d transient", tc.rule)
		assert.Equal(t, tc.period, res.Period, "rule %d period", tc.rule)
		assert.Equal(t, tc.peak, res.PeakLive, "rule %d peak", tc.rule)
		assert.Equal(t, tc.steps, res.Steps, "rule %d steps", tc.rule)
	}
}

func TestEvaluateDensityAndEquivalents(t *testing.T) {
	res, err := Evaluate(30, 64, 128)
	require.NoError(t, err)
	assert.InDelta(t, 30.0/64.0, res.Density, 1e-9)
	assert.Equal(t, rule.Rule(86), res.Mirror)
	assert.Equal(t, rule.Rule(135), res.Complement)
}

func TestEvaluateSmallWidthFindsCycle(t *testing.T) {
	res, err := Evaluate(30, 16, 64)
	require.NoError(t, err)
	assert.Equal(t, ClassPeriodic, res.Class)
	assert.Equal(t, 31, res.Transient)
	assert.Equal(t, 2, res.Period)
}

func TestEvaluateRejectsNarrowWidth(t *testing.T) {
	_, err := Evaluate(30, 2, 10)
	assert.ErrorIs(t, err, rule.ErrInvalidArgument)
}

func TestRunOrdersResults(t *testing.T) {
	rules := []rule.Rule{110, 0, 30, 204, 90}
	results, err := Run(context.Background(), rules, Options{Width: 64, Steps: 128, Workers: 3})
	require.NoError(t, err)
	require.Len(t, results, len(rules))

	got := make([]rule.Rule, len(results))
	for i, r := range results {
		got[i] = r.Rule
	}
	assert.Equal(t, []rule.Rule{0, 30, 90, 110, 204}, got)

	summary := Summary(results)
	assert.Equal(t, 1, summary[ClassUniform])
	assert.Equal(t, 2, summary[ClassPeriodic])
	assert.Equal(t, 2, summary[ClassComplex])
}

func TestRunAllRulesMatchesEvaluate(t *testing.T) {
	rules := make([]rule.Rule, 0, rule.MaxRule+1)
	for n := rule.MinRule; n <= rule.MaxRule; n++ {
		rules = append(rules, rule.Rule(n))
	}
	results, err := Run(context.Background(), rules, Options{Width: 24, Steps: 64})
	require.NoError(t, err)
	require.Len(t, results, len(rules))

	for i, res := range results {
		want, err := Evaluate(rule.Rule(i), 24, 64)
		require.NoError(t, err)
		if res != want {
			t.Fatalf("rule %d: parallel result %+v differs from %+v", i, res, want)
		}
	}
}

func TestRunValidatesOptions(t *testing.T) {
	_, err := Run(context.Background(), []rule.Rule{30}, Options{Width: 1, Steps: 10})
	assert.ErrorIs(t, err, rule.ErrInvalidArgument)

	_, err = Run(context.Background(), []rule.Rule{30}, Options{Width: 10, Steps: -1})
	assert.ErrorIs(t, err, rule.ErrInvalidArgument)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []rule.Rule{30, 90}, Options{Width: 64, Steps: 64, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
