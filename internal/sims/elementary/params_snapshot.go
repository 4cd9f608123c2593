package elementary

import (
	"strconv"

	"eca/internal/core"
	"eca/internal/rule"
)

// HUD stepping for the world dimensions. Resize itself accepts any size.
const (
	sizeStep = 16
	maxSize  = 2048
)

// Parameters implements the HUD snapshot contract.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	r := e.engine.Rule()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", e.hist.W),
				intParam("h", "Height", e.hist.H),
				boolParam("prefill", "Prefill history", e.cfg.Prefill),
				intParam("generation", "Generation", e.gen),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Rule", int(r)),
				{Key: "rule_binary", Label: "Binary", Type: core.ParamTypeString, Value: r.Binary()},
				intParam("rule_mirror", "Mirror", int(r.Mirror())),
				intParam("rule_complement", "Complement", int(r.Complement())),
			},
			Summary: "Neighbourhood lookup table, 111 first",
		},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "w",
			Label:  "Width",
			Type:   core.ParamTypeInt,
			Step:   sizeStep,
			Min:    rule.MinWidth,
			Max:    maxSize,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "h",
			Label:  "Height",
			Type:   core.ParamTypeInt,
			Step:   sizeStep,
			Min:    1,
			Max:    maxSize,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "rule",
			Label:  "Rule",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    rule.MinRule,
			Max:    rule.MaxRule,
			HasMin: true,
			HasMax: true,
			Wrap:   true,
		},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
