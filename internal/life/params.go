package life

import (
	"math"

	"lifeca/internal/core"
	"lifeca/internal/rules"
)

// Parameter keys exposed to the HUD.
const (
	ParamInterval   = "interval"
	ParamRule       = "rule"
	ParamRuleName   = "rule_name"
	ParamGeneration = "generation"
	ParamPopulation = "population"
	ParamRunning    = "running"
	ParamWidth      = "w"
	ParamHeight     = "h"
)

// Parameters reports the engine's current values for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam(ParamWidth, "Width", size.W),
				core.IntParam(ParamHeight, "Height", size.H),
				core.IntParam(ParamGeneration, "Generation", e.generation),
				core.IntParam(ParamPopulation, "Population", e.Population()),
				core.BoolParam(ParamRunning, "Running", e.state == Running),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam(ParamRule, "Rule set", int(e.rule.ID)),
				core.TextParam(ParamRuleName, "Rule", e.rule.Name+" "+e.rule.Notation()),
				core.FloatParam(ParamInterval, "Interval (s)", e.Interval()),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamInterval, Label: "Interval", Type: core.ParamTypeFloat, Step: core.IntervalStep, Min: core.MinInterval, Max: core.MaxInterval},
		{Key: ParamRule, Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: float64(rules.Conway), Max: float64(rules.CoralGrowth)},
	}
}

// SetFloatParameter updates a floating point parameter by key.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamInterval:
		if math.IsNaN(value) {
			return false
		}
		e.SetInterval(value)
		return true
	default:
		return false
	}
}

// SetIntParameter updates an integer parameter by key.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamRule:
		e.SelectRule(rules.ID(value))
		return true
	default:
		return false
	}
}
