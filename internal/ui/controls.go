// Package ui draws the parameter panel and debug overlay for the ebiten
// frontend. The control bookkeeping in this file is headless so it builds and
// tests without the ebiten tag.
package ui

import (
	"image"
	"math"
	"strconv"

	"lifeca/internal/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlSet tracks the HUD-adjustable parameters of a target.
type controlSet struct {
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlSet(target any) controlSet {
	var cs controlSet
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		cs.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			cs.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := target.(core.IntParameterSetter); ok {
		cs.intSetter = setter
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		cs.floatSetter = setter
	}
	return cs
}

func (cs *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range cs.controls {
		state := &cs.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

// target returns the value one step in direction, clamped to the control's
// range, and whether it differs from the current value.
func (cs *controlSet) target(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if cs.intSetter == nil {
			return 0, false
		}
		step := math.Round(state.control.Step)
		if step <= 0 {
			step = 1
		}
		next := state.control.Clamp(float64(state.intValue) + float64(direction)*step)
		next = math.Round(next)
		return next, int(next) != state.intValue
	case core.ParamTypeFloat:
		if cs.floatSetter == nil {
			return 0, false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		next := state.control.Clamp(state.floatValue + float64(direction)*step)
		return next, math.Abs(next-state.floatValue) >= 1e-9
	default:
		return 0, false
	}
}

func (cs *controlSet) canAdjust(state *controlState, direction int) bool {
	_, ok := cs.target(state, direction)
	return ok
}

func (cs *controlSet) adjust(state *controlState, direction int) bool {
	next, ok := cs.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if !cs.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = next
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !cs.floatSetter.SetFloatParameter(state.control.Key, next) {
			return false
		}
		state.floatValue = next
		state.value = formatFloat(state.control, next)
	}
	return true
}

// hit adjusts the control whose button contains (x, y) in panel coordinates.
func (cs *controlSet) hit(x, y int) bool {
	for i := range cs.controls {
		state := &cs.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return cs.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return cs.adjust(state, 1)
		}
	}
	return false
}

func (cs *controlSet) layout(width int) {
	if width <= 0 {
		return
	}
	for i := range cs.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		cs.controls[i].top = top
		cs.controls[i].minusRect = minusRect
		cs.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
