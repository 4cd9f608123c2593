package ui

import (
	"image"

	"eca/internal/core"
	"eca/internal/rule"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14

	previewCell = 8
	previewGap  = 6
	previewRows = 2
)

type ruleProvider interface {
	Rule() rule.Rule
}

// stepControl moves current by one step in direction, clamping or wrapping
// at the control's bounds. It reports false when the value would not change.
func stepControl(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.Wrap && ctrl.HasMin && ctrl.HasMax {
		span := ctrl.Max - ctrl.Min + 1
		target = ctrl.Min + ((target-ctrl.Min)%span+span)%span
		return target, target != current
	}
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != current
}

// previewBox is one neighbourhood of the rule preview: three input cells
// above a single result cell.
type previewBox struct {
	pattern uint8
	cells   [3]image.Rectangle
	result  image.Rectangle
}

// layoutPreview arranges the eight neighbourhoods, 111 first, in rows that
// fit the panel width.
func layoutPreview(top, width int) []previewBox {
	boxW := 3 * previewCell
	perRow := rule.Patterns / previewRows
	usable := width - 2*panelPadding
	gap := previewGap
	if perRow > 1 && usable > perRow*boxW {
		gap = (usable - perRow*boxW) / (perRow - 1)
	}
	boxes := make([]previewBox, 0, rule.Patterns)
	for i := 0; i < rule.Patterns; i++ {
		row, col := i/perRow, i%perRow
		x := panelPadding + col*(boxW+gap)
		y := top + row*(2*previewCell+previewGap*2)
		b := previewBox{pattern: uint8(rule.Patterns - 1 - i)}
		for c := 0; c < 3; c++ {
			cx := x + c*previewCell
			b.cells[c] = image.Rect(cx, y, cx+previewCell, y+previewCell)
		}
		rx := x + previewCell
		b.result = image.Rect(rx, y+previewCell+2, rx+previewCell, y+2*previewCell+2)
		boxes = append(boxes, b)
	}
	return boxes
}

// hitPreview reports which pattern's result cell contains (x, y).
func hitPreview(boxes []previewBox, x, y int) (uint8, bool) {
	for _, b := range boxes {
		if pointInRect(x, y, b.result) {
			return b.pattern, true
		}
	}
	return 0, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
