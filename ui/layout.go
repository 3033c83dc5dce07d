package ui

import (
	"math"
	"sort"
)

// LogicalSize returns the size of the UI viewport in UI pixels for a window
// of width x height drawn at scale.
func LogicalSize(width, height int, scale float64) (int, int) {
	if scale < 1 {
		scale = 1
	}
	return int(math.Ceil(float64(width) / scale)), int(math.Ceil(float64(height) / scale))
}

// PanelBounds returns the panel's offset and size inside a viewport, centered.
func PanelBounds(viewW, viewH int, widthPct, heightPct float64) (x, y, w, h int) {
	w = int(math.Round(float64(viewW) * widthPct))
	h = int(math.Round(float64(viewH) * heightPct))
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h
}

// Placement is the desired vertical position of one label.
type Placement struct {
	Index      int
	Height     int
	TopPercent float64
	HasTop     bool
}

// Slot is a label's resolved vertical band in the panel column. Gap is the
// empty space above it.
type Slot struct {
	Index  int
	Gap    int
	Height int
	Top    int
}

// StackLabels resolves placements into a top-to-bottom column for a panel of
// panelH pixels. Labels with a top fraction start there; the others are
// centered. Overlapping labels are pushed below the previous one.
func StackLabels(panelH int, placements []Placement) []Slot {
	type want struct {
		p   Placement
		top int
	}
	wants := make([]want, 0, len(placements))
	for _, p := range placements {
		top := (panelH - p.Height) / 2
		if p.HasTop {
			top = int(math.Round(float64(panelH) * p.TopPercent))
		}
		wants = append(wants, want{p: p, top: top})
	}
	sort.SliceStable(wants, func(i, j int) bool {
		return wants[i].top < wants[j].top
	})

	slots := make([]Slot, 0, len(wants))
	cursor := 0
	for _, w := range wants {
		top := w.top
		if top < cursor {
			top = cursor
		}
		slots = append(slots, Slot{
			Index:  w.p.Index,
			Gap:    top - cursor,
			Height: w.p.Height,
			Top:    top,
		})
		cursor = top + w.p.Height
	}
	return slots
}
