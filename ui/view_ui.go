package ui

import (
	"math"
	"sort"

	"github.com/automoto/pixelzoom/components"
	"github.com/automoto/pixelzoom/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
)

// ViewUI renders the scene's panel and labels with ebitenui. The widget tree
// is laid out in UI pixels and drawn to the window scaled by the UI scale.
type ViewUI struct {
	UI *ebitenui.UI

	font          fonts.FontName
	width, height int

	scale      float64
	generation int
	built      bool

	offscreen *ebiten.Image
	drawOp    ebiten.DrawImageOptions
}

// NewViewUI creates a view UI for a window of width x height using font for
// every label.
func NewViewUI(font fonts.FontName, width, height int) *ViewUI {
	return &ViewUI{
		font:   font,
		width:  width,
		height: height,
		scale:  1,
	}
}

// Snapshot is the part of the world the widget tree is built from.
type Snapshot struct {
	Scale      float64
	Generation int
	Panel      components.PanelData
	Labels     []components.LabelData // children of the panel, by Order
}

// TakeSnapshot reads the UI scale, the panel and the panel's labels.
func TakeSnapshot(w donburi.World) (Snapshot, bool) {
	entry, ok := components.UIScale.First(w)
	if !ok {
		return Snapshot{}, false
	}
	uiScale := components.UIScale.Get(entry)

	panelEntry, ok := components.Panel.First(w)
	if !ok {
		return Snapshot{}, false
	}

	snap := Snapshot{
		Scale:      uiScale.Scale,
		Generation: uiScale.Generation,
		Panel:      *components.Panel.Get(panelEntry),
	}
	components.Label.Each(w, func(e *donburi.Entry) {
		if components.Parent.Get(e).Parent == panelEntry.Entity() {
			snap.Labels = append(snap.Labels, *components.Label.Get(e))
		}
	})
	sort.Slice(snap.Labels, func(i, j int) bool {
		return snap.Labels[i].Order < snap.Labels[j].Order
	})
	return snap, true
}

// NeedsRebuild reports whether the world's UI scale has been written since
// the last build.
func (v *ViewUI) NeedsRebuild(w donburi.World) bool {
	entry, ok := components.UIScale.First(w)
	if !ok {
		return false
	}
	return !v.built || components.UIScale.Get(entry).Generation != v.generation
}

// Sync rebuilds the widget tree when NeedsRebuild says so. It reports whether
// a rebuild happened.
func (v *ViewUI) Sync(w donburi.World) bool {
	if !v.NeedsRebuild(w) {
		return false
	}
	snap, ok := TakeSnapshot(w)
	if !ok {
		return false
	}

	v.markBuilt(snap)
	v.build(&snap.Panel, snap.Labels)
	return true
}

func (v *ViewUI) markBuilt(snap Snapshot) {
	v.scale = snap.Scale
	v.generation = snap.Generation
	v.built = true
}

// Placements measures each label with the view's font and returns its
// vertical placement request, indexed like labels.
func (v *ViewUI) Placements(labels []components.LabelData) []Placement {
	placements := make([]Placement, len(labels))
	for i := range labels {
		placements[i] = Placement{
			Index:      i,
			Height:     v.labelHeight(&labels[i]),
			TopPercent: labels[i].TopPercent,
			HasTop:     labels[i].HasTop,
		}
	}
	return placements
}

func (v *ViewUI) build(panel *components.PanelData, labels []components.LabelData) {
	viewW, viewH := LogicalSize(v.width, v.height, v.scale)
	px, py, pw, ph := PanelBounds(viewW, viewH, panel.WidthPercent, panel.HeightPercent)

	if v.offscreen != nil {
		v.offscreen.Deallocate()
	}
	v.offscreen = ebiten.NewImage(viewW, viewH)

	padding := widget.Insets{Left: px, Top: py}
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
	)

	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panel.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(pw, ph),
		),
	)

	for _, slot := range StackLabels(ph, v.Placements(labels)) {
		if slot.Gap > 0 {
			panelContainer.AddChild(widget.NewContainer(
				widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(pw, slot.Gap)),
			))
		}

		slotContainer := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(pw, slot.Height)),
		)
		slotContainer.AddChild(v.buildLabelRow(&labels[slot.Index]))
		panelContainer.AddChild(slotContainer)
	}

	rootContainer.AddChild(panelContainer)

	v.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildLabelRow lays the label's sections side by side, centered in its slot.
func (v *ViewUI) buildLabelRow(label *components.LabelData) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for _, sec := range label.Sections {
		face := v.font.Face(sec.FontSize)
		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(sec.Text, &face, &widget.LabelColor{
				Idle: sec.Color,
			}),
		))
	}
	return row
}

func (v *ViewUI) labelHeight(label *components.LabelData) int {
	h := 0.0
	for _, sec := range label.Sections {
		_, sh := text.Measure(sec.Text, v.font.Face(sec.FontSize), 0)
		h = math.Max(h, sh)
	}
	return int(math.Ceil(h))
}

// Update forwards the frame to ebitenui.
func (v *ViewUI) Update() {
	if v.UI == nil {
		return
	}
	v.UI.Update()
}

// Draw renders the UI in UI pixels and scales it onto screen with nearest
// filtering.
func (v *ViewUI) Draw(screen *ebiten.Image) {
	if v.UI == nil {
		return
	}

	v.offscreen.Clear()
	v.UI.Draw(v.offscreen)

	v.drawOp.GeoM.Reset()
	v.drawOp.GeoM.Scale(v.scale, v.scale)
	v.drawOp.Filter = ebiten.FilterNearest
	screen.DrawImage(v.offscreen, &v.drawOp)
}
