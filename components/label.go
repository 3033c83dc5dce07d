package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TextSection is one styled run of text
type TextSection struct {
	Text     string
	FontSize float64
	Color    color.RGBA
}

// LabelData is a horizontally centered line of text inside the panel.
type LabelData struct {
	Name     string
	Sections []TextSection
	Order    int // spawn order, used for stable layout

	TopPercent float64 // top edge as fraction of panel height
	HasTop     bool    // false centers the label vertically
}

// Text returns the concatenated text of all sections.
func (l *LabelData) Text() string {
	s := ""
	for _, sec := range l.Sections {
		s += sec.Text
	}
	return s
}

var Label = donburi.NewComponentType[LabelData]()

// ParentData links a scene node to the node it is laid out in.
type ParentData struct {
	Parent donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()
