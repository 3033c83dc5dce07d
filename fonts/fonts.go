package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	CGA FontName = "cga"
)

type faceKey struct {
	name FontName
	size float64
}

var (
	sources = map[FontName]*truetype.Font{}
	faces   = map[faceKey]text.Face{}
)

// Face returns the face for this font at size pixels, creating it on first use.
func (f FontName) Face(size float64) text.Face {
	return getFace(f, size)
}

// Loaded reports whether the font has been registered.
func (f FontName) Loaded() bool {
	_, ok := sources[f]
	return ok
}

// LoadFont parses a TTF and registers it under name. Faces created from a
// previous registration of the same name are dropped.
func LoadFont(name FontName, ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	sources[name] = fontData
	for k := range faces {
		if k.name == name {
			delete(faces, k)
		}
	}
	return nil
}

func getFace(name FontName, size float64) text.Face {
	key := faceKey{name: name, size: size}
	if f, ok := faces[key]; ok {
		return f
	}

	fontData, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	xface := truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	f := text.NewGoXFace(xface)
	faces[key] = f
	return f
}
