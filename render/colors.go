package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/stellar/vmath"
)

var (
	colorHighlight = colorful.Color{R: 1, G: 0.95, B: 0.8}
	colorHUD       = tcell.NewRGBColor(0, 255, 255)
	colorHUDDim    = tcell.NewRGBColor(128, 128, 128)
	colorPaused    = tcell.NewRGBColor(255, 200, 0)
)

// ParseFill parses a #rgb or #rrggbb fill hint
func ParseFill(hex string) (colorful.Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("fill color %q: %w", hex, err)
	}
	return c, nil
}

// ShadeForSize brightens fill toward a warm white as a particle grows past unit size
func ShadeForSize(fill colorful.Color, side float64) colorful.Color {
	t := vmath.Clamp((side-1)/4, 0, 1)
	return fill.BlendLab(colorHighlight, t*0.85).Clamped()
}

// toTcell converts to a 24-bit terminal color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
