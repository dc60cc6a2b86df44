// pkg/render/color.go
package render

import "image/color"

// GridColors holds the color definitions needed to render a hex grid
// and its algorithm overlays.
type GridColors struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	WallColor       color.RGBA
	PathColor       color.RGBA
	VisibleColor    color.RGBA
	OriginColor     color.RGBA
	TargetColor     color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DefaultGridColors returns a dark scheme readable on any monitor.
func DefaultGridColors() GridColors {
	return GridColors{
		BackgroundColor: color.RGBA{R: 24, G: 26, B: 30, A: 255},
		CellColor:       color.RGBA{R: 58, G: 64, B: 74, A: 255},
		WallColor:       color.RGBA{R: 28, G: 30, B: 34, A: 255},
		PathColor:       color.RGBA{R: 96, G: 160, B: 96, A: 255},
		VisibleColor:    color.RGBA{R: 110, G: 120, B: 160, A: 255},
		OriginColor:     color.RGBA{R: 220, G: 180, B: 80, A: 255},
		TargetColor:     color.RGBA{R: 200, G: 90, B: 90, A: 255},
		TextDarkColor:   color.RGBA{R: 20, G: 20, B: 20, A: 255},
		TextLightColor:  color.RGBA{R: 220, G: 220, B: 220, A: 255},
		StrokeWidth:     1.5,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor raises the brightness of a color by a flat amount.
func LightenColor(c color.RGBA, amount uint8) color.RGBA {
	return color.RGBA{
		R: clampAdd(c.R, amount),
		G: clampAdd(c.G, amount),
		B: clampAdd(c.B, amount),
		A: c.A,
	}
}

func clampAdd(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
