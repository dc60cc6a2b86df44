// cmd/shape_painter/main.go
// Renders the shape enumerations to PNG files, one image per shape.
package main

import (
	"log"

	"go-hexgrid/internal/config"
	"go-hexgrid/pkg/hexmap"

	"github.com/fogleman/gg"
)

type shape struct {
	name   string
	coords []hexmap.Hex
}

func shapes() []shape {
	origin := hexmap.HexZero
	return []shape{
		{"hexagon", hexmap.Hexagon(origin, 6)},
		{"ring", origin.Ring(6)},
		{"spiral", origin.Spiral(6)},
		{"wedge", origin.Wedge(6, hexmap.VertexFlatRight)},
		{"corner_wedge", origin.CornerWedge(6, hexmap.EdgeFlatBottomRight)},
		{"triangle", hexmap.Triangle(9)},
		{"parallelogram", hexmap.Parallelogram(hexmap.NewHex(-4, -4), hexmap.NewHex(4, 4))},
		{"pointy_rectangle", hexmap.PointyRectangle(-6, 6, -4, 4)},
		{"flat_rectangle", hexmap.FlatRectangle(-4, 4, -6, 6)},
	}
}

func paint(s shape, layout hexmap.Layout) error {
	dc := gg.NewContext(config.PainterImageDim, config.PainterImageDim)
	dc.SetRGB(0.09, 0.10, 0.12)
	dc.Clear()

	// Later coordinates draw brighter, so enumeration order stays
	// readable in the output.
	n := len(s.coords)
	for i, h := range s.coords {
		corners := layout.Corners(h)
		dc.NewSubPath()
		dc.MoveTo(corners[0].X, corners[0].Y)
		for _, c := range corners[1:] {
			dc.LineTo(c.X, c.Y)
		}
		dc.ClosePath()

		t := float64(i) / float64(max(n-1, 1))
		dc.SetRGB(0.15+0.55*t, 0.25+0.45*t, 0.55-0.25*t)
		dc.FillPreserve()
		dc.SetRGB(0.05, 0.05, 0.07)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	return dc.SavePNG(s.name + ".png")
}

func main() {
	layout := hexmap.NewLayout(
		hexmap.OrientationPointy,
		hexmap.Point{X: config.PainterImageDim / 2, Y: config.PainterImageDim / 2},
		config.PainterHexSize,
	)
	for _, s := range shapes() {
		if err := paint(s, layout); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s.png (%d hexes)", s.name, len(s.coords))
	}
}
