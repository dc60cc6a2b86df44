package render

import (
	"fmt"
	"image/color"

	"go-hexgrid/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HexRenderer draws a hex grid with per-cell overlay colors. The static
// grid is rendered once into an offscreen image; overlays are drawn on
// top every frame.
type HexRenderer struct {
	layout     hexmap.Layout
	cells      []hexmap.Hex
	colors     GridColors
	fillImg    *ebiten.Image
	strokeImg  *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	fontFace   font.Face
	mapImage   *ebiten.Image // Поле для предрендеренной карты
	showLabels bool
}

func NewHexRenderer(layout hexmap.Layout, cells []hexmap.Hex, colors GridColors, screenWidth, screenHeight int, showLabels bool) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	renderer := &HexRenderer{
		layout:     layout,
		cells:      cells,
		colors:     colors,
		fillImg:    fillImg,
		strokeImg:  strokeImg,
		fillVs:     make([]ebiten.Vertex, 0, 18),
		fillIs:     make([]uint16, 0, 18),
		strokeVs:   make([]ebiten.Vertex, 0, 36),
		strokeIs:   make([]uint16, 0, 36),
		fontFace:   basicfont.Face7x13,
		mapImage:   ebiten.NewImage(screenWidth, screenHeight),
		showLabels: showLabels,
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer
}

// RenderMapImage rebuilds the prerendered grid image.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, cell := range r.cells {
		r.DrawCell(r.mapImage, cell, r.colors.CellColor)
	}
	for _, cell := range r.cells {
		r.DrawOutline(r.mapImage, cell, LightenColor(r.colors.CellColor, 40))
	}
}

// Draw renders the grid and the given overlay colors. Overlay cells are
// filled and re-outlined; iteration over the cell slice keeps the draw
// order stable.
func (r *HexRenderer) Draw(screen *ebiten.Image, overlay map[hexmap.Hex]color.RGBA) {
	screen.DrawImage(r.mapImage, nil)
	for _, cell := range r.cells {
		fill, ok := overlay[cell]
		if !ok {
			continue
		}
		r.DrawCell(screen, cell, fill)
		r.DrawOutline(screen, cell, LightenColor(fill, 40))
	}
}

func (r *HexRenderer) hexPath(cell hexmap.Hex) vector.Path {
	corners := r.layout.Corners(cell)
	path := vector.Path{}
	for i, c := range corners {
		if i == 0 {
			path.MoveTo(float32(c.X), float32(c.Y))
		} else {
			path.LineTo(float32(c.X), float32(c.Y))
		}
	}
	path.Close()
	return path
}

// DrawCell fills a single hex and, when labels are on, prints its
// axial coordinates.
func (r *HexRenderer) DrawCell(target *ebiten.Image, cell hexmap.Hex, fillColor color.RGBA) {
	path := r.hexPath(cell)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if !r.showLabels {
		return
	}
	center := r.layout.HexToPixel(cell)
	label := fmt.Sprintf("%d,%d", cell.Q, cell.R)
	var textColor color.RGBA
	if (int(fillColor.R)+int(fillColor.G)+int(fillColor.B))/3 > 128 {
		textColor = r.colors.TextDarkColor
	} else {
		textColor = r.colors.TextLightColor
	}
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(center.X)-textWidth/2, int(center.Y)+textHeight/2, textColor)
}

// DrawOutline strokes the border of a single hex.
func (r *HexRenderer) DrawOutline(target *ebiten.Image, cell hexmap.Hex, strokeColor color.RGBA) {
	path := r.hexPath(cell)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
