// pkg/hexmap/layout.go
package hexmap

import "math"

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Layout maps hexes to world space: orientation, world origin of the
// grid center, and hex size per axis.
type Layout struct {
	Orientation Orientation
	Origin      Point
	HexSize     Point
}

// NewLayout returns a layout with a uniform hex size centered on origin.
func NewLayout(o Orientation, origin Point, size float64) Layout {
	return Layout{Orientation: o, Origin: origin, HexSize: Point{X: size, Y: size}}
}

// HexToPixel returns the world position of the hex center.
func (l Layout) HexToPixel(h Hex) Point {
	x, y := l.Orientation.Forward(float64(h.Q), float64(h.R))
	return Point{
		X: x*l.HexSize.X + l.Origin.X,
		Y: y*l.HexSize.Y + l.Origin.Y,
	}
}

// PixelToHex returns the hex containing the world position.
func (l Layout) PixelToHex(p Point) Hex {
	q, r := l.Orientation.Inverse(
		(p.X-l.Origin.X)/l.HexSize.X,
		(p.Y-l.Origin.Y)/l.HexSize.Y,
	)
	return Round(q, r)
}

// Corners returns the 6 corner positions of the hex, counter clockwise
// starting at the corner closest to the positive x axis.
func (l Layout) Corners(h Hex) [6]Point {
	center := l.HexToPixel(h)
	var out [6]Point
	for i := 0; i < 6; i++ {
		angle := DirectionAngleRad*float64(i) + l.Orientation.rotation
		out[i] = Point{
			X: center.X + math.Cos(angle)*l.HexSize.X,
			Y: center.Y + math.Sin(angle)*l.HexSize.Y,
		}
	}
	return out
}
