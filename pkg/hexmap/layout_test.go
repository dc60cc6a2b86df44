// pkg/hexmap/layout_test.go
package hexmap

import (
	"math"
	"testing"
)

func TestHexToPixel(t *testing.T) {
	pointy := NewLayout(OrientationPointy, Point{}, 1)
	tests := []struct {
		hex  Hex
		x, y float64
	}{
		{Hex{0, 0}, 0, 0},
		{Hex{1, 0}, Sqrt3, 0},
		{Hex{0, 1}, Sqrt3 / 2, 1.5},
		{Hex{-1, -1}, -Sqrt3 * 1.5, -1.5},
	}
	for _, tt := range tests {
		p := pointy.HexToPixel(tt.hex)
		if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
			t.Errorf("Expected pixel of %v to be (%v, %v), got (%v, %v)", tt.hex, tt.x, tt.y, p.X, p.Y)
		}
	}

	flat := NewLayout(OrientationFlat, Point{}, 1)
	p := flat.HexToPixel(Hex{1, 0})
	if math.Abs(p.X-1.5) > 1e-9 || math.Abs(p.Y-Sqrt3/2) > 1e-9 {
		t.Errorf("Expected flat pixel of (1, 0) to be (1.5, %v), got (%v, %v)", Sqrt3/2, p.X, p.Y)
	}
}

func TestPixelToHexRoundTrip(t *testing.T) {
	layouts := []Layout{
		NewLayout(OrientationPointy, Point{}, 10),
		NewLayout(OrientationFlat, Point{X: 100, Y: -40}, 7),
		{Orientation: OrientationPointy, Origin: Point{X: 3, Y: 3}, HexSize: Point{X: 8, Y: 12}},
	}
	for _, layout := range layouts {
		for _, h := range HexZero.Range(6) {
			center := layout.HexToPixel(h)
			if got := layout.PixelToHex(center); got != h {
				t.Errorf("Expected pixel round trip of %v, got %v", h, got)
			}
		}
	}
}

func TestCorners(t *testing.T) {
	flat := NewLayout(OrientationFlat, Point{}, 10)
	corners := flat.Corners(HexZero)
	expected := [6][2]float64{
		{10, 0}, {5, 9}, {-5, 9}, {-10, 0}, {-5, -9}, {5, -9},
	}
	for i, want := range expected {
		got := [2]float64{math.Round(corners[i].X), math.Round(corners[i].Y)}
		if got != want {
			t.Errorf("Expected corner %d to be %v, got %v", i, want, got)
		}
	}

	// Pointy corners are the flat corners rotated by the offset angle.
	pointy := NewLayout(OrientationPointy, Point{}, 10)
	pcorners := pointy.Corners(HexZero)
	if math.Abs(pcorners[0].X-10*math.Cos(DirectionOffsetRad)) > 1e-9 {
		t.Errorf("Expected first pointy corner x to be %v, got %v", 10*math.Cos(DirectionOffsetRad), pcorners[0].X)
	}
	// All corners sit on the hex size circle.
	for i, c := range pcorners {
		radius := math.Hypot(c.X, c.Y)
		if math.Abs(radius-10) > 1e-9 {
			t.Errorf("Expected corner %d radius to be 10, got %v", i, radius)
		}
	}
}
