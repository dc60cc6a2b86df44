// pkg/hexmap/bounds.go
package hexmap

// Bounds is a hexagonal region: all hexes within Radius of Center.
type Bounds struct {
	Center Hex
	Radius uint32
}

func NewBounds(center Hex, radius uint32) Bounds {
	return Bounds{Center: center, Radius: radius}
}

// FromMinMax returns bounds covering the axial rectangle spanned by min
// and max.
func FromMinMax(min, max Hex) Bounds {
	center := min.Add(max).DivScalar(2)
	return Bounds{Center: center, Radius: center.Distance(max) / 2}
}

// BoundsOf returns the smallest bounds produced from the component-wise
// extremes of the given hexes.
func BoundsOf(coords []Hex) Bounds {
	if len(coords) == 0 {
		return Bounds{}
	}
	lo, hi := coords[0], coords[0]
	for _, c := range coords[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	return FromMinMax(lo, hi)
}

// IsInBounds reports whether the hex lies within the bounds.
func (b Bounds) IsInBounds(h Hex) bool {
	return b.Center.Distance(h) <= b.Radius
}

// Count returns the number of hexes in the bounds.
func (b Bounds) Count() int {
	return RangeCount(b.Radius)
}

// All returns every hex in the bounds.
func (b Bounds) All() []Hex {
	return b.Center.Range(b.Radius)
}

// WrapLocal wraps the hex into the bounds relative to its center.
func (b Bounds) WrapLocal(h Hex) Hex {
	return h.Subtract(b.Center).WrapInRange(b.Radius)
}

// Wrap wraps the hex into the bounds. Out of bounds coordinates re-enter
// on the opposite side, as if the plane were tiled with copies of the
// bounds.
func (b Bounds) Wrap(h Hex) Hex {
	return b.WrapLocal(h).Add(b.Center)
}
