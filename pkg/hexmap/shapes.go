// pkg/hexmap/shapes.go
package hexmap

// RangeCount returns the number of hexes within the given radius.
func RangeCount(radius uint32) int {
	r := int(radius)
	return 3*r*(r+1) + 1
}

// RingCount returns the number of hexes on the ring at the given radius.
func RingCount(radius uint32) int {
	if radius == 0 {
		return 1
	}
	return 6 * int(radius)
}

// WedgeCount returns the number of hexes in a wedge of the given radius.
func WedgeCount(radius uint32) int {
	r := int(radius)
	return r*(r+3)/2 + 1
}

// CornerWedgeCount returns the number of hexes in a corner wedge of the
// given radius.
func CornerWedgeCount(radius uint32) int {
	r := int(radius)
	return (r + 1) * (r + 1)
}

// Range returns all hexes within the given distance of h, including h.
func (h Hex) Range(radius uint32) []Hex {
	r := int32(radius)
	out := make([]Hex, 0, RangeCount(radius))
	for q := -r; q <= r; q++ {
		for rr := max(-r, -q-r); rr <= min(r, r-q); rr++ {
			out = append(out, Hex{Q: h.Q + q, R: h.R + rr})
		}
	}
	return out
}

// XRange returns all hexes within the given distance of h except h
// itself.
func (h Hex) XRange(radius uint32) []Hex {
	r := int32(radius)
	out := make([]Hex, 0, RangeCount(radius)-1)
	for q := -r; q <= r; q++ {
		for rr := max(-r, -q-r); rr <= min(r, r-q); rr++ {
			if q == 0 && rr == 0 {
				continue
			}
			out = append(out, Hex{Q: h.Q + q, R: h.R + rr})
		}
	}
	return out
}

// Hexagon returns the hexes of a hexagon shape, identical to
// center.Range(radius).
func Hexagon(center Hex, radius uint32) []Hex {
	return center.Range(radius)
}

// Parallelogram returns the hexes with both axial components between
// min and max inclusive.
func Parallelogram(min, max Hex) []Hex {
	if max.Q < min.Q || max.R < min.R {
		return nil
	}
	out := make([]Hex, 0, int(max.Q-min.Q+1)*int(max.R-min.R+1))
	for q := min.Q; q <= max.Q; q++ {
		for r := min.R; r <= max.R; r++ {
			out = append(out, Hex{Q: q, R: r})
		}
	}
	return out
}

// Triangle returns the hexes of a triangle shape with the given side
// length, anchored at the origin.
func Triangle(size uint32) []Hex {
	s := int32(size)
	out := make([]Hex, 0, int(s+1)*int(s+2)/2)
	for q := int32(0); q <= s; q++ {
		for r := int32(0); r <= s-q; r++ {
			out = append(out, Hex{Q: q, R: r})
		}
	}
	return out
}

// PointyRectangle returns the hexes of a screen-aligned rectangle in
// pointy orientation, rows running top to bottom.
func PointyRectangle(left, right, top, bottom int32) []Hex {
	var out []Hex
	for r := top; r <= bottom; r++ {
		offset := r >> 1
		for q := left - offset; q <= right-offset; q++ {
			out = append(out, Hex{Q: q, R: r})
		}
	}
	return out
}

// FlatRectangle returns the hexes of a screen-aligned rectangle in flat
// orientation, columns running left to right.
func FlatRectangle(left, right, top, bottom int32) []Hex {
	var out []Hex
	for q := left; q <= right; q++ {
		offset := q >> 1
		for r := top - offset; r <= bottom-offset; r++ {
			out = append(out, Hex{Q: q, R: r})
		}
	}
	return out
}
