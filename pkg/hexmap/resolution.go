// pkg/hexmap/resolution.go
package hexmap

// Grids can be viewed at a lower resolution where each coordinate names
// a whole hexagon of the given radius on the base grid. The multiplex
// is lossy downward: ToHigherRes(r) after ToLowerRes(r) returns the
// center of the containing hexagon, not the original coordinate.

// ToLowerRes returns the coordinate of the hexagon of the given radius
// containing h, on the lower resolution grid.
func (h Hex) ToLowerRes(radius uint32) Hex {
	r := int64(radius)
	shift := 3*r + 2
	area := 3*r*r + 3*r + 1
	x, y, z := h.ToCubic()
	qm := floorDiv(int64(y)+shift*int64(x), area)
	rm := floorDiv(int64(z)+shift*int64(y), area)
	sm := floorDiv(int64(x)+shift*int64(z), area)
	return Hex{
		Q: int32(floorDiv(1+qm-rm, 3)),
		R: int32(floorDiv(1+rm-sm, 3)),
	}
}

// ToHigherRes returns the center of the hexagon of the given radius
// named by h, on the higher resolution grid.
func (h Hex) ToHigherRes(radius uint32) Hex {
	r := int64(radius)
	x, y, z := h.ToCubic()
	return Hex{
		Q: int32(int64(x)*(r+1) - r*int64(z)),
		R: int32(int64(y)*(r+1) - r*int64(x)),
	}
}

// ToLocal returns the position of h relative to the center of its
// containing hexagon of the given radius.
func (h Hex) ToLocal(radius uint32) Hex {
	return h.Subtract(h.ToLowerRes(radius).ToHigherRes(radius))
}

// WrapInRange wraps h into the hexagon of the given radius around the
// origin, tiling the plane with hexagons of that radius.
func (h Hex) WrapInRange(radius uint32) Hex {
	return h.ToLocal(radius)
}
