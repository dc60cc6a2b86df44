// pkg/hexmap/rings.go
package hexmap

// Ring returns the hexes at exactly the given distance of h, clockwise,
// starting at h.Neighbor(EdgeFlatBottomRight) scaled to the radius.
func (h Hex) Ring(radius uint32) []Hex {
	return h.CustomRing(radius, EdgeFlatBottomRight, true)
}

// CustomRing returns the ring at the given radius with a chosen start
// direction and winding.
func (h Hex) CustomRing(radius uint32, start EdgeDirection, clockwise bool) []Hex {
	if radius == 0 {
		return []Hex{h}
	}
	out := make([]Hex, 0, RingCount(radius))
	cur := h.Add(start.Vector().MulScalar(int32(radius)))
	var dir EdgeDirection
	if clockwise {
		dir = start.RotateCW(2)
	} else {
		dir = start.RotateCCW(2)
	}
	for side := 0; side < 6; side++ {
		for step := uint32(0); step < radius; step++ {
			out = append(out, cur)
			cur = cur.Add(dir.Vector())
		}
		if clockwise {
			dir = dir.Clockwise()
		} else {
			dir = dir.CounterClockwise()
		}
	}
	return out
}

// RingEdge returns the arc of the ring at the given radius facing the
// vertex direction, running clockwise between the two flanking corners.
// The arc holds radius+1 hexes.
func (h Hex) RingEdge(radius uint32, dir VertexDirection) []Hex {
	edge := dir.EdgeCCW()
	cur := h.Add(edge.Vector().MulScalar(int32(radius)))
	step := edge.RotateCW(2)
	out := make([]Hex, 0, radius+1)
	for i := uint32(0); i <= radius; i++ {
		out = append(out, cur)
		cur = cur.Add(step.Vector())
	}
	return out
}

// RingEdges returns the 6 arcs of the ring at the given radius, in
// VertexDirection order. Adjacent arcs share their corner hexes.
func (h Hex) RingEdges(radius uint32) [6][]Hex {
	var out [6][]Hex
	for d := VertexDirection(0); d < 6; d++ {
		out[d] = h.RingEdge(radius, d)
	}
	return out
}

// Wedge returns the hexes up to the given radius facing the vertex
// direction, a 60 degree slice of the range.
func (h Hex) Wedge(radius uint32, dir VertexDirection) []Hex {
	return h.CustomWedge(0, radius, dir)
}

// CustomWedge returns the wedge slice between two radii inclusive.
func (h Hex) CustomWedge(from, to uint32, dir VertexDirection) []Hex {
	var out []Hex
	for r := from; r <= to; r++ {
		out = append(out, h.RingEdge(r, dir)...)
	}
	return out
}

// WedgeTo returns the wedge(s) of h covering other: the full wedge in
// each tied vertex direction, out to the distance of other. Shared
// border hexes of tied wedges appear once.
func (h Hex) WedgeTo(other Hex) []Hex {
	dist := h.Distance(other)
	way := h.DiagonalWayTo(other)
	dirs := way.Dirs()
	if len(dirs) == 1 {
		return h.Wedge(dist, dirs[0])
	}
	seen := make(map[Hex]struct{}, 2*WedgeCount(dist))
	var out []Hex
	for _, d := range dirs {
		for _, c := range h.Wedge(dist, d) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// CornerWedge returns the hexes up to the given radius facing the edge
// direction, a 120 degree slice of the range.
func (h Hex) CornerWedge(radius uint32, dir EdgeDirection) []Hex {
	out := make([]Hex, 0, CornerWedgeCount(radius))
	for r := uint32(0); r <= radius; r++ {
		out = append(out, h.CornerArc(r, dir)...)
	}
	return out
}

// CornerArc returns the arc of the ring at the given radius centered on
// the edge direction, spanning its two adjacent vertex directions. The
// arc holds 2*radius+1 hexes.
func (h Hex) CornerArc(radius uint32, dir EdgeDirection) []Hex {
	out := h.RingEdge(radius, dir.VertexCCW())
	cw := h.RingEdge(radius, dir.VertexCW())
	return append(out, cw[1:]...)
}

// CornerWedgeTo returns the corner wedge(s) of h covering other, out to
// the distance of other.
func (h Hex) CornerWedgeTo(other Hex) []Hex {
	dist := h.Distance(other)
	way := h.WayTo(other)
	dirs := way.Dirs()
	if len(dirs) == 1 {
		return h.CornerWedge(dist, dirs[0])
	}
	seen := make(map[Hex]struct{}, 2*CornerWedgeCount(dist))
	var out []Hex
	for _, d := range dirs {
		for _, c := range h.CornerWedge(dist, d) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// SpiralRange returns the rings between the two radii inclusive,
// concatenated inner to outer.
func (h Hex) SpiralRange(from, to uint32) []Hex {
	var out []Hex
	for r := from; r <= to; r++ {
		out = append(out, h.Ring(r)...)
	}
	return out
}

// Spiral returns the full range of h ordered as a spiral from the
// center outward.
func (h Hex) Spiral(radius uint32) []Hex {
	return h.SpiralRange(0, radius)
}

// RingCache precomputes ring offsets around the origin and serves
// translated copies. Rings are computed once per radius on first use.
type RingCache struct {
	rings [][]Hex
}

func NewRingCache() *RingCache {
	return &RingCache{}
}

// Ring returns the ring of the given center and radius from the cache.
func (c *RingCache) Ring(center Hex, radius uint32) []Hex {
	for uint32(len(c.rings)) <= radius {
		c.rings = append(c.rings, HexZero.Ring(uint32(len(c.rings))))
	}
	base := c.rings[radius]
	out := make([]Hex, len(base))
	for i, offset := range base {
		out[i] = center.Add(offset)
	}
	return out
}

// EdgeCache precomputes ring edge offsets around the origin, per radius
// and vertex direction, and serves translated copies.
type EdgeCache struct {
	edges [][6][]Hex
}

func NewEdgeCache() *EdgeCache {
	return &EdgeCache{}
}

// RingEdge returns the ring arc of the given center, radius and vertex
// direction from the cache.
func (c *EdgeCache) RingEdge(center Hex, radius uint32, dir VertexDirection) []Hex {
	for uint32(len(c.edges)) <= radius {
		c.edges = append(c.edges, HexZero.RingEdges(uint32(len(c.edges))))
	}
	base := c.edges[radius][dir%6]
	out := make([]Hex, len(base))
	for i, offset := range base {
		out[i] = center.Add(offset)
	}
	return out
}
