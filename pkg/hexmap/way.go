// pkg/hexmap/way.go
package hexmap

// Direction constrains the two direction families. Both are 0..5
// indices running clockwise, so rotation math is shared.
type Direction interface {
	EdgeDirection | VertexDirection
}

// DirectionWay is the result of a direction query: either a single
// closest direction or an exact tie between two adjacent ones.
type DirectionWay[T Direction] struct {
	first, second T
	tie           bool
}

func SingleWay[T Direction](dir T) DirectionWay[T] {
	return DirectionWay[T]{first: dir}
}

func TieWay[T Direction](a, b T) DirectionWay[T] {
	return DirectionWay[T]{first: a, second: b, tie: true}
}

// IsTie reports whether the target lies exactly between two directions.
func (w DirectionWay[T]) IsTie() bool {
	return w.tie
}

// Unwrap returns the first direction of the way.
func (w DirectionWay[T]) Unwrap() T {
	return w.first
}

// Dirs returns the directions of the way, one or two.
func (w DirectionWay[T]) Dirs() []T {
	if w.tie {
		return []T{w.first, w.second}
	}
	return []T{w.first}
}

// Contains reports whether dir is part of the way. A single way equals
// the direction it holds, a tie equals either of its two.
func (w DirectionWay[T]) Contains(dir T) bool {
	return w.first == dir || (w.tie && w.second == dir)
}

func rotCW[T Direction](d T) T {
	return T((uint8(d) + 1) % 6)
}

func rotCCW[T Direction](d T) T {
	return T((uint8(d) + 5) % 6)
}

func oppositeOf[T Direction](d T) T {
	return T((uint8(d) + 3) % 6)
}

// wayFrom resolves a direction query from the sign of the dominant
// component and its equalities with the two runner-ups.
func wayFrom[T Direction](isNeg, eqLeft, eqRight bool, dir T) DirectionWay[T] {
	neg := oppositeOf(dir)
	switch {
	case !isNeg && eqLeft:
		return TieWay(dir, rotCCW(dir))
	case isNeg && eqLeft:
		return TieWay(neg, rotCCW(neg))
	case !isNeg && eqRight:
		return TieWay(dir, rotCW(dir))
	case isNeg && eqRight:
		return TieWay(neg, rotCW(neg))
	case isNeg:
		return SingleWay(neg)
	default:
		return SingleWay(dir)
	}
}

// WayTo returns the edge direction(s) from h towards other. Exact
// diagonals report a tie between the two flanking edge directions.
func (h Hex) WayTo(other Hex) DirectionWay[EdgeDirection] {
	x, y, z := other.Subtract(h).ToCubic()
	x, y, z = y-x, z-y, x-z
	xa, ya, za := abs32(x), abs32(y), abs32(z)
	switch max(xa, ya, za) {
	case xa:
		return wayFrom(x < 0, xa == ya, xa == za, EdgeFlatBottomLeft)
	case ya:
		return wayFrom(y < 0, ya == za, ya == xa, EdgeFlatTop)
	default:
		return wayFrom(z < 0, za == xa, za == ya, EdgeFlatBottomRight)
	}
}

// DiagonalWayTo returns the vertex direction(s) from h towards other.
// Targets on an axis report a tie between the two flanking vertex
// directions.
func (h Hex) DiagonalWayTo(other Hex) DirectionWay[VertexDirection] {
	x, y, z := other.Subtract(h).ToCubic()
	xa, ya, za := abs32(x), abs32(y), abs32(z)
	switch max(xa, ya, za) {
	case xa:
		return wayFrom(x < 0, xa == ya, xa == za, VertexFlatRight)
	case ya:
		return wayFrom(y < 0, ya == za, ya == xa, VertexFlatBottomLeft)
	default:
		return wayFrom(z < 0, za == xa, za == ya, VertexFlatTopLeft)
	}
}
