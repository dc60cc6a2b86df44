// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"math"
)

// Hex is an axial coordinate on a hexagonal grid. The implicit third
// cubic component is S() = -Q - R.
type Hex struct {
	Q, R int32
}

var (
	HexZero = Hex{0, 0}
	HexOne  = Hex{1, 1}
	AxisQ   = Hex{1, 0}
	AxisR   = Hex{0, 1}
)

// NeighborCoords holds the 6 unit vectors to adjacent hexes, clockwise,
// indexed by EdgeDirection. This order is load-bearing for ring and
// direction math.
var NeighborCoords = [6]Hex{
	{1, 0}, {0, 1}, {-1, 1},
	{-1, 0}, {0, -1}, {1, -1},
}

// DiagonalCoords holds the 6 vectors to diagonal hexes, clockwise,
// indexed by VertexDirection.
var DiagonalCoords = [6]Hex{
	{2, -1}, {1, 1}, {-1, 2},
	{-2, 1}, {-1, -1}, {1, -2},
}

func NewHex(q, r int32) Hex {
	return Hex{Q: q, R: r}
}

// Splat creates a hex with both components set to v.
func Splat(v int32) Hex {
	return Hex{Q: v, R: v}
}

// FromCubic builds a hex from cubic coordinates. The components of a
// valid cubic coordinate sum to zero.
func FromCubic(x, y, z int32) (Hex, error) {
	if x+y+z != 0 {
		return Hex{}, fmt.Errorf("hexmap: cubic coordinates must sum to zero, got %d+%d+%d", x, y, z)
	}
	return Hex{Q: x, R: y}, nil
}

// S returns the third cubic component.
func (h Hex) S() int32 {
	return -h.Q - h.R
}

// ToCubic returns the full cubic coordinate triple.
func (h Hex) ToCubic() (x, y, z int32) {
	return h.Q, h.R, h.S()
}

func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

func (h Hex) Neg() Hex {
	return Hex{Q: -h.Q, R: -h.R}
}

// Mul multiplies component-wise.
func (h Hex) Mul(other Hex) Hex {
	return Hex{Q: h.Q * other.Q, R: h.R * other.R}
}

// MulScalar multiplies both components by k.
func (h Hex) MulScalar(k int32) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// DivScalar divides by k, rounding to the nearest hex. The result is
// consistent with Lerp: h.DivScalar(k) == HexZero.Lerp(h, 1/k).
func (h Hex) DivScalar(k int32) Hex {
	return Round(float64(h.Q)/float64(k), float64(h.R)/float64(k))
}

// RemScalar returns the remainder of the rounded division, so that
// h.DivScalar(k).MulScalar(k).Add(h.RemScalar(k)) == h.
func (h Hex) RemScalar(k int32) Hex {
	return h.Subtract(h.DivScalar(k).MulScalar(k))
}

// Div divides component-wise, truncating toward zero.
func (h Hex) Div(other Hex) Hex {
	return Hex{Q: h.Q / other.Q, R: h.R / other.R}
}

// Rem returns the component-wise remainder.
func (h Hex) Rem(other Hex) Hex {
	return Hex{Q: h.Q % other.Q, R: h.R % other.R}
}

func (h Hex) Abs() Hex {
	return Hex{Q: abs32(h.Q), R: abs32(h.R)}
}

func (h Hex) Signum() Hex {
	return Hex{Q: sign32(h.Q), R: sign32(h.R)}
}

func (h Hex) Min(other Hex) Hex {
	return Hex{Q: min(h.Q, other.Q), R: min(h.R, other.R)}
}

func (h Hex) Max(other Hex) Hex {
	return Hex{Q: max(h.Q, other.Q), R: max(h.R, other.R)}
}

func (h Hex) Dot(other Hex) int64 {
	return int64(h.Q)*int64(other.Q) + int64(h.R)*int64(other.R)
}

// Length is the hex distance from the origin, the largest absolute
// cubic component.
func (h Hex) Length() uint32 {
	q, r := int64(h.Q), int64(h.R)
	n := max(abs64(q), abs64(r), abs64(-q-r))
	if n > math.MaxUint32 {
		n = math.MaxUint32
	}
	return uint32(n)
}

// Distance returns the number of steps between two hexes.
func (h Hex) Distance(to Hex) uint32 {
	return to.Subtract(h).Length()
}

// Neighbor returns the adjacent hex in the given direction.
func (h Hex) Neighbor(dir EdgeDirection) Hex {
	return h.Add(dir.Vector())
}

// AllNeighbors returns the 6 adjacent hexes in EdgeDirection order.
func (h Hex) AllNeighbors() []Hex {
	out := make([]Hex, 6)
	for i, d := range NeighborCoords {
		out[i] = h.Add(d)
	}
	return out
}

// DiagonalNeighbor returns the diagonal hex in the given direction.
func (h Hex) DiagonalNeighbor(dir VertexDirection) Hex {
	return h.Add(dir.Vector())
}

// AllDiagonals returns the 6 diagonal hexes in VertexDirection order.
func (h Hex) AllDiagonals() []Hex {
	out := make([]Hex, 6)
	for i, d := range DiagonalCoords {
		out[i] = h.Add(d)
	}
	return out
}

// Round converts fractional axial coordinates to the nearest hex,
// correcting the component with the larger rounding error.
func Round(q, r float64) Hex {
	qr := math.Round(q)
	rr := math.Round(r)
	dq := q - qr
	dr := r - rr
	if math.Abs(dq) >= math.Abs(dr) {
		qr += math.Round(dq + 0.5*dr)
	} else {
		rr += math.Round(dr + 0.5*dq)
	}
	return Hex{Q: int32(qr), R: int32(rr)}
}

// Lerp interpolates between two hexes and rounds to the grid.
func (h Hex) Lerp(to Hex, t float64) Hex {
	q := float64(h.Q) + (float64(to.Q)-float64(h.Q))*t
	r := float64(h.R) + (float64(to.R)-float64(h.R))*t
	return Round(q, r)
}

// LineTo returns the hexes on a straight line between two hexes,
// inclusive of both endpoints.
func (h Hex) LineTo(to Hex) []Hex {
	dist := h.Distance(to)
	n := max(dist, 1)
	step := 1.0 / float64(n)
	out := make([]Hex, 0, dist+1)
	for i := uint32(0); i <= dist; i++ {
		out = append(out, h.Lerp(to, step*float64(i)))
	}
	return out
}

// Clockwise rotates the hex 60 degrees clockwise around the origin.
func (h Hex) Clockwise() Hex {
	return Hex{Q: -h.R, R: -h.S()}
}

// CounterClockwise rotates the hex 60 degrees counter clockwise around
// the origin.
func (h Hex) CounterClockwise() Hex {
	return Hex{Q: -h.S(), R: -h.Q}
}

// RotateCW rotates by steps*60 degrees clockwise around the origin.
// Negative step counts rotate the other way.
func (h Hex) RotateCW(steps int) Hex {
	for i := 0; i < normSteps(steps); i++ {
		h = h.Clockwise()
	}
	return h
}

// RotateCCW rotates by steps*60 degrees counter clockwise around the
// origin.
func (h Hex) RotateCCW(steps int) Hex {
	return h.RotateCW(-steps)
}

func (h Hex) ClockwiseAround(center Hex) Hex {
	return h.Subtract(center).Clockwise().Add(center)
}

func (h Hex) CounterClockwiseAround(center Hex) Hex {
	return h.Subtract(center).CounterClockwise().Add(center)
}

func (h Hex) RotateCWAround(center Hex, steps int) Hex {
	return h.Subtract(center).RotateCW(steps).Add(center)
}

func (h Hex) RotateCCWAround(center Hex, steps int) Hex {
	return h.Subtract(center).RotateCCW(steps).Add(center)
}

// ReflectQ reflects across the q axis, keeping Q fixed.
func (h Hex) ReflectQ() Hex {
	return Hex{Q: h.Q, R: h.S()}
}

// ReflectR reflects across the r axis, keeping R fixed.
func (h Hex) ReflectR() Hex {
	return Hex{Q: h.S(), R: h.R}
}

// ReflectS reflects across the s axis, swapping Q and R.
func (h Hex) ReflectS() Hex {
	return Hex{Q: h.R, R: h.Q}
}

// MainDirectionTo returns the closest edge direction towards other.
// Ties resolve to the first direction of the way.
func (h Hex) MainDirectionTo(other Hex) EdgeDirection {
	return h.WayTo(other).Unwrap()
}

// MainDiagonalTo returns the closest vertex direction towards other.
func (h Hex) MainDiagonalTo(other Hex) VertexDirection {
	return h.DiagonalWayTo(other).Unwrap()
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d, %d)", h.Q, h.R)
}
