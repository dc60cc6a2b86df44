// pkg/hexmap/orientation.go
package hexmap

// Orientation holds the axial-to-world basis of a hex grid. Use the
// OrientationPointy and OrientationFlat values.
type Orientation struct {
	forward  [4]float64
	inverse  [4]float64
	rotation float64 // corner angle offset, radians
	pointy   bool
}

var (
	// OrientationPointy places a corner straight up, edges left and right.
	OrientationPointy = Orientation{
		forward:  [4]float64{Sqrt3, Sqrt3 / 2.0, 0.0, 3.0 / 2.0},
		inverse:  [4]float64{Sqrt3 / 3.0, -1.0 / 3.0, 0.0, 2.0 / 3.0},
		rotation: DirectionOffsetRad,
		pointy:   true,
	}

	// OrientationFlat places an edge straight up, corners left and right.
	OrientationFlat = Orientation{
		forward: [4]float64{3.0 / 2.0, 0.0, Sqrt3 / 2.0, Sqrt3},
		inverse: [4]float64{2.0 / 3.0, 0.0, -1.0 / 3.0, Sqrt3 / 3.0},
	}
)

// IsPointy reports whether the orientation is pointy topped.
func (o Orientation) IsPointy() bool {
	return o.pointy
}

// Forward transforms axial coordinates to world space, before scaling.
func (o Orientation) Forward(q, r float64) (x, y float64) {
	x = o.forward[0]*q + o.forward[1]*r
	y = o.forward[2]*q + o.forward[3]*r
	return
}

// Inverse transforms world space back to fractional axial coordinates.
func (o Orientation) Inverse(x, y float64) (q, r float64) {
	q = o.inverse[0]*x + o.inverse[1]*y
	r = o.inverse[2]*x + o.inverse[3]*y
	return
}
