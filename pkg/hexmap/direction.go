// pkg/hexmap/direction.go
package hexmap

import "math"

// Angle between two successive directions of the same family.
const (
	DirectionAngleRad     = math.Pi / 3
	DirectionAngleDegrees = 60.0
	// Angle between an edge direction and its adjacent vertex directions.
	DirectionOffsetRad     = math.Pi / 6
	DirectionOffsetDegrees = 30.0
)

// EdgeDirection points from a hex center through one of its 6 edges to
// the adjacent hex. Indices run clockwise and index NeighborCoords.
type EdgeDirection uint8

const (
	EdgeFlatBottomRight EdgeDirection = iota
	EdgeFlatBottom
	EdgeFlatBottomLeft
	EdgeFlatTopLeft
	EdgeFlatTop
	EdgeFlatTopRight
)

// Pointy orientation names for the same indices.
const (
	EdgePointyRight       = EdgeFlatBottomRight
	EdgePointyBottomRight = EdgeFlatBottom
	EdgePointyBottomLeft  = EdgeFlatBottomLeft
	EdgePointyLeft        = EdgeFlatTopLeft
	EdgePointyTopLeft     = EdgeFlatTop
	EdgePointyTopRight    = EdgeFlatTopRight
)

// VertexDirection points from a hex center through one of its 6 corners
// towards a diagonal hex. Indices run clockwise and index DiagonalCoords.
type VertexDirection uint8

const (
	VertexFlatRight VertexDirection = iota
	VertexFlatBottomRight
	VertexFlatBottomLeft
	VertexFlatLeft
	VertexFlatTopLeft
	VertexFlatTopRight
)

const (
	VertexPointyTopRight    = VertexFlatRight
	VertexPointyBottomRight = VertexFlatBottomRight
	VertexPointyBottom      = VertexFlatBottomLeft
	VertexPointyBottomLeft  = VertexFlatLeft
	VertexPointyTopLeft     = VertexFlatTopLeft
	VertexPointyTop         = VertexFlatTopRight
)

// Vector returns the unit hex vector of the direction.
func (d EdgeDirection) Vector() Hex {
	return NeighborCoords[d%6]
}

func (d EdgeDirection) Opposite() EdgeDirection {
	return (d + 3) % 6
}

func (d EdgeDirection) Clockwise() EdgeDirection {
	return (d + 1) % 6
}

func (d EdgeDirection) CounterClockwise() EdgeDirection {
	return (d + 5) % 6
}

func (d EdgeDirection) RotateCW(steps int) EdgeDirection {
	return (d + EdgeDirection(normSteps(steps))) % 6
}

func (d EdgeDirection) RotateCCW(steps int) EdgeDirection {
	return d.RotateCW(-steps)
}

// VertexCCW returns the vertex direction adjacent to d on its counter
// clockwise side.
func (d EdgeDirection) VertexCCW() VertexDirection {
	return VertexDirection(d % 6)
}

// VertexCW returns the vertex direction adjacent to d on its clockwise
// side.
func (d EdgeDirection) VertexCW() VertexDirection {
	return VertexDirection((d + 1) % 6)
}

// AnglePointyDegrees returns the direction angle in pointy orientation,
// counter clockwise from the positive x axis.
func (d EdgeDirection) AnglePointyDegrees() float64 {
	return float64(d%6) * DirectionAngleDegrees
}

func (d EdgeDirection) AngleFlatDegrees() float64 {
	return d.AnglePointyDegrees() + DirectionOffsetDegrees
}

func (d EdgeDirection) AnglePointy() float64 {
	return float64(d%6) * DirectionAngleRad
}

func (d EdgeDirection) AngleFlat() float64 {
	return d.AnglePointy() + DirectionOffsetRad
}

// AngleDegrees returns the direction angle in the layout orientation.
func (d EdgeDirection) AngleDegrees(o Orientation) float64 {
	if o.pointy {
		return d.AnglePointyDegrees()
	}
	return d.AngleFlatDegrees()
}

func (d EdgeDirection) Angle(o Orientation) float64 {
	if o.pointy {
		return d.AnglePointy()
	}
	return d.AngleFlat()
}

// EdgeDirectionFromFlatDegrees returns the edge direction whose flat
// orientation sector contains the angle.
func EdgeDirectionFromFlatDegrees(angle float64) EdgeDirection {
	sector := int(math.Mod(math.Mod(angle, 360)+360, 360) / DirectionAngleDegrees)
	return EdgeDirection(sector % 6)
}

func EdgeDirectionFromPointyDegrees(angle float64) EdgeDirection {
	return EdgeDirectionFromFlatDegrees(angle + DirectionOffsetDegrees)
}

func EdgeDirectionFromFlatAngle(angle float64) EdgeDirection {
	return EdgeDirectionFromFlatDegrees(angle * 180 / math.Pi)
}

func EdgeDirectionFromPointyAngle(angle float64) EdgeDirection {
	return EdgeDirectionFromPointyDegrees(angle * 180 / math.Pi)
}

func (d EdgeDirection) String() string {
	return [...]string{
		"FlatBottomRight", "FlatBottom", "FlatBottomLeft",
		"FlatTopLeft", "FlatTop", "FlatTopRight",
	}[d%6]
}

// Vector returns the diagonal hex vector of the direction.
func (d VertexDirection) Vector() Hex {
	return DiagonalCoords[d%6]
}

func (d VertexDirection) Opposite() VertexDirection {
	return (d + 3) % 6
}

func (d VertexDirection) Clockwise() VertexDirection {
	return (d + 1) % 6
}

func (d VertexDirection) CounterClockwise() VertexDirection {
	return (d + 5) % 6
}

func (d VertexDirection) RotateCW(steps int) VertexDirection {
	return (d + VertexDirection(normSteps(steps))) % 6
}

func (d VertexDirection) RotateCCW(steps int) VertexDirection {
	return d.RotateCW(-steps)
}

// EdgeCCW returns the edge direction adjacent to d on its counter
// clockwise side.
func (d VertexDirection) EdgeCCW() EdgeDirection {
	return EdgeDirection((d + 5) % 6)
}

// EdgeCW returns the edge direction adjacent to d on its clockwise side.
func (d VertexDirection) EdgeCW() EdgeDirection {
	return EdgeDirection(d % 6)
}

// EdgeDirections returns the two edge directions flanking the vertex,
// counter clockwise side first.
func (d VertexDirection) EdgeDirections() [2]EdgeDirection {
	return [2]EdgeDirection{d.EdgeCCW(), d.EdgeCW()}
}

func (d VertexDirection) AngleFlatDegrees() float64 {
	return float64(d%6) * DirectionAngleDegrees
}

func (d VertexDirection) AnglePointyDegrees() float64 {
	return math.Mod(math.Mod(d.AngleFlatDegrees()-DirectionOffsetDegrees, 360)+360, 360)
}

func (d VertexDirection) AngleFlat() float64 {
	return d.AngleFlatDegrees() * math.Pi / 180
}

func (d VertexDirection) AnglePointy() float64 {
	return d.AnglePointyDegrees() * math.Pi / 180
}

func (d VertexDirection) AngleDegrees(o Orientation) float64 {
	if o.pointy {
		return d.AnglePointyDegrees()
	}
	return d.AngleFlatDegrees()
}

func (d VertexDirection) Angle(o Orientation) float64 {
	if o.pointy {
		return d.AnglePointy()
	}
	return d.AngleFlat()
}

// VertexDirectionFromPointyDegrees returns the vertex direction whose
// pointy orientation sector contains the angle.
func VertexDirectionFromPointyDegrees(angle float64) VertexDirection {
	sector := int(math.Mod(math.Mod(angle, 360)+360, 360) / DirectionAngleDegrees)
	return VertexDirection((sector + 1) % 6)
}

func VertexDirectionFromFlatDegrees(angle float64) VertexDirection {
	return VertexDirectionFromPointyDegrees(angle - DirectionOffsetDegrees)
}

func VertexDirectionFromPointyAngle(angle float64) VertexDirection {
	return VertexDirectionFromPointyDegrees(angle * 180 / math.Pi)
}

func VertexDirectionFromFlatAngle(angle float64) VertexDirection {
	return VertexDirectionFromFlatDegrees(angle * 180 / math.Pi)
}

func (d VertexDirection) String() string {
	return [...]string{
		"FlatRight", "FlatBottomRight", "FlatBottomLeft",
		"FlatLeft", "FlatTopLeft", "FlatTopRight",
	}[d%6]
}
