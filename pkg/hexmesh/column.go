// pkg/hexmesh/column.go
package hexmesh

import (
	"math"

	"go-hexgrid/pkg/hexmap"
)

// ColumnBuilder builds hexagonal prism meshes: a top cap and 6 side
// quads from the cap down to Y zero.
type ColumnBuilder struct {
	Layout hexmap.Layout
	Height float32
}

// Build returns the column mesh for a single hex.
func (b ColumnBuilder) Build(h hexmap.Hex) *Mesh {
	m := PlaneBuilder{Layout: b.Layout}.Build(h)
	for i := range m.Positions {
		m.Positions[i].Y = b.Height
	}

	corners := b.Layout.Corners(h)
	center := b.Layout.HexToPixel(h)
	for i := 0; i < 6; i++ {
		c0 := corners[i]
		c1 := corners[(i+1)%6]
		// Outward normal of the quad, from the midpoint away from the
		// column center.
		mx := float32((c0.X+c1.X)/2 - center.X)
		mz := float32((c0.Y+c1.Y)/2 - center.Y)
		n := normalize(Vec3{X: mx, Z: mz})

		base := uint16(len(m.Positions))
		m.Positions = append(m.Positions,
			Vec3{X: float32(c0.X), Y: b.Height, Z: float32(c0.Y)},
			Vec3{X: float32(c1.X), Y: b.Height, Z: float32(c1.Y)},
			Vec3{X: float32(c1.X), Y: 0, Z: float32(c1.Y)},
			Vec3{X: float32(c0.X), Y: 0, Z: float32(c0.Y)},
		)
		m.Normals = append(m.Normals, n, n, n, n)
		u0 := float32(i) / 6
		u1 := float32(i+1) / 6
		m.UVs = append(m.UVs,
			Vec2{X: u0, Y: 1},
			Vec2{X: u1, Y: 1},
			Vec2{X: u1, Y: 0},
			Vec2{X: u0, Y: 0},
		)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

func normalize(v Vec3) Vec3 {
	d := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if d == 0 {
		return v
	}
	inv := 1 / float32(math.Sqrt(float64(d)))
	return Vec3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}
