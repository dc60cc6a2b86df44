// pkg/hexmesh/plane.go
package hexmesh

import (
	"go-hexgrid/pkg/hexmap"
)

// PlaneBuilder builds flat hexagon meshes on the XZ plane from a grid
// layout. The layout's 2D plane maps to X and Z, Y is up.
type PlaneBuilder struct {
	Layout hexmap.Layout
}

// Build returns the mesh of a single hex: a 7 vertex fan, 6 triangles.
func (b PlaneBuilder) Build(h hexmap.Hex) *Mesh {
	center := b.Layout.HexToPixel(h)
	corners := b.Layout.Corners(h)

	m := &Mesh{
		Positions: make([]Vec3, 0, 7),
		Normals:   make([]Vec3, 0, 7),
		UVs:       make([]Vec2, 0, 7),
		Indices:   make([]uint16, 0, 18),
	}
	up := Vec3{Y: 1}

	m.Positions = append(m.Positions, Vec3{X: float32(center.X), Z: float32(center.Y)})
	m.Normals = append(m.Normals, up)
	m.UVs = append(m.UVs, Vec2{X: 0.5, Y: 0.5})
	for _, c := range corners {
		m.Positions = append(m.Positions, Vec3{X: float32(c.X), Z: float32(c.Y)})
		m.Normals = append(m.Normals, up)
		m.UVs = append(m.UVs, Vec2{
			X: 0.5 + float32(c.X-center.X)/(2*float32(b.Layout.HexSize.X)),
			Y: 0.5 + float32(c.Y-center.Y)/(2*float32(b.Layout.HexSize.Y)),
		})
	}
	for i := 0; i < 6; i++ {
		m.Indices = append(m.Indices, 0, uint16(i+1), uint16((i+1)%6+1))
	}
	return m
}
