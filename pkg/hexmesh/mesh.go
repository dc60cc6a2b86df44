// pkg/hexmesh/mesh.go
package hexmesh

// Vec3 is a position or normal in 3D space, y up.
type Vec3 struct {
	X, Y, Z float32
}

// Vec2 is a texture coordinate.
type Vec2 struct {
	X, Y float32
}

// Mesh holds indexed triangle buffers. Every three indices form one
// triangle with counter clockwise winding seen from outside.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	UVs       []Vec2
	Indices   []uint16
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Merge appends the buffers of other, shifting its indices past the
// existing vertices.
func (m *Mesh) Merge(other *Mesh) {
	base := uint16(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Triangle returns the three corner positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c Vec3) {
	a = m.Positions[m.Indices[3*i]]
	b = m.Positions[m.Indices[3*i+1]]
	c = m.Positions[m.Indices[3*i+2]]
	return
}
