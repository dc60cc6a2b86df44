// pkg/hexstore/rhombus.go
package hexstore

import (
	"go-hexgrid/pkg/hexmap"
)

// RhombusMap is dense storage for values keyed by the hexes of an axial
// parallelogram: cols columns along Q and rows rows along R, anchored
// at origin.
type RhombusMap[T any] struct {
	origin     hexmap.Hex
	cols, rows uint32
	inner      []T
}

// NewRhombusMap builds storage for the region and fills every hex from
// init.
func NewRhombusMap[T any](origin hexmap.Hex, cols, rows uint32, init func(hexmap.Hex) T) *RhombusMap[T] {
	inner := make([]T, 0, cols*rows)
	for r := uint32(0); r < rows; r++ {
		for q := uint32(0); q < cols; q++ {
			inner = append(inner, init(origin.Add(hexmap.Hex{Q: int32(q), R: int32(r)})))
		}
	}
	return &RhombusMap[T]{origin: origin, cols: cols, rows: rows, inner: inner}
}

func (m *RhombusMap[T]) index(h hexmap.Hex) (int, bool) {
	local := h.Subtract(m.origin)
	if local.Q < 0 || local.R < 0 || local.Q >= int32(m.cols) || local.R >= int32(m.rows) {
		return 0, false
	}
	return int(local.R)*int(m.cols) + int(local.Q), true
}

// Get returns the value at h, and false when h is out of bounds.
func (m *RhombusMap[T]) Get(h hexmap.Hex) (T, bool) {
	i, ok := m.index(h)
	if !ok {
		var zero T
		return zero, false
	}
	return m.inner[i], true
}

// Set stores a value at h. Returns false when h is out of bounds.
func (m *RhombusMap[T]) Set(h hexmap.Hex, v T) bool {
	i, ok := m.index(h)
	if !ok {
		return false
	}
	m.inner[i] = v
	return true
}

// Len returns the number of stored hexes.
func (m *RhombusMap[T]) Len() int {
	return len(m.inner)
}

// Each visits every stored hex and value, row by row.
func (m *RhombusMap[T]) Each(fn func(hexmap.Hex, T)) {
	i := 0
	for r := uint32(0); r < m.rows; r++ {
		for q := uint32(0); q < m.cols; q++ {
			fn(m.origin.Add(hexmap.Hex{Q: int32(q), R: int32(r)}), m.inner[i])
			i++
		}
	}
}
