// pkg/hexstore/hexagonal.go
package hexstore

import (
	"go-hexgrid/pkg/hexmap"
)

// HexagonalMap is dense storage for values keyed by the hexes of a
// hexagonal region. Lookups are slice indexing instead of hashing,
// which beats a map[Hex]T for full regions.
type HexagonalMap[T any] struct {
	bounds hexmap.Bounds
	offset hexmap.Hex
	inner  [][]T
}

// NewHexagonalMap builds storage for the region and fills every hex
// from init.
func NewHexagonalMap[T any](center hexmap.Hex, radius uint32, init func(hexmap.Hex) T) *HexagonalMap[T] {
	r := int32(radius)
	inner := make([][]T, 0, 2*r+1)
	for q := -r; q <= r; q++ {
		row := make([]T, 0, 2*r+1-abs32(q))
		for rr := max(-r, -q-r); rr <= min(r, r-q); rr++ {
			row = append(row, init(hexmap.Hex{Q: center.Q + q, R: center.R + rr}))
		}
		inner = append(inner, row)
	}
	return &HexagonalMap[T]{
		bounds: hexmap.NewBounds(center, radius),
		offset: hexmap.Splat(r).Subtract(center),
		inner:  inner,
	}
}

func abs32(q int32) int32 {
	if q < 0 {
		return -q
	}
	return q
}

// index maps a hex to its row and column. Valid only for hexes inside
// the bounds.
func (m *HexagonalMap[T]) index(h hexmap.Hex) (row, col int32) {
	key := h.Add(m.offset)
	r := int32(m.bounds.Radius)
	row = key.Q
	col = key.R - max(r-key.Q, 0)
	return
}

// Get returns the value at h, and false when h is out of bounds.
func (m *HexagonalMap[T]) Get(h hexmap.Hex) (T, bool) {
	if !m.bounds.IsInBounds(h) {
		var zero T
		return zero, false
	}
	row, col := m.index(h)
	return m.inner[row][col], true
}

// Set stores a value at h. Returns false when h is out of bounds.
func (m *HexagonalMap[T]) Set(h hexmap.Hex, v T) bool {
	if !m.bounds.IsInBounds(h) {
		return false
	}
	row, col := m.index(h)
	m.inner[row][col] = v
	return true
}

// Bounds returns the stored region.
func (m *HexagonalMap[T]) Bounds() hexmap.Bounds {
	return m.bounds
}

// Len returns the number of stored hexes.
func (m *HexagonalMap[T]) Len() int {
	return m.bounds.Count()
}

// Each visits every stored hex and value, in Range enumeration order.
func (m *HexagonalMap[T]) Each(fn func(hexmap.Hex, T)) {
	for _, h := range m.bounds.All() {
		row, col := m.index(h)
		fn(h, m.inner[row][col])
	}
}
