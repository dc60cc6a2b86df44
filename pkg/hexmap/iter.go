// pkg/hexmap/iter.go
package hexmap

// Mean returns the coordinate closest to the average of the given
// hexes. Returns the origin for an empty slice.
func Mean(coords []Hex) Hex {
	if len(coords) == 0 {
		return HexZero
	}
	var q, r int64
	for _, c := range coords {
		q += int64(c.Q)
		r += int64(c.R)
	}
	n := float64(len(coords))
	return Round(float64(q)/n, float64(r)/n)
}
