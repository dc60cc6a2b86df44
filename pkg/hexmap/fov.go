// pkg/hexmap/fov.go
package hexmap

// RangeFOV computes the field of view from origin out to the given
// radius. A target is visible when no hex strictly between origin and
// target blocks; blockers themselves stay visible. The result is in
// Range enumeration order, origin first in its row.
func RangeFOV(origin Hex, radius uint32, blocking func(Hex) bool) []Hex {
	return lineOfSight(origin, origin.Range(radius), blocking)
}

// DirectionalFOV computes the field of view restricted to the 120
// degree cone facing the edge direction.
func DirectionalFOV(origin Hex, radius uint32, dir EdgeDirection, blocking func(Hex) bool) []Hex {
	return lineOfSight(origin, origin.CornerWedge(radius, dir), blocking)
}

func lineOfSight(origin Hex, targets []Hex, blocking func(Hex) bool) []Hex {
	out := make([]Hex, 0, len(targets))
	for _, target := range targets {
		if visible(origin, target, blocking) {
			out = append(out, target)
		}
	}
	return out
}

// visible walks the line from origin to target, testing only the hexes
// strictly between the endpoints.
func visible(origin, target Hex, blocking func(Hex) bool) bool {
	line := origin.LineTo(target)
	for _, h := range line[1:] {
		if h == target {
			break
		}
		if blocking(h) {
			return false
		}
	}
	return true
}
