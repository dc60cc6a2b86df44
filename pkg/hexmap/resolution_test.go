// pkg/hexmap/resolution_test.go
package hexmap

import (
	"testing"
)

func TestResolutionVectors(t *testing.T) {
	tests := []struct {
		name   string
		hex    Hex
		radius uint32
		lower  Hex
	}{
		{"origin", Hex{0, 0}, 1, Hex{0, 0}},
		{"inside radius 1", Hex{1, 0}, 1, Hex{0, 0}},
		{"next cell", Hex{2, 0}, 1, Hex{1, 0}},
		{"radius 0 identity", Hex{4, -7}, 0, Hex{4, -7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hex.ToLowerRes(tt.radius); got != tt.lower {
				t.Errorf("Expected lower res to be %v, got %v", tt.lower, got)
			}
		})
	}
	if got := (Hex{1, 0}).ToHigherRes(1); got != (Hex{3, -1}) {
		t.Errorf("Expected higher res of (1, 0) to be (3, -1), got %v", got)
	}
}

func TestResolutionRoundTrip(t *testing.T) {
	// Every hex must land in the meta hexagon whose expanded center is
	// within the resolution radius, and locals must stay in range.
	for radius := uint32(0); radius <= 3; radius++ {
		for _, h := range HexZero.Range(8) {
			lower := h.ToLowerRes(radius)
			center := lower.ToHigherRes(radius)
			if got := center.Distance(h); got > radius {
				t.Fatalf("Expected %v (radius %d) to be within its meta hexagon centered %v, distance %d",
					h, radius, center, got)
			}
			local := h.ToLocal(radius)
			if got := local.Length(); got > radius {
				t.Errorf("Expected local %v of %v to have length <= %d, got %d", local, h, radius, got)
			}
			if center.Add(local) != h {
				t.Errorf("Expected center %v plus local %v to be %v", center, local, h)
			}
		}
	}
}

func TestToHigherResDisjoint(t *testing.T) {
	// Expanded meta hexagons tile the plane: each base hex has exactly
	// one meta hexagon containing it.
	radius := uint32(2)
	owners := make(map[Hex]Hex)
	for _, meta := range HexZero.Range(2) {
		center := meta.ToHigherRes(radius)
		for _, local := range HexZero.Range(radius) {
			h := center.Add(local)
			if prev, ok := owners[h]; ok {
				t.Fatalf("Expected %v to belong to one meta hexagon, got %v and %v", h, prev, meta)
			}
			owners[h] = meta
		}
	}
	for h, meta := range owners {
		if got := h.ToLowerRes(radius); got != meta {
			t.Errorf("Expected ToLowerRes of %v to be %v, got %v", h, meta, got)
		}
	}
}

func TestWrapInRange(t *testing.T) {
	// Wrapping keeps in-range hexes put.
	for _, h := range HexZero.Range(3) {
		if got := h.WrapInRange(3); got != h {
			t.Errorf("Expected %v to wrap to itself, got %v", h, got)
		}
	}
	// Wrapped coordinates always satisfy the range bound.
	for _, h := range HexZero.Ring(7) {
		if got := h.WrapInRange(2).Length(); got > 2 {
			t.Errorf("Expected wrap of %v to be within 2, got length %d", h, got)
		}
	}
}
