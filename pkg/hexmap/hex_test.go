// pkg/hexmap/hex_test.go
package hexmap

import (
	"testing"
)

func TestNeighborCoords(t *testing.T) {
	expected := []Hex{
		{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
	}
	neighbors := HexZero.AllNeighbors()
	for i, want := range expected {
		if neighbors[i] != want {
			t.Errorf("Expected neighbor %d to be %v, got %v", i, want, neighbors[i])
		}
	}
	for i, want := range expected {
		if got := HexZero.Neighbor(EdgeDirection(i)); got != want {
			t.Errorf("Expected Neighbor(%d) to be %v, got %v", i, want, got)
		}
	}
}

func TestDiagonalCoords(t *testing.T) {
	expected := []Hex{
		{2, -1}, {1, 1}, {-1, 2}, {-2, 1}, {-1, -1}, {1, -2},
	}
	diagonals := HexZero.AllDiagonals()
	for i, want := range expected {
		if diagonals[i] != want {
			t.Errorf("Expected diagonal %d to be %v, got %v", i, want, diagonals[i])
		}
		if got := want.Length(); got != 2 {
			t.Errorf("Expected diagonal %d length to be 2, got %d", i, got)
		}
	}
}

func TestFromCubic(t *testing.T) {
	h, err := FromCubic(2, -1, -1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h != (Hex{2, -1}) {
		t.Errorf("Expected (2, -1), got %v", h)
	}
	if _, err := FromCubic(1, 1, 1); err == nil {
		t.Error("Expected error for invalid cubic coordinates, got nil")
	}
}

func TestArithmetic(t *testing.T) {
	a := Hex{2, -3}
	b := Hex{-1, 5}
	if got := a.Add(b); got != (Hex{1, 2}) {
		t.Errorf("Expected Add to be (1, 2), got %v", got)
	}
	if got := a.Subtract(b); got != (Hex{3, -8}) {
		t.Errorf("Expected Subtract to be (3, -8), got %v", got)
	}
	if got := a.Neg(); got != (Hex{-2, 3}) {
		t.Errorf("Expected Neg to be (-2, 3), got %v", got)
	}
	if got := a.MulScalar(3); got != (Hex{6, -9}) {
		t.Errorf("Expected MulScalar to be (6, -9), got %v", got)
	}
	if got := a.Mul(b); got != (Hex{-2, -15}) {
		t.Errorf("Expected Mul to be (-2, -15), got %v", got)
	}
	if got := a.Abs(); got != (Hex{2, 3}) {
		t.Errorf("Expected Abs to be (2, 3), got %v", got)
	}
	if got := a.Signum(); got != (Hex{1, -1}) {
		t.Errorf("Expected Signum to be (1, -1), got %v", got)
	}
	if got := a.Min(b); got != (Hex{-1, -3}) {
		t.Errorf("Expected Min to be (-1, -3), got %v", got)
	}
	if got := a.Max(b); got != (Hex{2, 5}) {
		t.Errorf("Expected Max to be (2, 5), got %v", got)
	}
	if got := a.Dot(b); got != -17 {
		t.Errorf("Expected Dot to be -17, got %d", got)
	}
}

func TestDivisionInvariant(t *testing.T) {
	values := []Hex{
		{12, 4}, {-7, 3}, {5, -11}, {0, 0}, {1, 1}, {-30, 17},
	}
	divisors := []int32{1, 2, 3, -4, 7}
	for _, p := range values {
		for _, d := range divisors {
			div := p.DivScalar(d)
			rem := p.RemScalar(d)
			if got := div.MulScalar(d).Add(rem); got != p {
				t.Errorf("Expected div*%d+rem to be %v, got %v (div %v rem %v)", d, p, got, div, rem)
			}
		}
	}
}

func TestLengthAndDistance(t *testing.T) {
	tests := []struct {
		name string
		hex  Hex
		want uint32
	}{
		{"origin", Hex{0, 0}, 0},
		{"unit", Hex{1, 0}, 1},
		{"diagonal", Hex{1, 1}, 2},
		{"axis", Hex{0, -4}, 4},
		{"mixed", Hex{2, -3}, 3},
		{"far", Hex{-5, -5}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hex.Length(); got != tt.want {
				t.Errorf("Expected length to be %d, got %d", tt.want, got)
			}
			if got := HexZero.Distance(tt.hex); got != tt.want {
				t.Errorf("Expected distance to be %d, got %d", tt.want, got)
			}
			offset := Hex{7, -2}
			if got := offset.Distance(tt.hex.Add(offset)); got != tt.want {
				t.Errorf("Expected translated distance to be %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		q, r float64
		want Hex
	}{
		{"exact", 3, -2, Hex{3, -2}},
		{"near", 2.9, -1.8, Hex{3, -2}},
		{"half q", 0.5, 0, Hex{0, 0}},
		{"negative half q", -0.5, 0, Hex{0, 0}},
		{"half both", 1.5, 1.5, Hex{1, 2}},
		{"small error", 1.7, 2.2, Hex{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.q, tt.r); got != tt.want {
				t.Errorf("Expected Round(%v, %v) to be %v, got %v", tt.q, tt.r, tt.want, got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := Hex{0, 0}
	b := Hex{5, 0}
	tests := []struct {
		t    float64
		want Hex
	}{
		{0, Hex{0, 0}},
		{0.1, Hex{0, 0}},
		{0.3, Hex{1, 0}},
		{0.5, Hex{2, 0}},
		{0.9, Hex{4, 0}},
		{1, Hex{5, 0}},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); got != tt.want {
			t.Errorf("Expected Lerp(%v) to be %v, got %v", tt.t, tt.want, got)
		}
	}
}

func TestLineTo(t *testing.T) {
	tests := []struct {
		name string
		from Hex
		to   Hex
		want []Hex
	}{
		{"degenerate", Hex{2, -1}, Hex{2, -1}, []Hex{{2, -1}}},
		{"axis", Hex{0, 0}, Hex{3, 0}, []Hex{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"diagonal", Hex{0, 0}, Hex{2, 2}, []Hex{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.LineTo(tt.to)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected line length to be %d, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Expected line[%d] to be %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLineLength(t *testing.T) {
	pairs := []struct {
		from, to Hex
	}{
		{Hex{0, 0}, Hex{5, -3}},
		{Hex{-2, 4}, Hex{3, 3}},
		{Hex{1, 1}, Hex{1, 1}},
	}
	for _, p := range pairs {
		line := p.from.LineTo(p.to)
		want := int(p.from.Distance(p.to)) + 1
		if len(line) != want {
			t.Errorf("Expected line length to be %d, got %d", want, len(line))
		}
		if line[0] != p.from || line[len(line)-1] != p.to {
			t.Errorf("Expected line endpoints %v..%v, got %v..%v", p.from, p.to, line[0], line[len(line)-1])
		}
	}
}

func TestRotation(t *testing.T) {
	h := Hex{5, 0}
	cw := []Hex{
		{5, 0}, {0, 5}, {-5, 5}, {-5, 0}, {0, -5}, {5, -5},
	}
	cur := h
	for i, want := range cw {
		if cur != want {
			t.Errorf("Expected rotation %d to be %v, got %v", i, want, cur)
		}
		cur = cur.Clockwise()
	}
	if cur != h {
		t.Errorf("Expected six rotations to return to %v, got %v", h, cur)
	}
	if got := h.CounterClockwise(); got != (Hex{5, -5}) {
		t.Errorf("Expected CounterClockwise to be (5, -5), got %v", got)
	}
	if got := h.Clockwise().CounterClockwise(); got != h {
		t.Errorf("Expected CW then CCW to be %v, got %v", h, got)
	}
}

func TestRotateSteps(t *testing.T) {
	h := Hex{3, -2}
	tests := []struct {
		name  string
		steps int
		want  Hex
	}{
		{"zero", 0, h},
		{"one", 1, h.Clockwise()},
		{"full turn", 6, h},
		{"wraps", 7, h.Clockwise()},
		{"negative", -1, h.CounterClockwise()},
		{"three", 3, h.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.RotateCW(tt.steps); got != tt.want {
				t.Errorf("Expected RotateCW(%d) to be %v, got %v", tt.steps, tt.want, got)
			}
		})
	}
	center := Hex{1, 1}
	if got := h.RotateCWAround(center, 2); got != h.Subtract(center).RotateCW(2).Add(center) {
		t.Errorf("Expected RotateCWAround to match manual translation, got %v", got)
	}
	if got := h.ClockwiseAround(h); got != h {
		t.Errorf("Expected rotation around itself to be %v, got %v", h, got)
	}
}

func TestReflect(t *testing.T) {
	h := Hex{2, 3}
	if got := h.ReflectQ(); got != (Hex{2, -5}) {
		t.Errorf("Expected ReflectQ to be (2, -5), got %v", got)
	}
	if got := h.ReflectR(); got != (Hex{-5, 3}) {
		t.Errorf("Expected ReflectR to be (-5, 3), got %v", got)
	}
	if got := h.ReflectS(); got != (Hex{3, 2}) {
		t.Errorf("Expected ReflectS to be (3, 2), got %v", got)
	}
	for _, h := range []Hex{{1, 0}, {-4, 7}, {0, 0}} {
		if got := h.ReflectQ().ReflectQ(); got != h {
			t.Errorf("Expected double ReflectQ to be %v, got %v", h, got)
		}
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		coords []Hex
		want   Hex
	}{
		{"empty", nil, Hex{0, 0}},
		{"single", []Hex{{3, -4}}, Hex{3, -4}},
		{"ring center", HexZero.Ring(3), Hex{0, 0}},
		{"pair", []Hex{{0, 0}, {4, 0}}, Hex{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.coords); got != tt.want {
				t.Errorf("Expected mean to be %v, got %v", tt.want, got)
			}
		})
	}
}
