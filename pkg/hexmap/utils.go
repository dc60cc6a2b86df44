// pkg/hexmap/utils.go
package hexmap

// Вспомогательные функции
func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign32(x int32) int32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// normSteps reduces a rotation step count to [0, 6).
func normSteps(steps int) int {
	return ((steps % 6) + 6) % 6
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// remEuclid returns the non-negative remainder of a modulo b. b must be
// positive.
func remEuclid(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059
