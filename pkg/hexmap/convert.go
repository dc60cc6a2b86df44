// pkg/hexmap/convert.go
package hexmap

// OffsetMode selects which rows or columns are shifted when converting
// between axial and offset coordinates.
type OffsetMode uint8

const (
	OffsetEvenColumns OffsetMode = iota
	OffsetOddColumns
	OffsetEvenRows
	OffsetOddRows
)

// ToOffset converts to offset coordinates in the given mode.
func (h Hex) ToOffset(mode OffsetMode) (col, row int32) {
	switch mode {
	case OffsetEvenColumns:
		return h.Q, h.R + (h.Q+(h.Q&1))/2
	case OffsetOddColumns:
		return h.Q, h.R + (h.Q-(h.Q&1))/2
	case OffsetEvenRows:
		return h.Q + (h.R+(h.R&1))/2, h.R
	default:
		return h.Q + (h.R-(h.R&1))/2, h.R
	}
}

// FromOffset converts offset coordinates in the given mode to a hex.
func FromOffset(mode OffsetMode, col, row int32) Hex {
	switch mode {
	case OffsetEvenColumns:
		return Hex{Q: col, R: row - (col+(col&1))/2}
	case OffsetOddColumns:
		return Hex{Q: col, R: row - (col-(col&1))/2}
	case OffsetEvenRows:
		return Hex{Q: col - (row+(row&1))/2, R: row}
	default:
		return Hex{Q: col - (row-(row&1))/2, R: row}
	}
}

// ToDoubledWidth converts to doubled coordinates where columns count
// half steps.
func (h Hex) ToDoubledWidth() (col, row int32) {
	return 2*h.Q + h.R, h.R
}

func FromDoubledWidth(col, row int32) Hex {
	return Hex{Q: (col - row) / 2, R: row}
}

// ToDoubledHeight converts to doubled coordinates where rows count half
// steps.
func (h Hex) ToDoubledHeight() (col, row int32) {
	return h.Q, 2*h.R + h.Q
}

func FromDoubledHeight(col, row int32) Hex {
	return Hex{Q: col, R: (row - col) / 2}
}

// ToHexmod maps a hex inside a hexagon of the given radius to its dense
// hexmod index. Inverse of FromHexmod.
func (h Hex) ToHexmod(radius uint32) uint32 {
	r := int64(radius)
	shift := 3*r + 2
	area := 3*r*r + 3*r + 1
	return uint32(remEuclid(int64(h.R)+shift*int64(h.Q), area))
}

// FromHexmod maps a dense hexmod index back to the hex inside a hexagon
// of the given radius.
func FromHexmod(coord uint32, radius uint32) Hex {
	r := int64(radius)
	shift := 3*r + 2
	c := int64(coord)
	ms := (c + r) / shift
	mcs := (c + 2*r) / (shift - 1)
	return Hex{
		Q: int32(ms*(r+1) - mcs*r),
		R: int32(c - ms*(2*r+1) - mcs*(r+1)),
	}
}

// AsUint64 packs the coordinate into a single value, Q in the high 32
// bits and R in the low 32.
func (h Hex) AsUint64() uint64 {
	return uint64(uint32(h.Q))<<32 | uint64(uint32(h.R))
}

// FromUint64 unpacks a coordinate packed with AsUint64.
func FromUint64(v uint64) Hex {
	return Hex{Q: int32(uint32(v >> 32)), R: int32(uint32(v))}
}
