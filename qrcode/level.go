// Package qrcode implements the ISO/IEC 18004 symbol construction
// pipeline: version selection, data bitstream assembly, Reed-Solomon
// block interleaving, functional-pattern placement, zig-zag data
// placement, mask scoring, and format/version metadata encoding.
//
// Grounded on github.com/ericlevine/zxinggo/qrcode/{decoder,encoder} for
// package shape and naming, and on the alfazet/quer original_source C
// program for the exact lookup tables and bit-level algorithms.
package qrcode

// Level is one of the four QR error-correction strengths.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

// String returns the single-letter level name.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

// bits returns the 2-bit format-information code for this level, per
// ISO/IEC 18004 Table 25 (L=01, M=00, Q=11, H=10).
func (l Level) bits() int {
	switch l {
	case LevelL:
		return 0b01
	case LevelM:
		return 0b00
	case LevelQ:
		return 0b11
	case LevelH:
		return 0b10
	default:
		return 0
	}
}
