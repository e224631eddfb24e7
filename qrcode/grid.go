package qrcode

import "github.com/mazzegi/qrgen/bitutil"

// grid is the mutable working surface a symbol is painted onto before
// being frozen into the caller-visible bitutil.BitMatrix. It keeps two
// parallel matrices rather than one sentinel-valued matrix: data holds
// the actual module color, reserved marks every cell already claimed
// by a functional pattern (or, later, format information) so the
// zig-zag placement pass knows which cells remain free for codeword
// bits. The two stay semantically distinct at no extra space cost,
// since bitutil.BitMatrix is already bit-packed.
type grid struct {
	dim      int
	data     *bitutil.BitMatrix
	reserved *bitutil.BitMatrix
}

func newGrid(dim int) *grid {
	return &grid{
		dim:      dim,
		data:     bitutil.NewBitMatrix(dim),
		reserved: bitutil.NewBitMatrix(dim),
	}
}

// isReserved reports whether (x, y) has already been claimed by a
// functional pattern or format/version information.
func (g *grid) isReserved(x, y int) bool {
	return g.reserved.Get(x, y)
}

// setFunctional paints a functional module and marks it reserved so
// later placement passes skip over it.
func (g *grid) setFunctional(x, y int, dark bool) {
	g.setModule(x, y, dark)
	g.reserved.Set(x, y)
}

// reserve marks (x, y) as claimed without touching its color, for
// cells (format information) whose value is decided later but whose
// space must be excluded from data placement now.
func (g *grid) reserve(x, y int) {
	g.reserved.Set(x, y)
}

// setModule sets a module's color without affecting its reserved
// state, for data placement and for filling in previously reserved
// format information cells once the mask is known.
func (g *grid) setModule(x, y int, dark bool) {
	if dark {
		g.data.Set(x, y)
	} else {
		g.data.Clear(x, y)
	}
}

func (g *grid) dark(x, y int) bool {
	return g.data.Get(x, y)
}

func (g *grid) clone() *grid {
	return &grid{
		dim:      g.dim,
		data:     g.data.Clone(),
		reserved: g.reserved.Clone(),
	}
}
