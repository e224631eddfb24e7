// Package bitutil provides the bit-level primitives the QR symbol encoder
// is built from: a square bit matrix for modules and functional-pattern
// reservation, and an MSB-first bit stream writer for codeword assembly.
package bitutil

// BitMatrix is a square grid of single-bit cells. x is the column, y is the
// row; the origin is the top-left corner. A symbol is built from two
// BitMatrix instances of the same dimension: one holds module values, the
// other marks cells already claimed by a functional pattern so that data
// placement and masking never touch them.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a square BitMatrix with the given side length,
// initialized to all zero (light) cells.
func NewBitMatrix(dimension int) *BitMatrix {
	if dimension < 1 {
		panic("bitutil: dimension must be at least 1")
	}
	rowSize := (dimension + 31) / 32
	return &BitMatrix{
		width:   dimension,
		height:  dimension,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*dimension),
	}
}

// Width returns the side length.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the side length.
func (bm *BitMatrix) Height() int { return bm.height }

func (bm *BitMatrix) checkBounds(x, y int) {
	if x < 0 || x >= bm.width || y < 0 || y >= bm.height {
		panic("bitutil: coordinate out of range")
	}
}

// Get returns true if the cell at (x, y) is set (dark).
func (bm *BitMatrix) Get(x, y int) bool {
	bm.checkBounds(x, y)
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set marks the cell at (x, y) dark.
func (bm *BitMatrix) Set(x, y int) {
	bm.checkBounds(x, y)
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Clear marks the cell at (x, y) light.
func (bm *BitMatrix) Clear(x, y int) {
	bm.checkBounds(x, y)
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Toggle inverts the cell at (x, y).
func (bm *BitMatrix) Toggle(x, y int) {
	bm.checkBounds(x, y)
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// ClearAll resets every cell to light.
func (bm *BitMatrix) ClearAll() {
	for i := range bm.data {
		bm.data[i] = 0
	}
}

// SetRegion marks every cell in the rectangle [left, left+width) x
// [top, top+height) dark. Used by render.Scale to replicate one module
// into a block of pixels.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if left < 0 || top < 0 || width < 1 || height < 1 {
		panic("bitutil: invalid region")
	}
	right := left + width
	bottom := top + height
	if right > bm.width || bottom > bm.height {
		panic("bitutil: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// Clone returns an independent copy of the matrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	c := &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize}
	c.data = make([]uint32, len(bm.data))
	copy(c.data, bm.data)
	return c
}

// Count returns the number of dark cells in the matrix.
func (bm *BitMatrix) Count() int {
	count := 0
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				count++
			}
		}
	}
	return count
}

// String renders the matrix as a grid of '#' (dark) and ' ' (light), two
// characters per module so it reads roughly square in a terminal.
func (bm *BitMatrix) String() string {
	buf := make([]byte, 0, bm.height*(2*bm.width+1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				buf = append(buf, '#', '#')
			} else {
				buf = append(buf, ' ', ' ')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
