package qrcode

// placeData walks the symbol in the standard zig-zag column-pair
// pattern, writing each bit of codewords (MSB first) into every
// unreserved cell and inverting it according to the chosen mask
// predicate.
//
// Grounded on embedDataBits in the teacher's qrcode/encoder/encoder.go.
func placeData(g *grid, codewords []byte, maskPattern int) {
	predicate := maskPredicates[maskPattern]
	dim := g.dim
	bitIndex := 0
	totalBits := len(codewords) * 8

	nextBit := func() bool {
		if bitIndex >= totalBits {
			bitIndex++
			return false
		}
		byteIdx := bitIndex / 8
		bitOfByte := 7 - bitIndex%8
		bitIndex++
		return codewords[byteIdx]&(1<<uint(bitOfByte)) != 0
	}

	for col := dim - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		upward := ((dim - 1 - col) / 2 % 2) == 0
		for count := 0; count < dim; count++ {
			row := count
			if upward {
				row = dim - 1 - count
			}
			for c := 0; c < 2; c++ {
				x := col - c
				if g.isReserved(x, row) {
					continue
				}
				bit := nextBit()
				if predicate(row, x) {
					bit = !bit
				}
				g.setModule(x, row, bit)
			}
		}
	}
}
