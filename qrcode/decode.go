package qrcode

import "fmt"

// decodeForVerification reads a symbol back into its original payload
// bytes, independently of the grid/placeData machinery that produced it.
// It recomputes which modules are functional from first principles
// instead of reusing drawFunctionalPatterns's reservation bookkeeping, so
// that a placement or reservation bug in the encode path produces a
// decode mismatch rather than silently round-tripping against itself.
//
// Grounded on the teacher's qrcode/decoder package (BitMatrixParser's
// zig-zag read order mirrors encoder.embedDataBits, GetDataBlocks
// reverses the interleaving, DecodeBitStream parses the mode/count/
// payload header), reimplemented here against this package's own types
// rather than imported, since the teacher's decoder depends on its own
// reedsolomon.Decoder and internal.DecoderResult types this project does
// not carry.
func decodeForVerification(sym *Symbol) ([]byte, error) {
	dim := sym.Matrix.Width()
	if dim != dimension(sym.Version) {
		return nil, fmt.Errorf("qrcode: matrix dimension %d does not match version %d", dim, sym.Version)
	}

	if sym.Version >= 7 {
		got := readVersionInfoBits(sym)
		want := versionInfoTable[sym.Version]
		if got != want {
			return nil, fmt.Errorf("qrcode: version info mismatch: got %#x, want %#x", got, want)
		}
	}

	codewordBits, err := readCodewordBits(sym)
	if err != nil {
		return nil, err
	}

	data := deinterleave(codewordBits, sym.Level, sym.Version)
	return parseDataBits(data, sym.Version)
}

// readVersionInfoBits reads back the 18-bit version information block at
// the top-right of the symbol, independently of drawVersionInfo's
// coordinate bookkeeping (the formula is the same ISO-specified location,
// recomputed rather than shared).
func readVersionInfoBits(sym *Symbol) int {
	dim := sym.Matrix.Width()
	bits := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			if sym.Matrix.Get(dim-11+j, i) {
				bits |= 1 << uint(3*i+j)
			}
		}
	}
	return bits
}

// readCodewordBits walks the symbol in the same zig-zag column-pair order
// as placeData, skipping modules that independentlyReserved reports as
// functional, and undoing the chosen mask. The result is the interleaved
// codeword stream exactly as produced by interleave, packed MSB first.
func readCodewordBits(sym *Symbol) ([]byte, error) {
	dim := sym.Matrix.Width()
	reserved := independentlyReserved(sym.Version)
	predicate := maskPredicates[sym.MaskPattern]
	totalBits := totalAvailableModulesTable[sym.Version]

	bits := make([]bool, 0, totalBits)
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
				if reserved(x, row) {
					continue
				}
				bit := sym.Matrix.Get(x, row)
				if predicate(row, x) {
					bit = !bit
				}
				bits = append(bits, bit)
			}
		}
	}

	if len(bits) != totalBits {
		return nil, fmt.Errorf("qrcode: read %d data-bearing bits, want %d", len(bits), totalBits)
	}
	codewords := make([]byte, totalBits/8)
	for i, bit := range bits {
		if bit {
			codewords[i/8] |= 1 << uint(7-i%8)
		}
	}
	return codewords, nil
}

// independentlyReserved reports whether (x, y) is claimed by some
// functional pattern for version v, computed directly from the ISO
// geometry rather than by calling drawFunctionalPatterns.
func independentlyReserved(v int) func(x, y int) bool {
	dim := dimension(v)
	positions := alignmentPositions(v)
	count := len(positions)

	return func(x, y int) bool {
		if x < 8 && y < 8 {
			return true
		}
		if x >= dim-8 && y < 8 {
			return true
		}
		if x < 8 && y >= dim-8 {
			return true
		}
		if y == 6 && x >= 8 && x <= dim-9 {
			return true
		}
		if x == 6 && y >= 8 && y <= dim-9 {
			return true
		}
		for i := 0; i < count; i++ {
			for j := 0; j < count; j++ {
				if (i == 0 && j == 0) || (i == 0 && j == count-1) || (i == count-1 && j == 0) {
					continue
				}
				cy, cx := positions[i], positions[j]
				if x >= cx-2 && x <= cx+2 && y >= cy-2 && y <= cy+2 {
					return true
				}
			}
		}
		if v >= 7 {
			if x >= dim-11 && x <= dim-9 && y <= 5 {
				return true
			}
			if x <= 5 && y >= dim-11 && y <= dim-9 {
				return true
			}
		}
		if x == 8 && y <= 8 && y != 6 {
			return true
		}
		if y == 8 && x <= 8 && x != 6 {
			return true
		}
		if x == 8 && y >= dim-7 {
			return true
		}
		if y == 8 && x >= dim-8 {
			return true
		}
		if x == 8 && y == dim-8 {
			return true
		}
		return false
	}
}

// deinterleave reverses interleave's block split, recovering the
// concatenated per-block data codewords (the correction codewords are
// discarded; this project's decode path exists to verify the encoder on
// noiseless input, not to correct channel errors).
func deinterleave(codewords []byte, level Level, v int) []byte {
	nBlocks := totalBlocksTable[level][v]
	nAllCodewords := totalAvailableModulesTable[v] / 8
	corrOffset := totalDataCodewordsTable[level][v]
	nSmallBlocks := nBlocks - nAllCodewords%nBlocks
	smallBlockLen := nAllCodewords/nBlocks - corrCodewordsPerBlockTable[level][v]

	data := make([]byte, corrOffset)
	blockStart := 0
	for i := 0; i < nBlocks; i++ {
		blockLen := smallBlockLen
		if i >= nSmallBlocks {
			blockLen++
		}
		for j := 0; j < blockLen; j++ {
			idx := i + nBlocks*j
			if j == smallBlockLen {
				idx -= nSmallBlocks
			}
			data[blockStart+j] = codewords[idx]
		}
		blockStart += blockLen
	}
	return data
}

// parseDataBits reads the mode indicator, character count, and payload
// bytes back out of the data codewords, mirroring fill_data in reverse.
func parseDataBits(data []byte, v int) ([]byte, error) {
	r := bitReader{data: data}
	mode := r.read(4)
	if mode != modeByte {
		return nil, fmt.Errorf("qrcode: mode indicator %#x, want byte mode %#x", mode, modeByte)
	}
	countBits := 8
	if v >= 10 {
		countBits = 16
	}
	n := int(r.read(countBits))
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(r.read(8))
	}
	return payload, nil
}

// bitReader reads an MSB-first bit stream back out of a byte slice, the
// mirror image of bitutil.BitStreamWriter.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		bitOfByte := 7 - r.pos%8
		r.pos++
		v <<= 1
		if byteIdx < len(r.data) && r.data[byteIdx]&(1<<uint(bitOfByte)) != 0 {
			v |= 1
		}
	}
	return v
}
