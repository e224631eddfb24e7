package qrcode

import "github.com/mazzegi/qrgen/reedsolomon"

// interleave splits data (already padded to full capacity) into
// Reed-Solomon blocks, computes each block's correction codewords, and
// returns the final interleaved codeword sequence ready for placement.
//
// Grounded on add_error_correction_and_interleave in main.c: blocks
// are laid out as n_small_blocks of small_block_len data bytes
// followed by the remaining blocks of small_block_len+1, and both data
// and correction codewords are interleaved column-major across blocks.
func interleave(data []byte, level Level, v int) []byte {
	nBlocks := totalBlocksTable[level][v]
	nCorrPerBlock := corrCodewordsPerBlockTable[level][v]
	nAllCodewords := totalAvailableModulesTable[v] / 8
	corrOffset := totalDataCodewordsTable[level][v]

	nSmallBlocks := nBlocks - nAllCodewords%nBlocks
	smallBlockLen := nAllCodewords/nBlocks - nCorrPerBlock

	gen := reedsolomon.GeneratorPolynomial(nCorrPerBlock)
	res := make([]byte, nAllCodewords)

	blockStart := 0
	for i := 0; i < nBlocks; i++ {
		blockLen := smallBlockLen
		if i >= nSmallBlocks {
			blockLen++
		}
		corr := reedsolomon.CorrectionCodewords(gen, data, blockStart, blockLen, nCorrPerBlock)
		for j := 0; j < blockLen; j++ {
			idx := i + nBlocks*j
			if j == smallBlockLen {
				// Only long blocks reach this column; their last bytes
				// are packed together right after the full columns.
				idx -= nSmallBlocks
			}
			res[idx] = data[blockStart+j]
		}
		for j := 0; j < nCorrPerBlock; j++ {
			res[corrOffset+i+nBlocks*j] = corr[j]
		}
		blockStart += blockLen
	}
	return res
}
