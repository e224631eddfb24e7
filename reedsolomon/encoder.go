package reedsolomon

// GeneratorPolynomial constructs g(x) = prod_{i=0..deg-1} (x - alpha^i) over
// GF(256) by iterative multiplication, returning its deg+1 coefficients
// ordered from the leading term (index 0, always 1) to the constant term
// (index deg).
//
// The polynomial is built up in the opposite coefficient order and
// reversed at the end; skipping that reversal silently inverts the
// polynomial while still looking plausible, so it is not an optional step.
func GeneratorPolynomial(deg int) []int {
	gf := QRField()
	poly := make([]int, deg+1)
	poly[0] = 1
	temp := make([]int, deg+1)
	for i := 0; i < deg; i++ {
		for j := range temp {
			temp[j] = 0
		}
		for j := 1; j <= i+1; j++ {
			temp[j] = poly[j-1]
		}
		for j := 0; j <= i+1; j++ {
			if poly[j] != 0 {
				poly[j] = gf.antilog[(gf.log[poly[j]]+i)%255]
			}
			poly[j] ^= temp[j]
		}
	}
	for i, j := 0, deg; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
	return poly
}

// CorrectionCodewords computes the nCorr Reed-Solomon correction codewords
// for the blockLen message bytes msg[blockStart:blockStart+blockLen],
// using generator polynomial gen (as returned by GeneratorPolynomial(nCorr)).
//
// It performs the remainder of M(x)*x^nCorr divided by g(x) in GF(256) via
// synthetic division, mirroring compute_corr_codewords in reed_solomon.c.
func CorrectionCodewords(gen []int, msg []byte, blockStart, blockLen, nCorr int) []byte {
	gf := QRField()
	degree := blockLen
	if nCorr+1 > degree {
		degree = nCorr + 1
	}
	res := make([]int, degree)
	for i := 0; i < blockLen; i++ {
		res[i] = int(msg[blockStart+i])
	}
	for i := 0; i < blockLen; i++ {
		if res[0] != 0 {
			c := gf.log[res[0]]
			for j := 0; j <= nCorr; j++ {
				if gen[j] != 0 {
					res[j] ^= gf.antilog[(gf.log[gen[j]]+c)%255]
				}
			}
		}
		copy(res, res[1:])
		if i >= degree-nCorr-1 {
			res[nCorr] = 0
		}
	}
	out := make([]byte, nCorr)
	for i := 0; i < nCorr; i++ {
		out[i] = byte(res[i])
	}
	return out
}
