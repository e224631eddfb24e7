package qrcode

import "github.com/mazzegi/qrgen/bitutil"

// Symbol is a fully constructed QR code: the chosen version, level and
// mask pattern, and the finished module matrix.
type Symbol struct {
	Version     int
	Level       Level
	MaskPattern int
	Matrix      *bitutil.BitMatrix
}

// Encode builds a byte-mode QR symbol for payload at the requested
// error-correction level, selecting the smallest version that fits,
// the optimal mask pattern, and returning the finished module matrix.
func Encode(payload []byte, level Level) (*Symbol, error) {
	v, err := chooseVersion(len(payload), level)
	if err != nil {
		return nil, err
	}

	data := dataBits(payload, level, v)
	codewords := interleave(data, level, v)
	dim := dimension(v)

	base := newGrid(dim)
	drawFunctionalPatterns(base, v)

	bestPattern := -1
	bestPenalty := -1
	var bestGrid *grid
	for m := 0; m < numMaskPatterns; m++ {
		candidate := base.clone()
		placeData(candidate, codewords, m)
		embedFormatInfo(candidate, level, m)
		penalty := maskPenalty(candidate)
		if bestPattern == -1 || penalty < bestPenalty {
			bestPattern = m
			bestPenalty = penalty
			bestGrid = candidate
		}
	}

	return &Symbol{
		Version:     v,
		Level:       level,
		MaskPattern: bestPattern,
		Matrix:      bestGrid.data,
	}, nil
}
