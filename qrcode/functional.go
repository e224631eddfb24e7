package qrcode

// positionDetectionPattern is the 7x7 finder pattern bitmap, grounded
// on draw_finder_pattern in main.c: a solid 7x7 square, a 5x5 light
// ring cut from it, and a solid 3x3 core.
var positionDetectionPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// positionAdjustmentPattern is the 5x5 alignment pattern bitmap.
var positionAdjustmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

// drawFunctionalPatterns paints every module whose position is fixed by
// version alone: the three finder patterns and their separators, the
// timing patterns, the alignment patterns, and (for version >= 7) the
// version information pattern. Format information cells are reserved
// but left at their default color; embedFormatInfo fills them in once
// a mask has been chosen.
func drawFunctionalPatterns(g *grid, v int) {
	dim := g.dim

	drawFinderPattern(g, 0, 0)
	drawFinderPattern(g, dim-7, 0)
	drawFinderPattern(g, 0, dim-7)

	drawHorizontalSeparator(g, 0, 7)
	drawHorizontalSeparator(g, dim-8, 7)
	drawHorizontalSeparator(g, 0, dim-8)
	drawVerticalSeparator(g, 7, 0)
	drawVerticalSeparator(g, dim-8, 0)
	drawVerticalSeparator(g, 7, dim-7)

	drawTimingPatterns(g)

	if v >= 2 {
		drawAlignmentPatterns(g, v)
	}

	if v >= 7 {
		drawVersionInfo(g, v)
	}

	reserveFormatInfo(g)

	// Dark module, fixed at (8, dim-8) for every version.
	g.setFunctional(8, dim-8, true)
}

func drawFinderPattern(g *grid, sx, sy int) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			g.setFunctional(sx+x, sy+y, positionDetectionPattern[y][x])
		}
	}
}

func drawHorizontalSeparator(g *grid, sx, sy int) {
	for x := 0; x < 8; x++ {
		if sx+x < g.dim {
			g.setFunctional(sx+x, sy, false)
		}
	}
}

func drawVerticalSeparator(g *grid, sx, sy int) {
	for y := 0; y < 7; y++ {
		if sy+y < g.dim {
			g.setFunctional(sx, sy+y, false)
		}
	}
}

// drawTimingPatterns paints the alternating row/column of modules
// running between the finder patterns at row/column 6, skipping any
// cell already claimed by a finder pattern or its separator.
func drawTimingPatterns(g *grid) {
	for i := 8; i < g.dim-8; i++ {
		dark := i%2 == 0
		if !g.isReserved(i, 6) {
			g.setFunctional(i, 6, dark)
		}
		if !g.isReserved(6, i) {
			g.setFunctional(6, i, dark)
		}
	}
}

// drawAlignmentPatterns places a 5x5 alignment pattern centered on
// every (row, col) pair from alignmentPositions, skipping the three
// corners that would overlap a finder pattern.
func drawAlignmentPatterns(g *grid, v int) {
	positions := alignmentPositions(v)
	count := len(positions)
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if (i == 0 && j == 0) || (i == 0 && j == count-1) || (i == count-1 && j == 0) {
				continue
			}
			cy, cx := positions[i], positions[j]
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					g.setFunctional(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

// drawVersionInfo paints the two 6x3 version information blocks
// (bottom-left and top-right of the two remaining finder patterns)
// from the precomputed versionInfoTable.
func drawVersionInfo(g *grid, v int) {
	bits := versionInfoTable[v]
	dim := g.dim
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			b := 3*i + j
			dark := bits&(1<<uint(b)) != 0
			g.setFunctional(dim-11+j, i, dark)
			g.setFunctional(i, dim-11+j, dark)
		}
	}
}

// reserveFormatInfo claims the two format information strips so the
// zig-zag placement pass skips over them; embedFormatInfo draws the
// actual bits into these same cells once the mask is known.
func reserveFormatInfo(g *grid) {
	for _, c := range formatInfoCoordinatesNearOrigin() {
		g.reserve(c[0], c[1])
	}
	dim := g.dim
	for i := 0; i < 8; i++ {
		g.reserve(dim-1-i, 8)
	}
	for i := 0; i < 7; i++ {
		g.reserve(8, dim-7+i)
	}
}

// formatInfoCoordinatesNearOrigin lists the 15 format information
// module coordinates clustered around the top-left finder pattern, in
// the bit order format information is written (least significant bit
// first).
func formatInfoCoordinatesNearOrigin() [15][2]int {
	return [15][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}
}
