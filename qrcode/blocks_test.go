package qrcode

import "testing"

func TestInterleaveSingleBlockLength(t *testing.T) {
	// Version 1 level M has a single RS block, so interleave should be
	// a straight data-then-correction concatenation.
	data := make([]byte, totalDataCodewordsTable[LevelM][1])
	for i := range data {
		data[i] = byte(i)
	}
	res := interleave(data, LevelM, 1)
	want := totalAvailableModulesTable[1] / 8
	if len(res) != want {
		t.Fatalf("len(res) = %d, want %d", len(res), want)
	}
	nCorr := corrCodewordsPerBlockTable[LevelM][1]
	for i, b := range data {
		if res[i] != b {
			t.Fatalf("res[%d] = %d, want data byte %d", i, res[i], b)
		}
	}
	if len(res)-len(data) != nCorr {
		t.Fatalf("correction length = %d, want %d", len(res)-len(data), nCorr)
	}
}

func TestInterleaveMultiBlockLength(t *testing.T) {
	// Version 5 level Q splits into 4 blocks of uneven length.
	v, level := 5, LevelQ
	data := make([]byte, totalDataCodewordsTable[level][v])
	for i := range data {
		data[i] = byte(i % 256)
	}
	res := interleave(data, level, v)
	want := totalAvailableModulesTable[v] / 8
	if len(res) != want {
		t.Fatalf("len(res) = %d, want %d", len(res), want)
	}
}
