package qrcode

import "testing"

func TestChooseVersionEmptyPayload(t *testing.T) {
	if _, err := chooseVersion(0, LevelL); err != ErrEmptyPayload {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
}

func TestChooseVersionSmallPayloadPicksVersion1(t *testing.T) {
	v, err := chooseVersion(5, LevelL)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}
}

func TestChooseVersionExactCapacityBoundary(t *testing.T) {
	// version 1 at level L holds exactly 17 bytes.
	v, err := chooseVersion(17, LevelL)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}
	v, err = chooseVersion(18, LevelL)
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Fatalf("version = %d, want 2", v)
	}
}

func TestChooseVersionMaxCapacity(t *testing.T) {
	v, err := chooseVersion(2953, LevelL)
	if err != nil {
		t.Fatal(err)
	}
	if v != 40 {
		t.Fatalf("version = %d, want 40", v)
	}
	v, err = chooseVersion(1273, LevelH)
	if err != nil {
		t.Fatal(err)
	}
	if v != 40 {
		t.Fatalf("version = %d, want 40", v)
	}
}

func TestChooseVersionTooLarge(t *testing.T) {
	if _, err := chooseVersion(2954, LevelL); err != ErrPayloadTooLarge {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	if _, err := chooseVersion(1274, LevelH); err != ErrPayloadTooLarge {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
}

func TestDimension(t *testing.T) {
	cases := map[int]int{1: 21, 2: 25, 7: 45, 40: 177}
	for v, want := range cases {
		if got := dimension(v); got != want {
			t.Fatalf("dimension(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestAlignmentPositionsVersion1(t *testing.T) {
	if pos := alignmentPositions(1); pos != nil {
		t.Fatalf("version 1 should have no alignment patterns, got %v", pos)
	}
}

func TestAlignmentPositionsVersion2(t *testing.T) {
	// Version 2 has exactly two positions: 6 and 18.
	pos := alignmentPositions(2)
	want := []int{6, 18}
	if len(pos) != len(want) {
		t.Fatalf("len(pos) = %d, want %d (%v)", len(pos), len(want), pos)
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Fatalf("pos[%d] = %d, want %d (full: %v)", i, pos[i], want[i], pos)
		}
	}
}

func TestAlignmentPositionsVersion7(t *testing.T) {
	// Version 7 is the well-known {6, 22, 38} case from the ISO worked examples.
	pos := alignmentPositions(7)
	want := []int{6, 22, 38}
	if len(pos) != len(want) {
		t.Fatalf("len(pos) = %d, want %d (%v)", len(pos), len(want), pos)
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Fatalf("pos[%d] = %d, want %d (full: %v)", i, pos[i], want[i], pos)
		}
	}
}
