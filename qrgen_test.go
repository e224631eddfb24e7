package qrgen

import "testing"

func TestEncodeReturnsSquareMatrix(t *testing.T) {
	matrix, dim, err := Encode([]byte("HELLO"), LevelM)
	if err != nil {
		t.Fatal(err)
	}
	if dim != 21 {
		t.Fatalf("dim = %d, want 21", dim)
	}
	if matrix.Width() != dim || matrix.Height() != dim {
		t.Fatalf("matrix dims = %dx%d, want %dx%d", matrix.Width(), matrix.Height(), dim, dim)
	}
}

func TestEncodeEmptyPayload(t *testing.T) {
	if _, _, err := Encode(nil, LevelL); err != ErrEmptyPayload {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
}
