package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/mazzegi/qrgen"
	"github.com/mazzegi/qrgen/bitutil"
)

// failingWriter errors on every Write, for exercising the ErrIO wrapping
// path in WritePPM and WritePNG.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func smallDiamond() *bitutil.BitMatrix {
	m := bitutil.NewBitMatrix(3)
	m.Set(1, 0)
	m.Set(0, 1)
	m.Set(2, 1)
	m.Set(1, 2)
	return m
}

func TestScaleDimensions(t *testing.T) {
	m := smallDiamond()
	scaled := Scale(m, 4, 2)
	want := (3 + 2*2) * 4
	if scaled.Width() != want || scaled.Height() != want {
		t.Fatalf("scaled dims = %dx%d, want %dx%d", scaled.Width(), scaled.Height(), want, want)
	}
}

func TestScaleQuietZoneIsLight(t *testing.T) {
	m := smallDiamond()
	scaled := Scale(m, 2, 3)
	if scaled.Get(0, 0) {
		t.Fatal("quiet zone corner should be light")
	}
}

func TestScaleReplicatesModule(t *testing.T) {
	m := bitutil.NewBitMatrix(1)
	m.Set(0, 0)
	scaled := Scale(m, 3, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if !scaled.Get(x, y) {
				t.Fatalf("(%d,%d) should be dark after replication", x, y)
			}
		}
	}
}

func TestWritePPMHeaderAndSize(t *testing.T) {
	m := smallDiamond()
	var buf bytes.Buffer
	if err := WritePPM(&buf, m, Black); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "P6 3 3 255\n") {
		t.Fatalf("unexpected header: %q", buf.String()[:12])
	}
	headerLen := len("P6 3 3 255\n")
	wantBodyLen := 3 * 3 * 3
	if buf.Len()-headerLen != wantBodyLen {
		t.Fatalf("body length = %d, want %d", buf.Len()-headerLen, wantBodyLen)
	}
}

func TestWritePPMWriteFailureWrapsErrIO(t *testing.T) {
	m := smallDiamond()
	err := WritePPM(failingWriter{}, m, Black)
	if !errors.Is(err, qrgen.ErrIO) {
		t.Fatalf("err = %v, want wrapped qrgen.ErrIO", err)
	}
}

func TestWritePNGWriteFailureWrapsErrIO(t *testing.T) {
	m := smallDiamond()
	err := WritePNG(failingWriter{}, m, Black)
	if !errors.Is(err, qrgen.ErrIO) {
		t.Fatalf("err = %v, want wrapped qrgen.ErrIO", err)
	}
}

func TestWritePNGDecodes(t *testing.T) {
	m := smallDiamond()
	var buf bytes.Buffer
	if err := WritePNG(&buf, m, Black); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 3 {
		t.Fatalf("decoded dims = %dx%d, want 3x3", bounds.Dx(), bounds.Dy())
	}
}
