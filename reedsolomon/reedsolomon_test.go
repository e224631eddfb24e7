package reedsolomon

import "testing"

func TestFieldMultiplyMatchesLogAntilogIdentity(t *testing.T) {
	gf := QRField()
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			want := gf.antilog[(gf.log[x]+gf.log[y])%255]
			if got := gf.Multiply(x, y); got != want {
				t.Fatalf("Multiply(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFieldMultiplyByZero(t *testing.T) {
	gf := QRField()
	if gf.Multiply(0, 200) != 0 || gf.Multiply(200, 0) != 0 {
		t.Fatal("multiplying by zero should yield zero")
	}
}

func TestGeneratorPolynomialLeadingCoefficientAndLength(t *testing.T) {
	for _, deg := range []int{7, 10, 13, 17, 18, 22, 26, 30} {
		poly := GeneratorPolynomial(deg)
		if len(poly) != deg+1 {
			t.Fatalf("deg=%d: len(poly) = %d, want %d", deg, len(poly), deg+1)
		}
		if poly[0] != 1 {
			t.Fatalf("deg=%d: leading coefficient = %d, want 1", deg, poly[0])
		}
		for i, c := range poly {
			if c == 0 {
				t.Fatalf("deg=%d: coefficient %d is zero, want all nonzero", deg, i)
			}
		}
	}
}

// TestGeneratorPolynomialDegree7 checks against the well-known EC=7 generator
// polynomial for QR codes (ISO/IEC 18004 Annex A), expressed as exponents of
// alpha: g7(x) = x^7+87x^6+229x^5+146x^4+149x^3+238x^2+102x+21.
func TestGeneratorPolynomialDegree7(t *testing.T) {
	gf := QRField()
	poly := GeneratorPolynomial(7)
	wantExponents := []int{0, 87, 229, 146, 149, 238, 102, 21}
	for i, exp := range wantExponents {
		want := gf.Antilog(exp)
		if poly[i] != want {
			t.Fatalf("coefficient %d = %d, want alpha^%d = %d", i, poly[i], exp, want)
		}
	}
}

func TestCorrectionCodewordsLength(t *testing.T) {
	gen := GeneratorPolynomial(10)
	msg := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236}
	corr := CorrectionCodewords(gen, msg, 0, len(msg), 10)
	if len(corr) != 10 {
		t.Fatalf("len(corr) = %d, want 10", len(corr))
	}
}

func TestCorrectionCodewordsKnownVector(t *testing.T) {
	// "HELLO WORLD" alphanumeric-mode encoded at version 1-M has this well
	// known 16-codeword data sequence and correction codeword sequence
	// (from the ISO/IEC 18004 worked example, widely reproduced in QR
	// tooling).
	gen := GeneratorPolynomial(10)
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	corr := CorrectionCodewords(gen, data, 0, len(data), 10)
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	for i := range want {
		if corr[i] != want[i] {
			t.Fatalf("corr[%d] = %d, want %d (full: %v)", i, corr[i], want[i], corr)
		}
	}
}
