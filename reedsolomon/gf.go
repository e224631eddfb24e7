// Package reedsolomon implements GF(256) arithmetic and Reed-Solomon
// error-correction codeword generation for QR code symbols.
//
// Grounded on the antilog/log table construction in the teacher's
// GenericGF (github.com/ericlevine/zxinggo/reedsolomon) and on the
// generator-polynomial and synthetic-division routines of
// reed_solomon.c (the alfazet/quer original this encoder is modeled on).
package reedsolomon

import "sync"

// primitivePoly is x^8 + x^4 + x^3 + x^2 + 1, the field polynomial ISO/IEC
// 18004 specifies for QR code Reed-Solomon arithmetic.
const primitivePoly = 0x11D

// Field holds the antilog/log tables for GF(256) under the QR primitive
// polynomial (primitive element alpha = 2).
type Field struct {
	antilog [256]int // antilog[i] = alpha^i
	log     [256]int // log[alpha^i] = i; log[0] is never queried
}

var (
	qrFieldOnce sync.Once
	qrField     *Field
)

// QRField returns the process-wide GF(256) table singleton, computing it on
// first use. Safe for concurrent use: after initialization only reads
// occur, so no further synchronization is needed.
func QRField() *Field {
	qrFieldOnce.Do(func() {
		qrField = newField()
	})
	return qrField
}

func newField() *Field {
	f := &Field{}
	x := 1
	for i := 0; i < 255; i++ {
		f.antilog[i] = x
		f.log[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePoly
		}
	}
	f.antilog[255] = f.antilog[0]
	return f
}

// Multiply returns a*b in GF(256), special-casing zero operands since
// log(0) is undefined.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.antilog[(f.log[a]+f.log[b])%255]
}

// Log returns log-base-alpha of a nonzero field element.
func (f *Field) Log(a int) int { return f.log[a] }

// Antilog returns alpha^i.
func (f *Field) Antilog(i int) int { return f.antilog[i%255] }
