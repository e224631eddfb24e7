package qrgen

import (
	"fmt"

	"github.com/mazzegi/qrgen/bitutil"
	"github.com/mazzegi/qrgen/qrcode"
)

// Level re-exports qrcode.Level so callers of the top-level package
// never need to import qrcode directly for the common case.
type Level = qrcode.Level

const (
	LevelL = qrcode.LevelL
	LevelM = qrcode.LevelM
	LevelQ = qrcode.LevelQ
	LevelH = qrcode.LevelH
)

// ErrEmptyPayload and ErrPayloadTooLarge re-export the qrcode package's
// sentinel errors so callers can compare against them without an extra
// import.
var (
	ErrEmptyPayload    = qrcode.ErrEmptyPayload
	ErrPayloadTooLarge = qrcode.ErrPayloadTooLarge
)

// Encode builds the module matrix for payload at the requested
// error-correction level, returning the matrix and its side length in
// modules (the quiet zone is not included; callers render it via the
// render package).
func Encode(payload []byte, level Level) (matrix *bitutil.BitMatrix, dim int, err error) {
	symbol, err := qrcode.Encode(payload, level)
	if err != nil {
		return nil, 0, err
	}
	if symbol.Matrix.Width() != symbol.Matrix.Height() {
		return nil, 0, fmt.Errorf("%w: symbol matrix is %dx%d, want square",
			ErrInternalInvariant, symbol.Matrix.Width(), symbol.Matrix.Height())
	}
	return symbol.Matrix, symbol.Matrix.Width(), nil
}
