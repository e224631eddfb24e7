// Package qrgen encodes byte-mode QR code symbols and renders them as
// raster images, following ISO/IEC 18004.
package qrgen

import "errors"

var (
	// ErrIO wraps failures writing rendered output to its destination.
	ErrIO = errors.New("qrgen: io error")

	// ErrInternalInvariant is returned when an encoding step produces a
	// result that violates an assumption guaranteed by the table data
	// (capacity, block counts, dimensions). It should never surface for
	// valid input; seeing it means the tables or the code deriving from
	// them have drifted out of sync.
	ErrInternalInvariant = errors.New("qrgen: internal invariant violated")
)
