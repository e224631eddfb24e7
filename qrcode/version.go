package qrcode

import "fmt"

// ErrPayloadTooLarge is returned when no QR version (1-40) at the
// requested level has enough capacity for the payload.
var ErrPayloadTooLarge = fmt.Errorf("qrcode: payload exceeds version 40 capacity at this level")

// ErrEmptyPayload is returned for a zero-length payload. The original
// quer program happily encodes an empty byte-mode segment; this port
// treats it as a caller error instead, since a symbol carrying no
// payload is never a useful artifact to produce.
var ErrEmptyPayload = fmt.Errorf("qrcode: payload must not be empty")

// chooseVersion returns the smallest version (1-40) whose capacity at
// level can hold len(payload) bytes of byte-mode data, accounting for
// the mode indicator, character count indicator and terminator bits
// that dataBits adds on top of the raw payload.
func chooseVersion(payloadLen int, level Level) (int, error) {
	if payloadLen == 0 {
		return 0, ErrEmptyPayload
	}
	for v := 1; v <= 40; v++ {
		if payloadLen <= capacityTable[level][v] {
			return v, nil
		}
	}
	return 0, ErrPayloadTooLarge
}

// dimension returns the width/height in modules of a symbol at version v.
func dimension(v int) int {
	return 4*v + 17
}

// alignmentPositions returns the row/column coordinates (shared between
// both axes) at which alignment pattern centers are placed for version v,
// built from the end of the symbol backward. Version 1 has no alignment
// patterns.
func alignmentPositions(v int) []int {
	if v == 1 {
		return nil
	}
	count := v/7 + 2
	dim := dimension(v)
	delta := ((8*v + 3*count + 5) / (4*count - 4)) * 2
	positions := make([]int, count)
	positions[0] = 6
	last := dim - 7
	positions[count-1] = last
	for i := count - 2; i >= 1; i-- {
		last -= delta
		positions[i] = last
	}
	return positions
}
