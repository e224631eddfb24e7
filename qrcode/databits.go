package qrcode

import "github.com/mazzegi/qrgen/bitutil"

// modeByte is the 4-bit mode indicator for byte-mode segments.
const modeByte = 0b0100

// padByteA and padByteB are the two bytes ISO/IEC 18004 alternates
// through when filling unused capacity after the terminator.
const (
	padByteA = 0b11101100
	padByteB = 0b00010001
)

// dataBits assembles the full data bitstream for one byte-mode segment:
// mode indicator, character count indicator, the raw payload, a
// terminator, byte-alignment padding and alternating pad bytes up to
// the version's total data codeword capacity.
//
// Grounded on fill_data in main.c; the only departure is the character
// count indicator width, which that C program hardcodes to the
// version<=9 width regardless of actual version (main.c is itself
// exercised only with small inputs, so the bug never surfaces there).
// This port follows ISO/IEC 18004 Table 3 instead: byte mode uses an
// 8-bit count for versions 1-9 and a 16-bit count for versions 10-40.
func dataBits(payload []byte, level Level, v int) []byte {
	totalBits := totalDataCodewordsTable[level][v] * 8
	w := bitutil.NewBitStreamWriter(totalBits/8 + 1)

	w.Append(modeByte, 4)
	countBits := 8
	if v >= 10 {
		countBits = 16
	}
	w.Append(uint32(len(payload)), countBits)
	for _, b := range payload {
		w.Append(uint32(b), 8)
	}

	remaining := totalBits - w.NBits()
	terminatorBits := 4
	if remaining < 4 {
		terminatorBits = remaining
	}
	w.Append(0, terminatorBits)

	if w.NBits()%8 != 0 {
		w.Append(0, 8-w.NBits()%8)
	}

	pad := byte(padByteA)
	for w.NBits() < totalBits {
		w.Append(uint32(pad), 8)
		pad ^= padByteA ^ padByteB
	}

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out
}
