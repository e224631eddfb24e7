// Package render turns a finished QR symbol into raster output: a
// module-replicated, quiet-zone-padded bit matrix, and writers for
// that matrix in PPM and PNG form.
//
// The scaling logic is grounded on RenderResult in the teacher's
// qrcode/encoder/encoder.go; the PPM writer is grounded on
// save_as_ppm in the alfazet/quer original_source this project is
// modeled on.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mazzegi/qrgen"
	"github.com/mazzegi/qrgen/bitutil"
)

// Color is an RGB triple used to paint dark modules. Light modules and
// the quiet zone are always rendered white.
type Color struct {
	R, G, B uint8
}

// Black is the default foreground used when no color is requested.
var Black = Color{0, 0, 0}

// Scale replicates each module of symbol into an moduleSize x
// moduleSize block and surrounds the result with a quietZone-module
// border, returning the final pixel-level bit matrix (true = dark).
func Scale(symbol *bitutil.BitMatrix, moduleSize, quietZone int) *bitutil.BitMatrix {
	if moduleSize < 1 {
		moduleSize = 1
	}
	if quietZone < 0 {
		quietZone = 0
	}
	dim := symbol.Width()
	side := (dim + 2*quietZone) * moduleSize

	out := bitutil.NewBitMatrix(side)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if !symbol.Get(x, y) {
				continue
			}
			px := (x + quietZone) * moduleSize
			py := (y + quietZone) * moduleSize
			out.SetRegion(px, py, moduleSize, moduleSize)
		}
	}
	return out
}

// WritePPM writes a binary (P6) PPM image of pixels to w, painting
// dark modules with fg and everything else white.
//
// Grounded on save_as_ppm, which writes the same P6 header followed by
// one uncompressed 3-byte RGB triple per pixel; image/png is not
// reachable from that C original; a stdlib PNG encoder is used for
// WritePNG below instead, since no image-encoding library appears
// anywhere in the example corpus.
func WritePPM(w io.Writer, pixels *bitutil.BitMatrix, fg Color) error {
	bw := bufio.NewWriter(w)
	width, height := pixels.Width(), pixels.Height()
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255\n", width, height); err != nil {
		return fmt.Errorf("%w: %v", qrgen.ErrIO, err)
	}
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := x * 3
			if pixels.Get(x, y) {
				row[off], row[off+1], row[off+2] = fg.R, fg.G, fg.B
			} else {
				row[off], row[off+1], row[off+2] = 255, 255, 255
			}
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("%w: %v", qrgen.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", qrgen.ErrIO, err)
	}
	return nil
}

// WritePNG writes a PNG image of pixels to w, painting dark modules
// with fg and everything else white.
func WritePNG(w io.Writer, pixels *bitutil.BitMatrix, fg Color) error {
	width, height := pixels.Width(), pixels.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{255, 255, 255, 255}
	dark := color.RGBA{fg.R, fg.G, fg.B, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pixels.Get(x, y) {
				img.Set(x, y, dark)
			} else {
				img.Set(x, y, white)
			}
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %v", qrgen.ErrIO, err)
	}
	return nil
}
