// Package pnm implements an encoder for the binary PBM (P4) image
// format.
package pnm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Encode writes img to w as a binary PBM file. Pixels darker than 50%
// gray become black. Rows are padded to full bytes, MSB first, as the
// format requires.
func Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	fmt.Fprintf(bw, "P4\n%d %d\n", width, height)
	row := make([]byte, (width+7)/8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y < 128 {
				row[(x-b.Min.X)/8] |= 128 >> uint((x-b.Min.X)%8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
