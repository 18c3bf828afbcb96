package image

import (
	"image"
	"image/color"

	"github.com/janh/brlaser/raster"
)

var _ image.Image = (*Monochrome)(nil)

// Monochrome is an in-memory monochromatic image, with 8 pixels
// packed into one byte. Its At method returns color.Gray values.
type Monochrome struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func (img *Monochrome) ColorModel() color.Model {
	return color.GrayModel
}

func (img *Monochrome) Bounds() image.Rectangle {
	return img.Rect
}

func (img *Monochrome) At(x, y int) color.Color {
	idx := img.PixOffset(x, y)
	if img.Pix[idx]<<uint(x%8)&128 == 0 {
		return color.Gray{Y: 255}
	}
	return color.Gray{Y: 0}
}

// PixOffset returns the index of the first element of Pix that
// corresponds to the pixel at (x, y).
func (img *Monochrome) PixOffset(x, y int) int {
	return y*img.Stride + (x / 8)
}

// Image returns the page as a bit-packed image. Rows shorter than the
// page's widest row are padded with white pixels.
func Image(p *raster.Page) *Monochrome {
	stride := p.WidthBytes()
	pix := make([]uint8, stride*p.Height())
	for y := 0; y < p.Height(); y++ {
		copy(pix[y*stride:(y+1)*stride], p.Row(y))
	}
	return &Monochrome{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, p.Width(), p.Height()),
	}
}
