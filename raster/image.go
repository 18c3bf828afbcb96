package raster

import "image/color"

type ImageSetter interface {
	Set(x, y int, c color.Color)
}

// Render draws the page onto any image.Image that implements the Set
// method. Pixels past the end of a short row are white.
func (p *Page) Render(img ImageSetter) {
	width := p.Width()
	for y, row := range p.rows {
		for x := 0; x < width; x++ {
			var packet byte
			if x/8 < len(row) {
				packet = row[x/8]
			}
			if packet<<uint(x%8)&128 == 0 {
				img.Set(x, y, color.Gray{Y: 255})
			} else {
				img.Set(x, y, color.Gray{Y: 0})
			}
		}
	}
}
