package raster

// A Page is one decoded page: its rows in scan order, top to bottom.
// Each byte of a row holds 8 horizontal pixels, bit 7 leftmost, set
// bits black. Rows may have different lengths; short rows are white
// past their end.
type Page struct {
	rows [][]byte
}

// Height returns the number of rows on the page.
func (p *Page) Height() int {
	return len(p.rows)
}

// WidthBytes returns the length of the widest row, in bytes.
func (p *Page) WidthBytes() int {
	w := 0
	for _, row := range p.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Width returns the page width in pixels.
func (p *Page) Width() int {
	return p.WidthBytes() * 8
}

// Row returns row y without padding. It may be shorter than
// WidthBytes. The returned slice is owned by the page and must not be
// modified.
func (p *Page) Row(y int) []byte {
	return p.rows[y]
}
