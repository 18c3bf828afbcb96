package raster

import (
	"image"
	"testing"
)

func TestRender(t *testing.T) {
	p := &Page{rows: [][]byte{
		{0x80},
		{},
	}}
	img := image.NewGray(image.Rect(0, 0, p.Width(), p.Height()))
	p.Render(img)
	if img.GrayAt(0, 0).Y != 0 {
		t.Error("pixel (0,0) should be black")
	}
	for x := 1; x < 8; x++ {
		if img.GrayAt(x, 0).Y != 255 {
			t.Errorf("pixel (%d,0) should be white", x)
		}
	}
	for x := 0; x < 8; x++ {
		if img.GrayAt(x, 1).Y != 255 {
			t.Errorf("pixel (%d,1) should be white", x)
		}
	}
}
