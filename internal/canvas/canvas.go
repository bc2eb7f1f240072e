// Package canvas provides an in-memory RGB565 pixel buffer and the small
// set of raster primitives the face renderer needs: background fill,
// alpha-blended rounded rectangles, round-capped thick lines, and blitting
// onto another surface.
package canvas

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Canvas is a fixed-size RGB565 buffer. It implements drivers.Displayer so
// anything that draws to a Displayer can target it directly; Display is a
// no-op because the owner blits the buffer itself.
type Canvas struct {
	w, h int16
	pix  []RGB565
}

// New allocates a buffer. Both dimensions must be positive.
func New(w, h int16) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("unusable dimensions")
	}
	return &Canvas{
		w:   w,
		h:   h,
		pix: make([]RGB565, int(w)*int(h)),
	}, nil
}

func (c *Canvas) Size() (int16, int16) {
	return c.w, c.h
}

// SetPixel writes one opaque pixel. Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.pix[int(y)*int(c.w)+int(x)] = ToRGB565(col)
}

func (c *Canvas) Display() error {
	return nil
}

// At returns the pixel at (x, y), or black when out of bounds.
func (c *Canvas) At(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{A: 0xFF}
	}
	return c.pix[int(y)*int(c.w)+int(x)].RGBA()
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(col color.RGBA) {
	v := ToRGB565(col)
	for i := range c.pix {
		c.pix[i] = v
	}
}

// Blit copies the whole buffer onto dst with its top-left corner at
// (offX, offY). Pixels falling outside dst are left to dst to reject.
func (c *Canvas) Blit(dst drivers.Displayer, offX, offY int16) {
	i := 0
	for y := int16(0); y < c.h; y++ {
		for x := int16(0); x < c.w; x++ {
			dst.SetPixel(offX+x, offY+y, c.pix[i].RGBA())
			i++
		}
	}
}

// blend mixes col over the existing pixel at the given coverage (0..255).
func (c *Canvas) blend(x, y int16, col color.RGBA, opa uint8) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	if opa == 0 {
		return
	}
	if opa == 0xFF {
		c.pix[int(y)*int(c.w)+int(x)] = ToRGB565(col)
		return
	}
	i := int(y)*int(c.w) + int(x)
	bg := c.pix[i].RGBA()
	a := int(opa)
	mixed := color.RGBA{
		R: uint8((int(col.R)*a + int(bg.R)*(255-a)) / 255),
		G: uint8((int(col.G)*a + int(bg.G)*(255-a)) / 255),
		B: uint8((int(col.B)*a + int(bg.B)*(255-a)) / 255),
		A: 0xFF,
	}
	c.pix[i] = ToRGB565(mixed)
}
