package canvas

import "image/color"

// Coverage values for the blended primitives, 0 (transparent) to 255
// (opaque), with the percentage shorthands the renderer uses.
const (
	OpaCover uint8 = 255
	Opa90    uint8 = 230
	Opa80    uint8 = 204
	Opa70    uint8 = 178
	Opa60    uint8 = 153
	Opa50    uint8 = 127
	Opa40    uint8 = 102
)

// RadiusCircle requests the largest radius the rectangle allows, turning
// it into a circle or pill.
const RadiusCircle = int16(0x7FFF)

// Rect is an inclusive pixel rectangle.
type Rect struct {
	X1, Y1, X2, Y2 int16
}

// RectStyle describes a rounded rectangle: fill, optional border ring of
// BorderW pixels, and corner radius.
type RectStyle struct {
	Fill      color.RGBA
	FillOpa   uint8
	Border    color.RGBA
	BorderW   int16
	BorderOpa uint8
	Radius    int16
}

// LineStyle describes a round-capped thick line.
type LineStyle struct {
	Color color.RGBA
	Width int16
	Opa   uint8
}

// FillRoundRect draws a rounded rectangle. Corner coverage is decided by
// squared distance to the corner circle centers; the border is the outer
// BorderW pixels of the shape.
func (c *Canvas) FillRoundRect(r Rect, s RectStyle) {
	if r.X2 < r.X1 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y2 < r.Y1 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	w := r.X2 - r.X1 + 1
	h := r.Y2 - r.Y1 + 1

	rad := s.Radius
	if m := minDim(w, h) / 2; rad > m {
		rad = m
	}
	if rad < 0 {
		rad = 0
	}
	inner := rad - s.BorderW
	if inner < 0 {
		inner = 0
	}
	radSq := int(rad) * int(rad)
	innerSq := int(inner) * int(inner)

	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			// Offsets past the corner circle centers; zero on the
			// straight spans.
			var dx, dy int16
			if x < r.X1+rad {
				dx = r.X1 + rad - x
			} else if x > r.X2-rad {
				dx = x - (r.X2 - rad)
			}
			if y < r.Y1+rad {
				dy = r.Y1 + rad - y
			} else if y > r.Y2-rad {
				dy = y - (r.Y2 - rad)
			}

			border := false
			if dx > 0 && dy > 0 {
				d := int(dx)*int(dx) + int(dy)*int(dy)
				if d > radSq {
					continue
				}
				border = s.BorderW > 0 && d > innerSq
			} else if s.BorderW > 0 {
				edge := x - r.X1
				if v := r.X2 - x; v < edge {
					edge = v
				}
				if v := y - r.Y1; v < edge {
					edge = v
				}
				if v := r.Y2 - y; v < edge {
					edge = v
				}
				border = edge < s.BorderW
			}

			if border {
				c.blend(x, y, s.Border, s.BorderOpa)
			} else {
				c.blend(x, y, s.Fill, s.FillOpa)
			}
		}
	}
}

// Line draws a thick line with round caps by coverage-testing every pixel
// in the expanded bounding box against the segment.
func (c *Canvas) Line(x1, y1, x2, y2 int16, s LineStyle) {
	if s.Width <= 0 || s.Opa == 0 {
		return
	}
	hw := float64(s.Width) / 2
	hwSq := hw * hw

	minX := minDim(x1, x2) - s.Width
	maxX := maxDim(x1, x2) + s.Width
	minY := minDim(y1, y2) - s.Width
	maxY := maxDim(y1, y2) + s.Width

	fx1, fy1 := float64(x1), float64(y1)
	dx := float64(x2) - fx1
	dy := float64(y2) - fy1
	lenSq := dx*dx + dy*dy

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) - fx1
			py := float64(y) - fy1
			t := 0.0
			if lenSq > 0 {
				t = (px*dx + py*dy) / lenSq
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			ox := px - t*dx
			oy := py - t*dy
			if ox*ox+oy*oy <= hwSq {
				c.blend(x, y, s.Color, s.Opa)
			}
		}
	}
}

func minDim(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func maxDim(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
