package render

import (
	"math"

	"github.com/ajanata/kawaiigen/internal/canvas"
)

// DrawMouth repaints the mouth buffer for the given curve. Curve bands:
// >65 wide-open grin (tongue past 100, side sparkles past 85), 35..64 the
// round "O" mouth with optional diamond pulsation, <-35 the full frown with
// corner tears past -50, otherwise a small smile or frown bar. The
// gritted-teeth override takes priority over all bands.
func DrawMouth(cv *canvas.Canvas, p Params, curve int8) {
	w, h := cv.Size()
	cv.Fill(colBG)

	cx := w / 2
	mouthW := int16(float64(w) * 0.85)
	curveOff := int16(int(h) * int(curve) / 140)
	cy := h/2 + p.Bounce

	const margin = 5
	minY := int16(margin)
	maxY := h - margin

	// Clamp the vertical center so every band stays within the margins no
	// matter how far bounce pushed it.
	switch {
	case curve >= 35 && curve < 65:
		sparkleDist := mouthW / 4
		minC := minY + sparkleDist - curveOff
		maxC := maxY - sparkleDist - curveOff
		if cy < minC {
			cy = minC
		}
		if cy > maxC {
			cy = maxC
		}
	case curve > 65:
		mouthH := h / 2
		halfOff := curveOff / 2
		halfMouth := mouthH/2 + 5
		minC := minY + halfMouth - halfOff
		maxC := maxY - halfMouth - halfOff
		if cy < minC {
			cy = minC
		}
		if cy > maxC {
			cy = maxC
		}
	case curve < -35:
		mouthH := int16(float64(h) * 0.35)
		halfOff := curveOff / 2
		minC := minY - halfOff
		maxC := maxY - mouthH - halfOff - 5
		if cy < minC {
			cy = minC
		}
		if cy > maxC {
			cy = maxC
		}
	default:
		extent := curveOff
		if extent < 0 {
			extent = -extent
		}
		extent += 10
		if cy-extent < minY {
			cy = minY + extent
		}
		if cy+extent > maxY {
			cy = maxY - extent
		}
	}

	switch {
	case p.Teeth:
		drawGrittedTeeth(cv, cx, cy, mouthW, h)
	case curve > 65:
		drawOpenMouth(cv, curve, cx, cy, curveOff, mouthW, h)
	case curve >= 35 && curve < 65:
		drawOMouth(cv, p, cx, cy, curveOff, mouthW)
	case curve < -35:
		drawFrown(cv, p, curve, cx, cy, curveOff, mouthW, h)
	default:
		drawBar(cv, curve, cx, cy, mouthW, h)
	}
}

func drawGrittedTeeth(cv *canvas.Canvas, cx, cy, mouthW, h int16) {
	mouthH := int16(float64(h) * 0.28)
	gripW := int16(float64(mouthW) * 0.78)
	y := cy - mouthH/2
	if y < 4 {
		y = 4
	}
	if y+mouthH > h-4 {
		y = h - 4 - mouthH
	}

	outer := canvas.Rect{X1: cx - gripW/2, Y1: y, X2: cx + gripW/2, Y2: y + mouthH}
	cv.FillRoundRect(outer, canvas.RectStyle{
		Fill: colGritBG, FillOpa: canvas.OpaCover,
		Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
		Radius: 8,
	})

	teeth := canvas.Rect{X1: outer.X1 + 4, Y1: y + 4, X2: outer.X2 - 4, Y2: y + mouthH - 4}
	cv.FillRoundRect(teeth, canvas.RectStyle{Fill: colTeeth, FillOpa: canvas.Opa90, Radius: 3})

	gap := canvas.LineStyle{Color: colToothGap, Width: 1, Opa: canvas.Opa70}
	teethW := teeth.X2 - teeth.X1
	for i := int16(1); i < 4; i++ {
		x := teeth.X1 + teethW*i/4
		cv.Line(x, teeth.Y1, x, teeth.Y2, gap)
	}
}

func drawOpenMouth(cv *canvas.Canvas, curve int8, cx, cy, curveOff, mouthW, h int16) {
	mouthH := h / 2
	y := cy + curveOff/2

	cv.FillRoundRect(
		canvas.Rect{X1: cx - mouthW/2, Y1: y - mouthH/2, X2: cx + mouthW/2, Y2: y + mouthH/2},
		canvas.RectStyle{
			Fill: colMouthOpen, FillOpa: canvas.Opa90,
			Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
			Radius: 12,
		})

	if curve > 100 {
		tongueW := mouthW / 5
		tongueH := mouthH / 3
		cv.FillRoundRect(
			canvas.Rect{X1: cx - tongueW/2, Y1: y + mouthH/5, X2: cx + tongueW/2, Y2: y + mouthH/5 + tongueH},
			canvas.RectStyle{
				Fill: colTongue, FillOpa: canvas.Opa90,
				Border: colTongueEdge, BorderW: 2, BorderOpa: canvas.OpaCover,
				Radius: 8,
			})
	}

	if curve > 85 {
		style := canvas.RectStyle{Fill: colMouthSpark, FillOpa: canvas.Opa60, Radius: 2}
		for _, side := range []int16{-1, 1} {
			sx := cx + side*(mouthW/2+8)
			cv.FillRoundRect(canvas.Rect{X1: sx - 2, Y1: y - 2, X2: sx + 2, Y2: y + 2}, style)
		}
	}
}

func drawOMouth(cv *canvas.Canvas, p Params, cx, cy, curveOff, mouthW int16) {
	my := cy + curveOff
	df := float64(p.Diamond) / 100

	if df > 0.3 {
		stretch := int16(3 + df*8)
		arm := canvas.RectStyle{
			Fill: colMouthO, FillOpa: canvas.Opa90,
			Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
			Radius: 4,
		}
		cv.FillRoundRect(canvas.Rect{X1: cx - 6, Y1: my - stretch - 6, X2: cx + 6, Y2: my - 2}, arm)
		cv.FillRoundRect(canvas.Rect{X1: cx + 2, Y1: my - 6, X2: cx + stretch + 6, Y2: my + 6}, arm)
		cv.FillRoundRect(canvas.Rect{X1: cx - 6, Y1: my + 2, X2: cx + 6, Y2: my + stretch + 6}, arm)
		cv.FillRoundRect(canvas.Rect{X1: cx - stretch - 6, Y1: my - 6, X2: cx - 2, Y2: my + 6}, arm)
		cv.FillRoundRect(canvas.Rect{X1: cx - 4, Y1: my - 4, X2: cx + 4, Y2: my + 4},
			canvas.RectStyle{Fill: colMouthO, FillOpa: canvas.Opa90, Radius: 2})
	} else {
		ovalW := int16(float64(mouthW) / 3.5)
		ovalH := mouthW / 4
		cv.FillRoundRect(
			canvas.Rect{X1: cx - ovalW, Y1: my - ovalH, X2: cx + ovalW, Y2: my + ovalH},
			canvas.RectStyle{
				Fill: colMouthO, FillOpa: canvas.Opa90,
				Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
				Radius: 8,
			})
	}

	style := canvas.RectStyle{Fill: colOSpark, FillOpa: canvas.Opa70, Radius: 2}
	for i := 0; i < 4; i++ {
		a := float64(i*90) * math.Pi / 180
		sx := cx + int16(float64(mouthW/3)*math.Cos(a))
		sy := my + int16(float64(mouthW/3)*math.Sin(a))
		cv.FillRoundRect(canvas.Rect{X1: sx - 2, Y1: sy - 2, X2: sx + 2, Y2: sy + 2}, style)
	}
}

func drawFrown(cv *canvas.Canvas, p Params, curve int8, cx, cy, curveOff, mouthW, h int16) {
	mouthH := int16(float64(h) * 0.35)
	y := cy + curveOff/2

	cv.FillRoundRect(
		canvas.Rect{X1: cx - mouthW/2, Y1: y, X2: cx + mouthW/2, Y2: y + mouthH},
		canvas.RectStyle{
			Fill: colFrown, FillOpa: canvas.Opa90,
			Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
			Radius: 8,
		})

	if curve < -50 {
		baseY := cy - 8
		tearY := baseY + int16(p.Tear)
		drop := canvas.RectStyle{Fill: colTear, FillOpa: canvas.Opa70, Radius: 4}
		trail := canvas.LineStyle{Color: colTear, Width: 2, Opa: canvas.Opa50}

		leftX := cx - mouthW/2 - 10
		cv.FillRoundRect(canvas.Rect{X1: leftX - 4, Y1: tearY - 4, X2: leftX + 4, Y2: tearY + 4}, drop)
		cv.Line(leftX, baseY, leftX-1, tearY-4, trail)

		rightX := cx + mouthW/2 + 10
		cv.FillRoundRect(canvas.Rect{X1: rightX - 4, Y1: tearY - 4, X2: rightX + 4, Y2: tearY + 4}, drop)
		cv.Line(rightX, baseY, rightX+1, tearY-4, trail)
	}
}

func drawBar(cv *canvas.Canvas, curve int8, cx, cy, mouthW, h int16) {
	mouthH := int16(float64(h) * 0.28)
	barW := int16(float64(mouthW) * 0.65)

	fill, opa := colFrownBar, canvas.Opa90
	if curve > 5 {
		fill, opa = colSmileBar, canvas.Opa80
	}
	cv.FillRoundRect(
		canvas.Rect{X1: cx - barW/2, Y1: cy, X2: cx + barW/2, Y2: cy + mouthH},
		canvas.RectStyle{
			Fill: fill, FillOpa: opa,
			Border: colBlack, BorderW: 2, BorderOpa: canvas.OpaCover,
			Radius: 6,
		})
}
