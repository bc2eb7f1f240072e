package render

import (
	"math"

	"github.com/ajanata/kawaiigen/internal/canvas"
)

// DrawEye repaints one square eye buffer: brow, blush, then the eye itself
// (heart icon, open eye with iris and highlights, or closed lash line), and
// finally the sweat-drop and tear overlays.
func DrawEye(cv *canvas.Canvas, p Params, openness uint8, left bool) {
	w, h := cv.Size()
	cv.Fill(colBG)

	eyeW := int16(float64(w) * 0.75)
	eyeH := int16(int(eyeW) * int(openness) / 100)
	if eyeH < 8 {
		eyeH = 8
	}
	cx := w / 2
	cy := int16(float64(h)*0.6) + p.Bounce

	browAngle := p.LeftBrow
	if !left {
		browAngle = p.RightBrow
	}
	browY := cy - eyeW/2 - 6 + p.BrowHeight
	browW := int16(float64(eyeW) * 0.9)
	yOff := int16(float64(browW) * 0.25 * math.Sin(float64(browAngle)*math.Pi/180))

	brow := canvas.LineStyle{Color: colBrow, Width: 4, Opa: canvas.OpaCover}
	if left {
		cv.Line(cx-browW/2, browY-yOff, cx+browW/2, browY+yOff, brow)
	} else {
		cv.Line(cx-browW/2, browY+yOff, cx+browW/2, browY-yOff, brow)
	}

	if p.Blush > 0 {
		cv.FillRoundRect(
			canvas.Rect{X1: cx - 10, Y1: cy + eyeW/2 + 2, X2: cx + 10, Y2: cy + eyeW/2 + 8},
			canvas.RectStyle{Fill: colBlush, FillOpa: pct(p.Blush), Radius: 8})
	}

	switch {
	case p.HeartEyes && openness > 20:
		drawHeart(cv, p, cx, cy, eyeW)
	case openness > 20:
		drawOpenEye(cv, p, cx, cy, eyeW, eyeH, openness)
	default:
		drawClosedEye(cv, cx, cy, eyeW, left)
	}

	if p.SweatBoth || (p.SweatLeft && left) {
		drawSweatDrop(cv, p, cx, browY, eyeW, h, left)
	}
	if p.EyeTears && openness > 30 {
		drawEyeTear(cv, p, cx, cy, eyeW, eyeH, left)
	}
}

// drawHeart composes the heart from overlapping rounded rectangles and two
// circular bumps, plus highlights and orbiting sparkles.
func drawHeart(cv *canvas.Canvas, p Params, cx, cy, eyeW int16) {
	hs := float64(eyeW) * 0.9
	f := func(m float64) int16 { return int16(hs * m) }

	solid := func(r canvas.Rect, radius int16) {
		cv.FillRoundRect(r, canvas.RectStyle{Fill: colHeart, FillOpa: canvas.OpaCover, Radius: radius})
	}

	solid(canvas.Rect{X1: cx - f(0.08), Y1: cy + f(0.35), X2: cx + f(0.08), Y2: cy + f(0.52)}, f(0.18))
	solid(canvas.Rect{X1: cx - f(0.22), Y1: cy + f(0.12), X2: cx + f(0.22), Y2: cy + f(0.42)}, f(0.15))
	solid(canvas.Rect{X1: cx - f(0.38), Y1: cy - f(0.12), X2: cx + f(0.38), Y2: cy + f(0.22)}, f(0.12))

	bump := f(0.32)
	solid(canvas.Rect{X1: cx - f(0.24) - bump, Y1: cy - f(0.28) - bump, X2: cx - f(0.24) + bump, Y2: cy - f(0.28) + bump}, canvas.RadiusCircle)
	solid(canvas.Rect{X1: cx + f(0.24) - bump, Y1: cy - f(0.28) - bump, X2: cx + f(0.24) + bump, Y2: cy - f(0.28) + bump}, canvas.RadiusCircle)

	solid(canvas.Rect{X1: cx - f(0.12), Y1: cy - f(0.32), X2: cx + f(0.12), Y2: cy - f(0.05)}, f(0.14))
	solid(canvas.Rect{X1: cx - f(0.42), Y1: cy - f(0.08), X2: cx - f(0.25), Y2: cy + f(0.18)}, f(0.16))
	solid(canvas.Rect{X1: cx + f(0.25), Y1: cy - f(0.08), X2: cx + f(0.42), Y2: cy + f(0.18)}, f(0.16))

	hl := f(0.2)
	cv.FillRoundRect(
		canvas.Rect{X1: cx - f(0.2) - hl/2, Y1: cy - f(0.2) - hl/2, X2: cx - f(0.2) + hl/2, Y2: cy - f(0.2) + hl/2},
		canvas.RectStyle{Fill: colWhite, FillOpa: canvas.Opa80, Radius: canvas.RadiusCircle})
	hlSmall := f(0.12)
	cv.FillRoundRect(
		canvas.Rect{X1: cx + f(0.05) - hlSmall/2, Y1: cy - f(0.12) - hlSmall/2, X2: cx + f(0.05) + hlSmall/2, Y2: cy - f(0.12) + hlSmall/2},
		canvas.RectStyle{Fill: colWhite, FillOpa: canvas.Opa60, Radius: canvas.RadiusCircle})

	if p.Sparkle > 0 {
		style := canvas.RectStyle{Fill: colHeartSpark, FillOpa: pct(p.Sparkle), Radius: 2}
		dist := hs * 0.6
		for i := 0; i < 6; i++ {
			a := float64(i*60+int(p.Sparkle)*5) * math.Pi / 180
			sx := cx + int16(dist*math.Cos(a))
			sy := cy + int16(dist*math.Sin(a)*0.85)
			cv.FillRoundRect(canvas.Rect{X1: sx - 2, Y1: sy - 2, X2: sx + 2, Y2: sy + 2}, style)
		}
	}
}

func drawOpenEye(cv *canvas.Canvas, p Params, cx, cy, eyeW, eyeH int16, openness uint8) {
	cv.FillRoundRect(
		canvas.Rect{X1: cx - eyeW/2, Y1: cy - eyeH/2, X2: cx + eyeW/2, Y2: cy + eyeH/2},
		canvas.RectStyle{
			Fill: colWhite, FillOpa: canvas.OpaCover,
			Border: colBlack, BorderW: 3, BorderOpa: canvas.OpaCover,
			Radius: 15,
		})

	if openness > 30 && eyeH > 16 {
		irisW := int16(float64(eyeW) * 0.55)
		irisH := int16(float64(eyeH) * 0.75)
		if irisH > irisW {
			irisH = irisW
		}

		// Keep the iris at least 3px inside the eye outline.
		icx := cx + p.PupilX
		icy := cy + p.PupilY
		if icx-irisW/2 < cx-eyeW/2+3 {
			icx = cx - eyeW/2 + irisW/2 + 3
		}
		if icx+irisW/2 > cx+eyeW/2-3 {
			icx = cx + eyeW/2 - irisW/2 - 3
		}
		if icy-irisH/2 < cy-eyeH/2+3 {
			icy = cy - eyeH/2 + irisH/2 + 3
		}
		if icy+irisH/2 > cy+eyeH/2-3 {
			icy = cy + eyeH/2 - irisH/2 - 3
		}

		cv.FillRoundRect(
			canvas.Rect{X1: icx - irisW/2, Y1: icy - irisH/2, X2: icx + irisW/2, Y2: icy + irisH/2},
			canvas.RectStyle{
				Fill: colIris, FillOpa: canvas.OpaCover,
				Border: colIrisEdge, BorderW: 2, BorderOpa: canvas.OpaCover,
				Radius: 8,
			})

		pupilW := irisW / 2
		pupilH := int16(float64(irisH) * 0.6)
		cv.FillRoundRect(
			canvas.Rect{X1: icx - pupilW/2, Y1: icy - pupilH/2, X2: icx + pupilW/2, Y2: icy + pupilH/2},
			canvas.RectStyle{Fill: colBlack, FillOpa: canvas.OpaCover, Radius: 6})

		hlW := int16(float64(pupilW) * 0.4)
		hlH := int16(float64(pupilH) * 0.4)
		if hlW < 4 {
			hlW = 4
		}
		if hlH < 4 {
			hlH = 4
		}
		cv.FillRoundRect(
			canvas.Rect{
				X1: icx - pupilW/3 - hlW/2, Y1: icy - pupilH/3 - hlH/2,
				X2: icx - pupilW/3 + hlW/2, Y2: icy - pupilH/3 + hlH/2,
			},
			canvas.RectStyle{Fill: colWhite, FillOpa: canvas.OpaCover, Radius: 3})

		smW, smH := hlW/2, hlH/2
		if smW < 2 {
			smW = 2
		}
		if smH < 2 {
			smH = 2
		}
		cv.FillRoundRect(
			canvas.Rect{
				X1: icx + pupilW/4 - smW/2, Y1: icy - pupilH/4 - smH/2,
				X2: icx + pupilW/4 + smW/2, Y2: icy - pupilH/4 + smH/2,
			},
			canvas.RectStyle{Fill: colWhite, FillOpa: canvas.OpaCover, Radius: 2})
	}

	if p.Sparkle > 0 {
		style := canvas.RectStyle{Fill: colEyeSpark, FillOpa: pct(p.Sparkle), Radius: 2}
		for i := 0; i < 3; i++ {
			a := (float64(i*120) + float64(p.Sparkle)*3.6) * math.Pi / 180
			sx := cx + int16(float64(eyeW/2+8)*math.Cos(a))
			sy := cy + int16(float64(eyeW/2+8)*math.Sin(a))
			cv.FillRoundRect(canvas.Rect{X1: sx - 2, Y1: sy - 2, X2: sx + 2, Y2: sy + 2}, style)
		}
	}
}

// drawClosedEye draws the lash line with four short lashes angled outward.
func drawClosedEye(cv *canvas.Canvas, cx, cy, eyeW int16, left bool) {
	cv.Line(cx-eyeW/2, cy, cx+eyeW/2, cy,
		canvas.LineStyle{Color: colBlack, Width: 4, Opa: canvas.OpaCover})

	lash := canvas.LineStyle{Color: colBlack, Width: 2, Opa: canvas.OpaCover}
	tip := int16(2)
	if left {
		tip = -2
	}
	for i := int16(0); i < 4; i++ {
		x := cx - eyeW/3 + eyeW*i/4
		cv.Line(x, cy, x+tip, cy-6, lash)
	}
}

func drawSweatDrop(cv *canvas.Canvas, p Params, cx, browY, eyeW, h int16, left bool) {
	offset := p.Sweat
	if p.SweatBoth && !left {
		offset = (p.Sweat + 50) % 100
	}

	dropX := cx - eyeW/2 + 2
	if !left {
		dropX = cx + eyeW/2 - 2
	}
	startY := browY - 8
	if startY < 2 {
		startY = 2
	}
	dropRange := h - 6 - startY
	if dropRange < 10 {
		dropRange = 10
	}
	dropY := startY + int16(int(offset)*int(dropRange)/100)

	dropW, dropTop, dropBot := int16(3), int16(7), int16(3)
	fillOpa := canvas.Opa70
	shineH := int16(4)
	shineW := int16(1)
	if p.SweatBoth {
		dropW, dropTop, dropBot = 4, 10, 4
		fillOpa = canvas.Opa90
		shineH = 5
		shineW = 2
	}

	cv.FillRoundRect(
		canvas.Rect{X1: dropX - dropW, Y1: dropY - dropTop, X2: dropX + dropW, Y2: dropY + dropBot},
		canvas.RectStyle{
			Fill: colSweat, FillOpa: fillOpa,
			Border: colSweatEdge, BorderW: 1, BorderOpa: canvas.Opa60,
			Radius: 6,
		})
	cv.FillRoundRect(
		canvas.Rect{X1: dropX - shineW, Y1: dropY - dropTop + 2, X2: dropX, Y2: dropY - dropTop + shineH},
		canvas.RectStyle{Fill: colWhite, FillOpa: canvas.Opa80, Radius: 3})
}

func drawEyeTear(cv *canvas.Canvas, p Params, cx, cy, eyeW, eyeH int16, left bool) {
	tearX := cx + eyeW/3
	trailTip := int16(1)
	if left {
		tearX = cx - eyeW/3
		trailTip = -1
	}
	tearY := cy + eyeH/2 + 5 + int16(p.Tear)

	cv.FillRoundRect(
		canvas.Rect{X1: tearX - 3, Y1: tearY - 5, X2: tearX + 3, Y2: tearY + 5},
		canvas.RectStyle{Fill: colTear, FillOpa: canvas.Opa80, Radius: 5})
	cv.Line(tearX, cy+eyeH/2+2, tearX+trailTip, tearY-5,
		canvas.LineStyle{Color: colTear, Width: 2, Opa: canvas.Opa40})
}
