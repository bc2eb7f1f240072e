package main

import (
	"image"
	"image/color"
)

// surface is an RGBA-backed pixel surface for the face engine to draw
// into. Display is a no-op; the game uploads the image to the GPU each
// frame instead.
type surface struct {
	img  *image.RGBA
	w, h int16
}

func newSurface(w, h int) *surface {
	s := &surface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   int16(w),
		h:   int16(h),
	}
	s.clear()
	return s
}

func (s *surface) Size() (int16, int16) {
	return s.w, s.h
}

func (s *surface) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.img.SetRGBA(int(x), int(y), c)
}

func (s *surface) Display() error {
	return nil
}

func (s *surface) clear() {
	for i := range s.img.Pix {
		s.img.Pix[i] = 0xFF
	}
}
