package mirror

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDisplay struct {
	w, h     int16
	last     [2]int16
	displays int
}

func (d *fakeDisplay) Size() (int16, int16) { return d.w, d.h }
func (d *fakeDisplay) SetPixel(x, y int16, _ color.RGBA) {
	d.last = [2]int16{x, y}
}
func (d *fakeDisplay) Display() error { d.displays++; return nil }

func TestMirrorFlipsHorizontally(t *testing.T) {
	d := &fakeDisplay{w: 64, h: 32}
	m := New(d)

	w, h := m.Size()
	assert.Equal(t, int16(64), w)
	assert.Equal(t, int16(32), h)

	m.SetPixel(0, 5, color.RGBA{})
	assert.Equal(t, [2]int16{63, 5}, d.last)

	m.SetPixel(63, 7, color.RGBA{})
	assert.Equal(t, [2]int16{0, 7}, d.last)
}

func TestMirrorPassesDisplayThrough(t *testing.T) {
	d := &fakeDisplay{w: 8, h: 8}
	m := New(d)
	assert.NoError(t, m.Display())
	assert.Equal(t, 1, d.displays)
}
