package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajanata/kawaiigen/internal/canvas"
)

// Eye buffers are square; 60 matches a 135px face. The mouth buffer is
// wider than tall.
func eyeCanvas(t *testing.T) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(60, 60)
	require.NoError(t, err)
	return c
}

func mouthCanvas(t *testing.T) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(60, 51)
	require.NoError(t, err)
	return c
}

func TestOpenEyeOutlineAndPupil(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{}, 100, true)

	// Eye center: pupil black. eyeW=45, center (30, 36).
	center := c.At(30, 36)
	require.Less(t, center.R, uint8(40))
	require.Less(t, center.G, uint8(40))

	// Top of the eye outline: black border at y = 36-22.
	top := c.At(30, 14)
	require.Less(t, top.R, uint8(40))

	// Outside the eye: background white.
	corner := c.At(1, 58)
	require.Greater(t, corner.R, uint8(200))
}

func TestClosedEyeLashLine(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{}, 10, true)

	// Lash line runs through (30, 36); no eye white above it.
	require.Less(t, c.At(30, 36).R, uint8(40))
	require.Greater(t, c.At(30, 25).R, uint8(200))
}

func TestLowOpennessSkipsIris(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{}, 25, true)

	// Openness 25 draws the outline but no iris: the center stays inside
	// the (clamped 8px tall) eye white or its border, never iris blue.
	center := c.At(30, 36)
	require.False(t, center.B > 200 && center.R < 100, "unexpected iris at center: %v", center)
}

func TestHeartEye(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{HeartEyes: true}, 95, true)

	got := c.At(30, 38)
	require.Greater(t, got.R, uint8(200))
	require.Less(t, got.G, uint8(120))
}

func TestHeartEyeClosedDuringBlink(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{HeartEyes: true}, 20, true)

	// At openness 20 the lash line wins over the heart.
	require.Less(t, c.At(30, 36).R, uint8(40))
}

func TestBrowRendersAboveEye(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{}, 100, true)

	// Brow line at browY = 36 - 22 - 6 = 8, brown.
	got := c.At(30, 8)
	require.Less(t, got.R, uint8(150))
	require.Greater(t, got.R, uint8(40))
}

func TestSweatDropLeft(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{SweatLeft: true, Sweat: 50}, 100, true)

	// Drop centered at x = 30-22+2 = 10; its left flank at column 7 falls
	// outside the eye outline, over plain background.
	found := false
	for y := int16(0); y < 60 && !found; y++ {
		got := c.At(7, y)
		if got.B > 200 && got.R < 180 && got.G > 150 {
			found = true
		}
	}
	require.True(t, found, "no sweat drop pixel found in column 7")
}

func TestEyeTearBelowEye(t *testing.T) {
	c := eyeCanvas(t)
	DrawEye(c, Params{EyeTears: true, Tear: 0}, 100, true)

	// Tear centered at (30-15, 63); only its top rows fit the buffer.
	found := false
	for y := int16(40); y < 60 && !found; y++ {
		p := c.At(15, y)
		if p.B > 200 && p.R < 200 && p.G > 150 {
			found = true
		}
	}
	require.True(t, found, "no tear pixel found in column 15")
}

func TestMouthBarNeutral(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{}, 0)

	// Bar spans y 25..39 at the center column, dark red fill.
	got := c.At(30, 30)
	require.Greater(t, got.R, uint8(150))
	require.Less(t, got.G, uint8(120))

	require.Greater(t, c.At(30, 5).R, uint8(200))
}

func TestMouthWideOpen(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{}, 90)

	got := c.At(30, 29)
	require.Greater(t, got.R, uint8(180))
	require.Less(t, got.G, uint8(110))
}

func TestMouthTongue(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{}, 110)

	// Tongue pink sits below the mouth midline.
	found := false
	for y := int16(20); y < 51 && !found; y++ {
		p := c.At(30, y)
		if p.R > 220 && p.G > 110 && p.G < 180 && p.B > 120 {
			found = true
		}
	}
	require.True(t, found, "no tongue pixel found")
}

func TestMouthOMouth(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{}, 50)

	// Oval at (30, clamped center + offset), muted red.
	got := c.At(30, 34)
	require.Greater(t, got.R, uint8(150))
	require.Less(t, got.G, uint8(120))
}

func TestMouthDiamondStretch(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{Diamond: 100}, 50)

	// With full pulsation the arms reach 11px from the center.
	got := c.At(30+9, 34)
	require.Greater(t, got.R, uint8(100))
	require.Less(t, got.G, uint8(120))
}

func TestMouthFrown(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{}, -75)

	got := c.At(30, 20)
	require.Greater(t, got.R, uint8(130))
	require.Less(t, got.G, uint8(90))
}

func TestMouthGrittedTeeth(t *testing.T) {
	c := mouthCanvas(t)
	DrawMouth(c, Params{Teeth: true}, 0)

	// Teeth fill is near-white; column 26 avoids the separator lines at
	// x 22, 30, 37.
	got := c.At(26, 25)
	require.Greater(t, got.R, uint8(200))
	require.Greater(t, got.G, uint8(200))
	require.Greater(t, got.B, uint8(180))
}

func TestMouthCornerTearsClipSafely(t *testing.T) {
	// The corner tears land at cx +/- (mouthW/2 + 10), past the buffer
	// edges at this size; drawing them must clip, not write out of range.
	c := mouthCanvas(t)
	DrawMouth(c, Params{Tear: 80}, -60)
	require.Greater(t, c.At(59, 0).R, uint8(200))
}
