package kawaiigen

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDisplay counts flushes; pixel contents are covered by the canvas and
// render package tests.
type testDisplay struct {
	w, h     int16
	displays int
}

func (d *testDisplay) Size() (int16, int16)              { return d.w, d.h }
func (d *testDisplay) SetPixel(_, _ int16, _ color.RGBA) {}
func (d *testDisplay) Display() error                    { d.displays++; return nil }

func newTestFace(t *testing.T) *Face {
	t.Helper()
	f, err := New(Config{
		Parent:        &testDisplay{w: 135, h: 135},
		TickInterval:  30 * time.Millisecond,
		BlinkInterval: 3 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, f.Init())
	return f
}

func ticks(t *testing.T, f *Face, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, f.Tick())
	}
}

func TestNewRequiresParent(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNewFillsDefaultIntervals(t *testing.T) {
	f, err := New(Config{Parent: &testDisplay{w: 64, h: 64}})
	require.NoError(t, err)
	assert.Equal(t, DefaultTickInterval, f.cfg.TickInterval)
	assert.Equal(t, DefaultBlinkInterval, f.cfg.BlinkInterval)
}

func TestGeometry(t *testing.T) {
	g := computeGeometry(135, 135)
	assert.Equal(t, int16(135), g.faceSize)
	assert.Equal(t, int16(60), g.eyeSide)
	assert.Equal(t, int16(60), g.mouthW)
	assert.Equal(t, int16(51), g.mouthH)
	assert.Equal(t, int16(16), g.eyeY)
	assert.Equal(t, int16(83), g.mouthY)
	// Eyes sit symmetrically about the face midline, a quarter eye apart.
	assert.Equal(t, int16(0), g.leftEyeX)
	assert.Equal(t, int16(74), g.rightEyeX)
	assert.Equal(t, int16(37), g.mouthX)
}

func TestGeometryUsesSmallerDimension(t *testing.T) {
	g := computeGeometry(320, 135)
	assert.Equal(t, int16(135), g.faceSize)
}

func TestInitDrawsOnce(t *testing.T) {
	d := &testDisplay{w: 135, h: 135}
	f, err := New(Config{Parent: d})
	require.NoError(t, err)
	require.NoError(t, f.Init())
	assert.Equal(t, 1, d.displays)
	assert.Equal(t, EmotionNeutral, f.CurrentEmotion())
}

func TestDoubleInitIsHarmless(t *testing.T) {
	f := newTestFace(t)
	assert.NoError(t, f.Init())
}

func TestInitUnusablySmallParent(t *testing.T) {
	f, err := New(Config{Parent: &testDisplay{w: 2, h: 2}})
	require.NoError(t, err)
	assert.Error(t, f.Init())
	assert.Nil(t, f.leftEye)
}

func TestImmediateSet(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionLove, false)

	p := ProfileOf(EmotionLove)
	assert.Equal(t, EmotionLove, f.CurrentEmotion())
	assert.Equal(t, uint8(100), f.progress)
	assert.Equal(t, p.base(), f.ch.base())
	assert.Equal(t, p.Blush, f.ch.blush)
	assert.Equal(t, p.Sparkle, f.ch.sparkle)
	assert.Equal(t, p.Heartbeat, f.ch.heart)
}

func TestSmoothTransitionConvergesInTenTicks(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)
	f.SetEmotion(EmotionSad, true)
	assert.Equal(t, uint8(0), f.progress)
	assert.Equal(t, EmotionHappy, f.CurrentEmotion())

	for i := 1; i <= 9; i++ {
		ticks(t, f, 1)
		assert.Equal(t, uint8(i*10), f.progress, "tick %d", i)
		assert.Equal(t, EmotionHappy, f.CurrentEmotion(), "tick %d", i)
	}
	ticks(t, f, 1)
	assert.Equal(t, uint8(100), f.progress)
	assert.Equal(t, EmotionSad, f.CurrentEmotion())
	assert.Equal(t, ProfileOf(EmotionSad).base(), f.ch.base())
	assert.Equal(t, uint8(0), f.ch.blush)
}

func TestRetargetMidTransitionBlendsFromResolved(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)
	f.SetEmotion(EmotionSad, true)
	ticks(t, f, 3)

	resolved := f.ch.base()
	f.SetEmotion(EmotionNeutral, true)
	assert.Equal(t, uint8(0), f.progress)
	assert.Equal(t, resolved, f.source)

	ticks(t, f, 1)
	assert.Equal(t, resolved.lerp(ProfileOf(EmotionNeutral), 10), f.ch.base())
}

func TestSmoothSetToCurrentSettledIsNoop(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionNeutral, true)
	assert.Equal(t, uint8(100), f.progress)
}

func TestInvalidEmotionIgnored(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionBlink, false)
	f.SetEmotion(Emotion(99), true)
	assert.Equal(t, EmotionNeutral, f.CurrentEmotion())
	assert.Equal(t, uint8(100), f.progress)
}

func TestBlinkCycle(t *testing.T) {
	f := newTestFace(t)
	require.Equal(t, uint8(100), f.ch.leftOpen)

	f.TriggerBlink()
	assert.True(t, f.Blinking())

	want := []uint8{60, 20, 20, 60}
	for i, w := range want {
		ticks(t, f, 1)
		o, ok := f.blink.openness()
		require.True(t, ok, "tick %d", i+1)
		assert.Equal(t, w, o, "tick %d", i+1)
		// The blended value underneath is never disturbed.
		assert.Equal(t, uint8(100), f.ch.leftOpen)
	}

	ticks(t, f, 1)
	assert.False(t, f.Blinking())
	assert.Equal(t, uint8(100), f.ch.leftOpen)
	assert.Equal(t, uint8(100), f.ch.rightOpen)
}

func TestTriggerBlinkWhileBlinkingIsNoop(t *testing.T) {
	f := newTestFace(t)
	f.TriggerBlink()
	ticks(t, f, 1)
	require.Equal(t, uint8(20), f.blink.phase)

	f.TriggerBlink()
	assert.Equal(t, uint8(20), f.blink.phase)
}

func TestAutoBlink(t *testing.T) {
	f, err := New(Config{
		Parent:        &testDisplay{w: 135, h: 135},
		TickInterval:  30 * time.Millisecond,
		BlinkInterval: 90 * time.Millisecond,
		AutoBlink:     true,
	})
	require.NoError(t, err)
	require.NoError(t, f.Init())

	blinked := false
	for i := 0; i < 10 && !blinked; i++ {
		ticks(t, f, 1)
		blinked = f.Blinking()
	}
	assert.True(t, blinked)
}

func TestAutoBlinkDisabled(t *testing.T) {
	f := newTestFace(t)
	f.SetAutoBlink(false)
	ticks(t, f, 200)
	assert.False(t, f.Blinking())
}

func TestTransitionAdvancesDuringBlink(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)
	f.SetEmotion(EmotionSad, true)
	f.TriggerBlink()
	ticks(t, f, 3)
	assert.True(t, f.Blinking())
	assert.Equal(t, uint8(30), f.progress)
}

func TestEyeOpennessClamping(t *testing.T) {
	f := newTestFace(t)
	f.SetEyeOpenness(150, -10)
	assert.Equal(t, uint8(100), f.ch.leftOpen)
	assert.Equal(t, uint8(0), f.ch.rightOpen)
}

func TestMouthShapeClamping(t *testing.T) {
	f := newTestFace(t)
	f.SetMouthShape(200)
	assert.Equal(t, int8(100), f.ch.mouth)
	f.SetMouthShape(-200)
	assert.Equal(t, int8(-100), f.ch.mouth)
}

func TestSettersBeforeInitAreNoops(t *testing.T) {
	f, err := New(Config{Parent: &testDisplay{w: 135, h: 135}})
	require.NoError(t, err)

	f.SetEmotion(EmotionHappy, false)
	f.SetEyeOpenness(50, 50)
	f.SetMouthShape(50)
	f.TriggerBlink()
	f.SetPosition(1, 2)
	require.NoError(t, f.Tick())
	assert.Equal(t, EmotionNeutral, f.CurrentEmotion())
}

func TestDeinitIsIdempotent(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)

	f.Deinit()
	f.Deinit()
	require.NoError(t, f.Tick())
	f.SetEmotion(EmotionSad, false)
	assert.Equal(t, EmotionNeutral, f.CurrentEmotion())

	// A deinitialized face can be brought back up.
	require.NoError(t, f.Init())
	assert.Equal(t, EmotionNeutral, f.CurrentEmotion())
}

func TestBoundsAndSetPosition(t *testing.T) {
	f := newTestFace(t)
	assert.Equal(t, image.Rect(0, 0, 135, 135), f.Bounds())

	f.SetPosition(10, 20)
	assert.Equal(t, image.Rect(10, 20, 145, 155), f.Bounds())
}

func TestLockFuncsWrapMutations(t *testing.T) {
	locks, unlocks := 0, 0
	f := newTestFace(t)
	f.SetLockFuncs(func() { locks++ }, func() { unlocks++ })

	ticks(t, f, 1)
	f.SetEmotion(EmotionHappy, false)
	assert.Equal(t, 2, locks)
	assert.Equal(t, locks, unlocks)

	f.SetLockFuncs(nil, nil)
	ticks(t, f, 1)
	assert.Equal(t, 2, locks)
}

func TestTickRedrawsParent(t *testing.T) {
	d := &testDisplay{w: 135, h: 135}
	f, err := New(Config{Parent: d})
	require.NoError(t, err)
	require.NoError(t, f.Init())

	before := d.displays
	require.NoError(t, f.Tick())
	require.NoError(t, f.Tick())
	assert.Greater(t, d.displays, before)
}

func TestPreviewReceivesFrames(t *testing.T) {
	d := &testDisplay{w: 135, h: 135}
	p := &testDisplay{w: 135, h: 135}
	f, err := New(Config{Parent: d, Preview: p})
	require.NoError(t, err)
	require.NoError(t, f.Init())
	assert.Equal(t, 1, p.displays)
}
