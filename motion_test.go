package kawaiigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTearRampAndWrap(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionCry, false)

	for i := 1; i <= 40; i++ {
		ticks(t, f, 1)
		require.Equal(t, uint8(i*2), f.ch.tear, "tick %d", i)
	}
	ticks(t, f, 1)
	assert.Equal(t, uint8(0), f.ch.tear)
}

func TestTearDecaysAfterEmotionChange(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionCry, false)
	ticks(t, f, 5)
	require.Equal(t, uint8(10), f.ch.tear)

	f.SetEmotion(EmotionNeutral, false)
	ticks(t, f, 1)
	assert.Equal(t, uint8(6), f.ch.tear)
	ticks(t, f, 2)
	assert.Equal(t, uint8(0), f.ch.tear)
}

func TestSweatRates(t *testing.T) {
	f := newTestFace(t)

	f.SetEmotion(EmotionWorkingHard, false)
	ticks(t, f, 4)
	assert.Equal(t, uint8(12), f.ch.sweat)

	f.SetEmotion(EmotionSleepy, false)
	start := f.ch.sweat
	ticks(t, f, 4)
	assert.Equal(t, start+4, f.ch.sweat)
}

func TestDiamondPulsesBetween50And100(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionSurprised, false)

	hit100 := false
	for i := 0; i < 40; i++ {
		ticks(t, f, 1)
		require.GreaterOrEqual(t, f.ch.diamond, uint8(50), "tick %d", i+1)
		require.LessOrEqual(t, f.ch.diamond, uint8(100), "tick %d", i+1)
		if f.ch.diamond == 100 {
			hit100 = true
		}
	}
	assert.True(t, hit100)

	f.SetEmotion(EmotionNeutral, false)
	ticks(t, f, 13)
	assert.Equal(t, uint8(0), f.ch.diamond)
}

func TestHeartbeatDecaysOutsideLove(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)
	require.Equal(t, uint8(40), f.ch.heart)

	ticks(t, f, 1)
	assert.Equal(t, uint8(35), f.ch.heart)
	ticks(t, f, 7)
	assert.Equal(t, uint8(0), f.ch.heart)
}

func TestSparkleDecaysWhenUnowned(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionSurprised, false)
	require.Equal(t, uint8(60), f.ch.sparkle)

	ticks(t, f, 1)
	assert.Equal(t, uint8(58), f.ch.sparkle)
	ticks(t, f, 29)
	assert.Equal(t, uint8(0), f.ch.sparkle)
}

func TestLoveModulatesItsOwnEffects(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionLove, false)
	ticks(t, f, 5)
	// The love motion keeps all three counters alive instead of letting
	// them decay.
	assert.GreaterOrEqual(t, f.ch.heart, uint8(65))
	assert.GreaterOrEqual(t, f.ch.sparkle, uint8(72))
	assert.GreaterOrEqual(t, f.ch.blush, uint8(80))
}

func TestNeutralGazeScript(t *testing.T) {
	f := newTestFace(t)

	var minX, maxX int8
	for i := 0; i < 420; i++ {
		ticks(t, f, 1)
		if f.ch.pupilX < minX {
			minX = f.ch.pupilX
		}
		if f.ch.pupilX > maxX {
			maxX = f.ch.pupilX
		}
		if i < 150 {
			require.Equal(t, int8(0), f.ch.pupilX, "tick %d", i+1)
		}
	}
	assert.GreaterOrEqual(t, maxX, int8(6))
	assert.LessOrEqual(t, minX, int8(-4))
}

func TestNeutralIdleFreezesDuringTransition(t *testing.T) {
	f := newTestFace(t)
	m := f.motions[EmotionNeutral].(*neutralMotion)
	ticks(t, f, 5)
	require.Equal(t, uint32(5), m.idle)

	f.SetEmotion(EmotionNeutral, false)
	f.SetEmotion(EmotionHappy, true)
	ticks(t, f, 3)
	// Mid-transition the neutral script must not advance.
	assert.Equal(t, uint32(5), m.idle)
}

func TestHappyOpennessGatesOnBlink(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionHappy, false)
	f.TriggerBlink()
	ticks(t, f, 2)
	// While blinking, the stored openness stays at the profile value.
	assert.Equal(t, uint8(96), f.ch.leftOpen)

	ticks(t, f, 3) // blink finishes
	ticks(t, f, 1)
	assert.GreaterOrEqual(t, f.ch.leftOpen, uint8(87))
}

func TestSurprisedPupilsAndBounce(t *testing.T) {
	f := newTestFace(t)
	f.SetEmotion(EmotionSurprised, false)
	ticks(t, f, 1)
	assert.Equal(t, int8(0), f.ch.pupilX)
	assert.Equal(t, int8(-8), f.ch.pupilY)
	assert.GreaterOrEqual(t, f.ch.bounce, int8(-2))
	assert.LessOrEqual(t, f.ch.bounce, int8(1))
}

func TestBounceStaysSmall(t *testing.T) {
	f := newTestFace(t)
	for e := EmotionNeutral; e.valid(); e++ {
		f.SetEmotion(e, false)
		for i := 0; i < 50; i++ {
			ticks(t, f, 1)
			require.GreaterOrEqual(t, f.ch.bounce, int8(-4), "emotion %v", e)
			require.LessOrEqual(t, f.ch.bounce, int8(4), "emotion %v", e)
		}
	}
}
