package kawaiigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileOfLove(t *testing.T) {
	p := ProfileOf(EmotionLove)
	assert.Equal(t, Profile{
		LeftEye:    95,
		RightEye:   95,
		Mouth:      80,
		LeftBrow:   3,
		RightBrow:  3,
		BrowHeight: -3,
		Blush:      90,
		Sparkle:    100,
		Heartbeat:  100,
	}, p)
}

func TestProfileOfNeutral(t *testing.T) {
	p := ProfileOf(EmotionNeutral)
	assert.Equal(t, uint8(100), p.LeftEye)
	assert.Equal(t, uint8(100), p.RightEye)
	assert.Equal(t, int8(0), p.Mouth)
	assert.Equal(t, int8(0), p.LeftBrow)
	assert.Equal(t, int8(0), p.RightBrow)
	assert.Equal(t, int8(0), p.BrowHeight)
	assert.Equal(t, uint8(0), p.Blush)
	assert.Equal(t, uint8(0), p.Sparkle)
	assert.Equal(t, uint8(0), p.Heartbeat)
}

func TestProfileOfIsPure(t *testing.T) {
	first := ProfileOf(EmotionAngry)
	mutated := first
	mutated.Mouth = 0
	mutated.Blush = 0
	assert.Equal(t, first, ProfileOf(EmotionAngry))
}

func TestProfileOfInvalid(t *testing.T) {
	assert.Equal(t, ProfileOf(EmotionNeutral), ProfileOf(EmotionBlink))
	assert.Equal(t, ProfileOf(EmotionNeutral), ProfileOf(Emotion(200)))
}

func TestEmotionStrings(t *testing.T) {
	for e := EmotionNeutral; e.valid(); e++ {
		require.NotEqual(t, "INVALID", e.String(), "emotion %d", e)
	}
	assert.Equal(t, "blink", EmotionBlink.String())
	assert.Equal(t, "INVALID", Emotion(200).String())
}

func TestEveryEmotionHasMotionAndProfile(t *testing.T) {
	for e := EmotionNeutral; e.valid(); e++ {
		require.NotNil(t, descriptors[e].newMotion, "emotion %v", e)
		require.NotNil(t, descriptors[e].newMotion(), "emotion %v", e)
		require.NotZero(t, ProfileOf(e).LeftEye, "emotion %v", e)
	}
}
