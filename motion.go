package kawaiigen

import "math"

// motion is one emotion's idle-motion generator. Implementations mutate the
// resolved channels in place, keyed off the face's monotonically increasing
// tick counter, and report whether a redraw is wanted.
//
// Pupil and bounce motion run on every tick. Overrides of the blendable
// channels gate on settled (transition finished), and openness overrides
// additionally gate on the blink override not being active.
type motion interface {
	step(c *channels, tick uint32, settled, blinking bool) bool
}

func sinT(tick uint32, rate float64) float64 {
	return math.Sin(float64(tick) * rate)
}

func cosT(tick uint32, rate float64) float64 {
	return math.Cos(float64(tick) * rate)
}

func absSinT(tick uint32, rate float64) float64 {
	return math.Abs(math.Sin(float64(tick) * rate))
}

// dec moves a counter toward zero without wrapping.
func dec(v, step uint8) uint8 {
	if v <= step {
		return 0
	}
	return v - step
}
