package kawaiigen

import "time"

// blinker runs the blink cycle. While a blink is active it supplies an
// eye-openness override; the blended openness underneath is never touched,
// so the face returns to exactly its pre-blink state when the cycle ends.
type blinker struct {
	active   bool
	phase    uint8  // 0..100, advances 20 per tick
	lastTick uint32 // tick of the last completed blink
}

func (b *blinker) trigger() {
	if b.active {
		return
	}
	b.active = true
	b.phase = 0
}

// step advances the cycle one tick. Reports whether the override changed.
func (b *blinker) step(tick uint32) bool {
	if !b.active {
		return false
	}
	b.phase += 20
	if b.phase >= 100 {
		b.phase = 0
		b.active = false
		b.lastTick = tick
	}
	return true
}

// openness returns the override value while a blink is in progress: closing
// on the first half of the cycle, reopening on the second.
func (b *blinker) openness() (uint8, bool) {
	if !b.active {
		return 0, false
	}
	if b.phase < 50 {
		return 100 - 2*b.phase, true
	}
	return 2 * (b.phase - 50), true
}

// due reports whether enough tick-time has passed since the last completed
// blink to schedule another.
func (b *blinker) due(tick uint32, interval, tickInterval time.Duration) bool {
	return time.Duration(tick-b.lastTick)*tickInterval > interval
}
