package kawaiigen

import (
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"
)

const (
	// DefaultTickInterval is the animation frame period Run uses when the
	// config does not override it.
	DefaultTickInterval = 30 * time.Millisecond
	// DefaultBlinkInterval is the idle time between automatic blinks.
	DefaultBlinkInterval = 3 * time.Second
)

// Config carries everything a Face needs from its host.
type Config struct {
	// Parent is the surface the face is composited onto. Required.
	Parent drivers.Displayer
	// Preview optionally receives a horizontally mirrored copy of every
	// frame, for a wearer-facing display.
	Preview drivers.Displayer

	// TickInterval is the frame period. It also converts tick counts to
	// elapsed time for auto-blink scheduling, so it should match the rate
	// the host actually calls Tick at.
	TickInterval time.Duration
	// BlinkInterval is the idle time between automatic blinks.
	BlinkInterval time.Duration
	// AutoBlink enables the automatic blink scheduler.
	AutoBlink bool

	// Logger for engine diagnostics. Nil disables logging.
	Logger *zerolog.Logger

	// Lock and Unlock, when both set, are called around every state
	// mutation so the host can share its UI lock with the engine.
	Lock   func()
	Unlock func()
}

// DefaultConfig returns a Config for the given parent surface with the
// default timings and auto-blink enabled.
func DefaultConfig(parent drivers.Displayer) Config {
	return Config{
		Parent:        parent,
		TickInterval:  DefaultTickInterval,
		BlinkInterval: DefaultBlinkInterval,
		AutoBlink:     true,
	}
}
