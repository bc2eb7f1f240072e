package kawaiigen

import "math"

// Per-emotion idle motions. Angular rates are radians per tick; amplitudes
// are channel units. Sparkle/blush/heartbeat writes here mark the counter
// as owned by the emotion in its descriptor, which exempts it from the
// central decay step.

type neutralMotion struct {
	// idle advances only while settled so the gaze/brow/mouth scripts
	// always start from rest after a transition.
	idle uint32
}

func (m *neutralMotion) step(c *channels, _ uint32, settled, _ bool) bool {
	if settled {
		m.idle++
	}
	c.bounce = int8(1.2 * sinT(m.idle, 0.05))

	// Slow gaze script: glance right, re-center, glance down-left, re-center.
	gp := m.idle % 420
	switch {
	case gp < 160:
		c.pupilX, c.pupilY = 0, 0
	case gp < 195:
		c.pupilX = int8(float64(gp-160) * 7.0 / 35.0)
		c.pupilY = 0
	case gp < 240:
		c.pupilX, c.pupilY = 7, 0
	case gp < 275:
		c.pupilX = int8(7 - float64(gp-240)*7.0/35.0)
		c.pupilY = 0
	case gp < 340:
		c.pupilX, c.pupilY = 0, 0
	case gp < 368:
		f := float64(gp-340) / 28.0
		c.pupilX = int8(-5 * f)
		c.pupilY = int8(5 * f)
	case gp < 390:
		c.pupilX, c.pupilY = -5, 5
	default:
		f := 1 - float64(gp-390)/30.0
		c.pupilX = int8(-5 * f)
		c.pupilY = int8(5 * f)
	}

	if settled {
		// Occasional brow raise and mouth pulse, triangular envelopes.
		bp := m.idle % 280
		if bp >= 230 {
			var i float64
			if bp < 255 {
				i = float64(bp-230) / 25.0
			} else {
				i = float64(280-bp) / 25.0
			}
			c.leftBrow = int8(8 * i)
			c.rightBrow = int8(-2 * i)
			c.browHeight = int8(-4 * i)
		} else {
			c.leftBrow, c.rightBrow, c.browHeight = 0, 0, 0
		}

		sp := m.idle % 360
		if sp >= 300 {
			var i float64
			if sp < 330 {
				i = float64(sp-300) / 30.0
			} else {
				i = float64(360-sp) / 30.0
			}
			c.mouth = int8(14 * i)
		} else {
			c.mouth = 0
		}
	}
	return m.idle%2 == 0
}

type happyMotion struct{}

func (happyMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	a := float64(tick%80) * 0.1572
	c.pupilX = int8(7 * math.Cos(a))
	c.pupilY = int8(4 * math.Sin(a))
	c.bounce = int8(3.5 * sinT(tick, 0.28))
	if settled && !blinking {
		open := uint8(87 + 13*absSinT(tick, 0.28))
		c.leftOpen, c.rightOpen = open, open
	}
	c.sparkle = uint8(65 + 35*absSinT(tick, 0.20))
	c.blush = uint8(72 + 18*absSinT(tick, 0.13))
	if settled {
		c.mouth = int8(87 + 8*absSinT(tick, 0.28))
	}
	return tick%2 == 0
}

type worriedMotion struct{}

func (worriedMotion) step(c *channels, tick uint32, settled, _ bool) bool {
	c.pupilX = int8(5 * sinT(tick, 0.06))
	c.pupilY = int8(1 * sinT(tick, 0.09))
	c.bounce = int8(1.2*sinT(tick, 0.10) + 0.8*sinT(tick, 0.23))
	if settled {
		wave := absSinT(tick, 0.17)
		c.leftBrow = int8(16 + 7*wave)
		c.rightBrow = c.leftBrow
		c.browHeight = int8(-6 - 4*wave)
		c.mouth = int8(22 + 12*absSinT(tick, 0.13))
	}
	return tick%4 == 0 || tick%3 == 0
}

type sadMotion struct{}

func (sadMotion) step(c *channels, tick uint32, _, _ bool) bool {
	c.pupilX = 0
	c.pupilY = int8(3 + 3*absSinT(tick, 0.08))
	c.bounce = int8(1.5 * sinT(tick, 0.06))
	return tick%4 == 0
}

type surprisedMotion struct{}

func (surprisedMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	c.pupilX, c.pupilY = 0, -8
	c.bounce = int8(tick%4) - 2
	if settled && !blinking {
		open := uint8(93 + 7*absSinT(tick, 0.4))
		c.leftOpen, c.rightOpen = open, open
	}
	return tick%2 == 0
}

type angryMotion struct{}

func (angryMotion) step(c *channels, tick uint32, settled, _ bool) bool {
	c.pupilX, c.pupilY = 0, 0
	c.blush = uint8(40 + 28*absSinT(tick, 0.3))
	if settled {
		c.mouth = int8(-42 + 8*sinT(tick, 0.5))
		shake := 5 * sinT(tick, 0.4)
		c.leftBrow = int8(22 + shake)
		c.rightBrow = int8(-22 - shake)
	}
	if tick%8 < 2 {
		c.bounce = 1
	} else {
		c.bounce = 0
	}
	return tick%2 == 0
}

type sleepyMotion struct{}

func (sleepyMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	c.pupilX, c.pupilY = 0, 5
	c.bounce = int8(3 * sinT(tick, 0.04))
	if settled && !blinking {
		open := 35 - int(20*absSinT(tick, 0.03))
		if open < 10 {
			open = 10
		}
		c.leftOpen, c.rightOpen = uint8(open), uint8(open)
	}
	return tick%3 == 0
}

type winkMotion struct{}

func (winkMotion) step(c *channels, tick uint32, _, _ bool) bool {
	c.pupilX, c.pupilY = 5, 0
	c.sparkle = uint8(42 + 38*absSinT(tick, 0.2))
	c.bounce = int8(1.5 * sinT(tick, 0.25))
	return tick%3 == 0
}

type loveMotion struct{}

func (loveMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	dirty := halfOrbitPupil(c, tick)
	c.bounce = int8(2 * sinT(tick, 0.12))
	if settled && !blinking {
		open := uint8(88 + 12*absSinT(tick, 0.15))
		c.leftOpen, c.rightOpen = open, open
	}
	c.sparkle = uint8(72 + 28*absSinT(tick, 0.25))
	c.heart = uint8(65 + 35*absSinT(tick, 0.20))
	c.blush = uint8(80 + 15*absSinT(tick, 0.15))
	return dirty || tick%2 == 0
}

type playfulMotion struct{}

func (playfulMotion) step(c *channels, tick uint32, settled, _ bool) bool {
	dirty := halfOrbitPupil(c, tick)
	if settled {
		c.mouth = int8(105 + 10*sinT(tick, 0.35))
	}
	c.sparkle = uint8(62 + 28*absSinT(tick, 0.28))
	c.bounce = int8(2.5 * sinT(tick, 0.30))
	return dirty || tick%2 == 0
}

// halfOrbitPupil sweeps the pupils around a half circle, then lets them
// decay back to center for the rest of the period.
func halfOrbitPupil(c *channels, tick uint32) bool {
	p := tick % 100
	if p < 50 {
		a := float64(p) * 0.125
		c.pupilX = int8(6 * math.Cos(a))
		c.pupilY = int8(4 * math.Sin(a))
		return tick%2 == 0
	}
	c.pupilX = int8(float64(c.pupilX) * 0.8)
	c.pupilY = int8(float64(c.pupilY) * 0.8)
	return tick%3 == 0
}

type sillyMotion struct{}

func (sillyMotion) step(c *channels, tick uint32, _, _ bool) bool {
	if (tick/5)%2 == 1 {
		c.pupilX = 10
	} else {
		c.pupilX = -10
	}
	c.pupilY = 0
	c.bounce = int8(3.5 * sinT(tick, 0.25))
	c.sparkle = uint8(38 + 37*absSinT(tick, 0.30))
	return tick%5 == 0 || tick%2 == 0
}

type smirkMotion struct{}

func (smirkMotion) step(c *channels, tick uint32, settled, _ bool) bool {
	c.pupilX = int8(3 + 4*sinT(tick, 0.07))
	c.pupilY = 0
	if settled {
		c.leftBrow = int8(12 + 8*sinT(tick, 0.10))
		c.browHeight = int8(-5 + 4*sinT(tick, 0.10))
	}
	c.sparkle = uint8(25 + 30*absSinT(tick, 0.15))
	c.bounce = int8(sinT(tick, 0.10))
	return tick%3 == 0
}

type cryMotion struct{}

func (cryMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	c.pupilX, c.pupilY = 0, 0
	c.bounce = int8(2 * sinT(tick, 0.6))
	if settled && !blinking {
		open := 65 - int(20*absSinT(tick, 0.3))
		if open < 30 {
			open = 30
		}
		c.leftOpen, c.rightOpen = uint8(open), uint8(open)
	}
	c.blush = uint8(27 + 18*absSinT(tick, 0.3))
	return tick%2 == 0
}

type workingMotion struct{}

func (workingMotion) step(c *channels, tick uint32, _, _ bool) bool {
	c.pupilX, c.pupilY = 0, 4
	if tick%6 < 3 {
		c.bounce = 1
	} else {
		c.bounce = -1
	}
	return tick%6 == 0
}

type excitedMotion struct{}

func (excitedMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	if (tick/3)%2 == 1 {
		c.pupilX = 9
	} else {
		c.pupilX = -9
	}
	if (tick/5)%2 == 1 {
		c.pupilY = 7
	} else {
		c.pupilY = -7
	}
	c.bounce = int8(3.5 * sinT(tick, 0.55))
	if settled && !blinking {
		open := uint8(90 + 10*absSinT(tick, 0.55))
		c.leftOpen, c.rightOpen = open, open
	}
	c.sparkle = uint8(80 + 20*absSinT(tick, 0.40))
	c.blush = uint8(75 + 20*absSinT(tick, 0.20))
	return tick%3 == 0 || tick%2 == 0
}

type confusedMotion struct{}

func (confusedMotion) step(c *channels, tick uint32, settled, _ bool) bool {
	c.pupilX = int8(7 * cosT(tick, 0.03))
	c.pupilY = int8(5 * sinT(tick, 0.05))
	c.bounce = int8(2*sinT(tick, 0.07) + 1*sinT(tick, 0.19))
	if settled {
		w := sinT(tick, 0.06)
		c.leftBrow = int8(-18 + 12*w)
		c.rightBrow = int8(8 - 6*w)
		c.browHeight = int8(-3 - 4*math.Abs(w))
	}
	return tick%2 == 0
}

type coolMotion struct{}

func (coolMotion) step(c *channels, tick uint32, settled, blinking bool) bool {
	// Slow sideways glance: sweep out, hold, sweep back, rest.
	cp := tick % 240
	switch {
	case cp < 60:
		c.pupilX = int8(float64(cp) * 8.0 / 60.0)
	case cp < 120:
		c.pupilX = 8
	case cp < 180:
		c.pupilX = int8(8 - float64(cp-120)*8.0/60.0)
	default:
		c.pupilX = 0
	}
	c.pupilY = 0
	c.bounce = int8(1.5 * sinT(tick, 0.04))
	c.sparkle = uint8(15 + 30*absSinT(tick, 0.08))
	if settled && !blinking {
		squint := int(8 * absSinT(tick, 0.05))
		if squint > 38 {
			squint = 38
		}
		open := uint8(48 - squint)
		c.leftOpen, c.rightOpen = open, open
	}
	return tick%3 == 0
}
