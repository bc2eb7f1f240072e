package kawaiigen

// channels is the fully resolved parameter vector the renderer consumes:
// the six blendable base channels, the pupil offsets and bounce the idle
// motions drive directly, and the secondary-effect counters.
type channels struct {
	leftOpen   uint8
	rightOpen  uint8
	mouth      int8
	leftBrow   int8
	rightBrow  int8
	browHeight int8

	pupilX int8
	pupilY int8
	bounce int8

	blush   uint8
	sparkle uint8
	heart   uint8

	tear    uint8 // falling tear offset, 0..80
	sweat   uint8 // sweat drop offset, 0..100
	diamond uint8 // O-mouth pulsation, 0 or 50..100
}

// baseVector is the blendable subset of channels. The transition blender
// interpolates these six independently; everything else in channels is
// owned by the blink scheduler, the idle motions, or the decay step.
type baseVector struct {
	leftOpen   uint8
	rightOpen  uint8
	mouth      int8
	leftBrow   int8
	rightBrow  int8
	browHeight int8
}

func (c *channels) base() baseVector {
	return baseVector{
		leftOpen:   c.leftOpen,
		rightOpen:  c.rightOpen,
		mouth:      c.mouth,
		leftBrow:   c.leftBrow,
		rightBrow:  c.rightBrow,
		browHeight: c.browHeight,
	}
}

func (c *channels) setBase(b baseVector) {
	c.leftOpen = b.leftOpen
	c.rightOpen = b.rightOpen
	c.mouth = b.mouth
	c.leftBrow = b.leftBrow
	c.rightBrow = b.rightBrow
	c.browHeight = b.browHeight
}

// lerp interpolates from b toward the target profile at the given progress
// (0..100), using truncating integer arithmetic on every channel.
func (b baseVector) lerp(target Profile, progress uint8) baseVector {
	p := int(progress)
	return baseVector{
		leftOpen:   uint8(lerpInt(int(b.leftOpen), int(target.LeftEye), p)),
		rightOpen:  uint8(lerpInt(int(b.rightOpen), int(target.RightEye), p)),
		mouth:      int8(lerpInt(int(b.mouth), int(target.Mouth), p)),
		leftBrow:   int8(lerpInt(int(b.leftBrow), int(target.LeftBrow), p)),
		rightBrow:  int8(lerpInt(int(b.rightBrow), int(target.RightBrow), p)),
		browHeight: int8(lerpInt(int(b.browHeight), int(target.BrowHeight), p)),
	}
}

func lerpInt(from, to, progress int) int {
	return from + (to-from)*progress/100
}
