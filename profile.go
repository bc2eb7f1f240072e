package kawaiigen

// Profile is the base parameter set for one emotion: the six blendable
// channels plus the baseline levels for the secondary effects. Openness is
// 0 (closed) to 100 (wide open); mouth curve is -100 (deep frown) to 110
// (widest grin); brow angles are degrees, positive tilting the inner end
// down on the left side and up on the right.
type Profile struct {
	LeftEye    uint8
	RightEye   uint8
	Mouth      int8
	LeftBrow   int8
	RightBrow  int8
	BrowHeight int8

	Blush     uint8
	Sparkle   uint8
	Heartbeat uint8
}

var profiles = [NumEmotions]Profile{
	EmotionNeutral:     {LeftEye: 100, RightEye: 100},
	EmotionHappy:       {LeftEye: 96, RightEye: 96, Mouth: 90, LeftBrow: -4, RightBrow: -4, BrowHeight: -5, Blush: 82, Sparkle: 90, Heartbeat: 40},
	EmotionWorried:     {LeftEye: 78, RightEye: 78, Mouth: 28, LeftBrow: 18, RightBrow: 18, BrowHeight: -7, Blush: 20},
	EmotionSad:         {LeftEye: 60, RightEye: 60, Mouth: -75, LeftBrow: -15, RightBrow: 15, BrowHeight: 3},
	EmotionSurprised:   {LeftEye: 100, RightEye: 100, Mouth: 50, BrowHeight: -10, Blush: 20, Sparkle: 60},
	EmotionAngry:       {LeftEye: 75, RightEye: 75, Mouth: -45, LeftBrow: 25, RightBrow: -25, BrowHeight: 5, Blush: 50},
	EmotionSleepy:      {LeftEye: 35, RightEye: 35, Mouth: -5, LeftBrow: -5, RightBrow: 5, BrowHeight: 8, Blush: 30},
	EmotionWink:        {LeftEye: 85, RightEye: 15, Mouth: 70, LeftBrow: 8, RightBrow: -8, BrowHeight: -2, Blush: 60, Sparkle: 75},
	EmotionLove:        {LeftEye: 95, RightEye: 95, Mouth: 80, LeftBrow: 3, RightBrow: 3, BrowHeight: -3, Blush: 90, Sparkle: 100, Heartbeat: 100},
	EmotionPlayful:     {LeftEye: 78, RightEye: 80, Mouth: 110, LeftBrow: 12, RightBrow: -8, Blush: 45, Sparkle: 85},
	EmotionSilly:       {LeftEye: 95, RightEye: 92, Mouth: 75, LeftBrow: 25, RightBrow: -18, BrowHeight: 4, Blush: 55, Sparkle: 65},
	EmotionSmirk:       {LeftEye: 80, RightEye: 75, Mouth: 40, LeftBrow: 15, RightBrow: -5, BrowHeight: -5, Blush: 25, Sparkle: 50},
	EmotionCry:         {LeftEye: 70, RightEye: 70, Mouth: -70, LeftBrow: -15, RightBrow: 15, BrowHeight: 8, Blush: 35},
	EmotionWorkingHard: {LeftEye: 65, RightEye: 65, Mouth: 0, LeftBrow: 22, RightBrow: -22, BrowHeight: 4, Blush: 60},
	EmotionExcited:     {LeftEye: 100, RightEye: 100, Mouth: 95, LeftBrow: 8, RightBrow: 8, BrowHeight: -8, Blush: 85, Sparkle: 100, Heartbeat: 80},
	EmotionConfused:    {LeftEye: 88, RightEye: 75, Mouth: 12, LeftBrow: -18, RightBrow: 8, BrowHeight: -3, Blush: 15},
	EmotionCool:        {LeftEye: 48, RightEye: 48, Mouth: 35, LeftBrow: 5, RightBrow: -3, BrowHeight: -4, Blush: 10, Sparkle: 40},
}

// ProfileOf returns the base parameter set for e. The lookup is pure: it
// never touches face state. Baseline Blush/Sparkle/Heartbeat levels take
// effect only when an emotion becomes current, which the engine performs as
// a separate step. Out-of-range emotions get the neutral profile.
func ProfileOf(e Emotion) Profile {
	if !e.valid() {
		return profiles[EmotionNeutral]
	}
	return profiles[e]
}

// base extracts the blendable subset of the profile.
func (p Profile) base() baseVector {
	return baseVector{
		leftOpen:   p.LeftEye,
		rightOpen:  p.RightEye,
		mouth:      p.Mouth,
		leftBrow:   p.LeftBrow,
		rightBrow:  p.RightBrow,
		browHeight: p.BrowHeight,
	}
}
