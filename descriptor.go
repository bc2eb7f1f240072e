package kawaiigen

// descriptor bundles everything emotion-specific: the idle-motion
// constructor, which secondary counters that motion modulates itself, the
// drip ramps, and the overlay flags handed to the renderer. The engine
// dispatches on this table instead of switching on the emotion.
type descriptor struct {
	newMotion func() motion

	// Counters the motion drives every tick. Anything not owned here
	// decays centrally toward zero.
	ownsSparkle bool
	ownsBlush   bool
	ownsHeart   bool

	tears     bool  // falling-tear ramp 0..80, step 2
	sweatRate uint8 // sweat-drop ramp step per tick, 0 for none
	diamond   bool  // O-mouth pulsation 50..100, step 8

	heartEyes bool
	teeth     bool
	eyeTears  bool
	sweatBoth bool // drop on both eyes, half a period apart
}

var descriptors = [NumEmotions]descriptor{
	EmotionNeutral: {newMotion: func() motion { return &neutralMotion{} }},
	EmotionHappy: {
		newMotion:   func() motion { return happyMotion{} },
		ownsSparkle: true,
		ownsBlush:   true,
	},
	EmotionWorried: {newMotion: func() motion { return worriedMotion{} }},
	EmotionSad: {
		newMotion: func() motion { return sadMotion{} },
		tears:     true,
	},
	EmotionSurprised: {
		newMotion: func() motion { return surprisedMotion{} },
		diamond:   true,
	},
	EmotionAngry: {
		newMotion: func() motion { return angryMotion{} },
		ownsBlush: true,
	},
	EmotionSleepy: {
		newMotion: func() motion { return sleepyMotion{} },
		sweatRate: 1,
	},
	EmotionWink: {
		newMotion:   func() motion { return winkMotion{} },
		ownsSparkle: true,
	},
	EmotionLove: {
		newMotion:   func() motion { return loveMotion{} },
		ownsSparkle: true,
		ownsBlush:   true,
		ownsHeart:   true,
		heartEyes:   true,
	},
	EmotionPlayful: {
		newMotion:   func() motion { return playfulMotion{} },
		ownsSparkle: true,
	},
	EmotionSilly: {
		newMotion:   func() motion { return sillyMotion{} },
		ownsSparkle: true,
	},
	EmotionSmirk: {
		newMotion:   func() motion { return smirkMotion{} },
		ownsSparkle: true,
	},
	EmotionCry: {
		newMotion: func() motion { return cryMotion{} },
		ownsBlush: true,
		tears:     true,
		eyeTears:  true,
	},
	EmotionWorkingHard: {
		newMotion: func() motion { return workingMotion{} },
		sweatRate: 3,
		sweatBoth: true,
		teeth:     true,
	},
	EmotionExcited: {
		newMotion:   func() motion { return excitedMotion{} },
		ownsSparkle: true,
		ownsBlush:   true,
	},
	EmotionConfused: {newMotion: func() motion { return confusedMotion{} }},
	EmotionCool: {
		newMotion:   func() motion { return coolMotion{} },
		ownsSparkle: true,
	},
}
