package kawaiigen

// Emotion identifies one of the selectable facial expressions.
type Emotion uint8

const (
	EmotionNeutral Emotion = iota
	EmotionHappy
	EmotionWorried
	EmotionSad
	EmotionSurprised
	EmotionAngry
	EmotionSleepy
	EmotionWink
	EmotionLove
	EmotionPlayful
	EmotionSilly
	EmotionSmirk
	EmotionCry
	EmotionWorkingHard
	EmotionExcited
	EmotionConfused
	EmotionCool
	// EmotionBlink is the transient eye-close override. It is not selectable:
	// SetEmotion ignores it and it has no profile of its own.
	EmotionBlink
)

// NumEmotions is the number of selectable emotions.
const NumEmotions = int(EmotionBlink)

func (e Emotion) String() string {
	switch e {
	case EmotionNeutral:
		return "neutral"
	case EmotionHappy:
		return "happy"
	case EmotionWorried:
		return "worried"
	case EmotionSad:
		return "sad"
	case EmotionSurprised:
		return "surprised"
	case EmotionAngry:
		return "angry"
	case EmotionSleepy:
		return "sleepy"
	case EmotionWink:
		return "wink"
	case EmotionLove:
		return "love"
	case EmotionPlayful:
		return "playful"
	case EmotionSilly:
		return "silly"
	case EmotionSmirk:
		return "smirk"
	case EmotionCry:
		return "cry"
	case EmotionWorkingHard:
		return "working hard"
	case EmotionExcited:
		return "excited"
	case EmotionConfused:
		return "confused"
	case EmotionCool:
		return "cool"
	case EmotionBlink:
		return "blink"
	default:
		return "INVALID"
	}
}

// valid reports whether e names a selectable emotion.
func (e Emotion) valid() bool {
	return e < EmotionBlink
}
