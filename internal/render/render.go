// Package render draws the eye and mouth buffers from a resolved animation
// snapshot. It knows nothing about emotions: emotion-specific overlays
// arrive as flags in Params, everything else is plain channel values.
package render

import "image/color"

// Params is the blended, clamped animation state for one frame.
type Params struct {
	Bounce     int16
	LeftBrow   int16 // degrees, inner end down when positive
	RightBrow  int16
	BrowHeight int16
	PupilX     int16
	PupilY     int16

	Blush   uint8 // 0..100
	Sparkle uint8 // 0..100
	Tear    uint8 // falling tear offset, 0..80
	Sweat   uint8 // sweat drop offset, 0..100
	Diamond uint8 // O-mouth pulsation, 0..100

	HeartEyes bool // heart icon instead of the open eye
	Teeth     bool // gritted-teeth mouth override
	EyeTears  bool // tear streaming below each eye
	SweatBoth bool // sweat drop on both eyes, half a period apart
	SweatLeft bool // sweat drop on the left eye only
}

var (
	colBG         = color.RGBA{255, 255, 255, 255}
	colBlack      = color.RGBA{0, 0, 0, 255}
	colWhite      = color.RGBA{255, 255, 255, 255}
	colBrow       = color.RGBA{80, 60, 40, 255}
	colBlush      = color.RGBA{255, 150, 180, 255}
	colHeart      = color.RGBA{255, 60, 120, 255}
	colHeartSpark = color.RGBA{255, 240, 100, 255}
	colIris       = color.RGBA{50, 180, 255, 255}
	colIrisEdge   = color.RGBA{30, 140, 230, 255}
	colEyeSpark   = color.RGBA{255, 255, 100, 255}
	colSweat      = color.RGBA{120, 200, 255, 255}
	colSweatEdge  = color.RGBA{80, 150, 240, 255}
	colTear       = color.RGBA{150, 200, 255, 255}
	colMouthOpen  = color.RGBA{220, 60, 80, 255}
	colTongue     = color.RGBA{255, 140, 160, 255}
	colTongueEdge = color.RGBA{200, 80, 100, 255}
	colMouthO     = color.RGBA{200, 70, 90, 255}
	colMouthSpark = color.RGBA{255, 255, 180, 255}
	colOSpark     = color.RGBA{255, 255, 150, 255}
	colFrown      = color.RGBA{180, 50, 70, 255}
	colGritBG     = color.RGBA{200, 60, 80, 255}
	colTeeth      = color.RGBA{245, 245, 240, 255}
	colToothGap   = color.RGBA{180, 180, 170, 255}
	colSmileBar   = color.RGBA{210, 80, 100, 255}
	colFrownBar   = color.RGBA{190, 60, 80, 255}
)

// pct scales a 0..100 value onto the 0..255 coverage range.
func pct(v uint8) uint8 {
	return uint8((int(v) * 255) / 100)
}
