// Command kawaiigen is a desktop demo for the face engine. It cycles
// through every emotion with a configurable hold time and presents the host
// surface in an ebiten window, with a textbuf status strip underneath.
//
// Keys: Space advances to the next emotion, B triggers a blink, A toggles
// auto-blink. The last emotion and the auto-blink setting persist between
// runs.
package main

import (
	"fmt"
	"time"

	"github.com/ajanata/textbuf"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"

	"github.com/ajanata/kawaiigen"
)

const statusBarH = 16

// cycleOrder walks the expressive range: positive emotions first, then the
// agitated and low-energy ones.
var cycleOrder = []kawaiigen.Emotion{
	kawaiigen.EmotionNeutral,
	kawaiigen.EmotionHappy,
	kawaiigen.EmotionWorried,
	kawaiigen.EmotionWink,
	kawaiigen.EmotionLove,
	kawaiigen.EmotionSurprised,
	kawaiigen.EmotionPlayful,
	kawaiigen.EmotionSilly,
	kawaiigen.EmotionSmirk,
	kawaiigen.EmotionWorkingHard,
	kawaiigen.EmotionExcited,
	kawaiigen.EmotionConfused,
	kawaiigen.EmotionCool,
	kawaiigen.EmotionSleepy,
	kawaiigen.EmotionSad,
	kawaiigen.EmotionCry,
	kawaiigen.EmotionAngry,
}

type game struct {
	log   zerolog.Logger
	face  *kawaiigen.Face
	store *gdata.Manager

	faceSurf   *surface
	statusSurf *surface
	statusText *textbuf.Buffer
	faceImg    *ebiten.Image
	statusImg  *ebiten.Image

	tickEvery  time.Duration
	holdFor    time.Duration
	lastTick   time.Time
	lastSwitch time.Time

	idx       int
	autoBlink bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.face.TriggerBlink()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.autoBlink = !g.autoBlink
		g.face.SetAutoBlink(g.autoBlink)
		g.save()
	}

	if time.Since(g.lastSwitch) >= g.holdFor {
		g.next()
	}

	// Pump the engine at its own rate, independent of ebiten's TPS.
	for i := 0; time.Since(g.lastTick) >= g.tickEvery && i < 8; i++ {
		if err := g.face.Tick(); err != nil {
			return err
		}
		g.lastTick = g.lastTick.Add(g.tickEvery)
	}

	blink := "auto-blink off"
	if g.autoBlink {
		blink = "auto-blink on"
	}
	_ = g.statusText.SetLine(0, g.face.CurrentEmotion().String())
	_ = g.statusText.SetLine(1, fmt.Sprintf("%s  %.0f fps", blink, ebiten.ActualFPS()))
	return nil
}

func (g *game) next() {
	g.idx = (g.idx + 1) % len(cycleOrder)
	g.face.SetEmotion(cycleOrder[g.idx], true)
	g.lastSwitch = time.Now()
	g.save()
}

func (g *game) save() {
	saveState(g.store, savedState{
		Emotion:   uint8(cycleOrder[g.idx]),
		AutoBlink: g.autoBlink,
	}, g.log)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.faceImg.WritePixels(g.faceSurf.img.Pix)
	g.statusImg.WritePixels(g.statusSurf.img.Pix)

	screen.DrawImage(g.faceImg, nil)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(g.faceSurf.h))
	screen.DrawImage(g.statusImg, op)
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(g.faceSurf.w), int(g.faceSurf.h) + statusBarH
}

func main() {
	log := kawaiigen.DefaultLogger().With().Str("app", "kawaiigen").Logger()
	cfg := loadConfig(log)

	store, err := gdata.Open(gdata.Config{AppName: "kawaiigen"})
	if err != nil {
		log.Warn().Err(err).Msg("persistence unavailable")
		store = nil
	}
	st := loadState(store, log)

	faceSurf := newSurface(cfg.FaceSize, cfg.FaceSize)
	statusSurf := newSurface(cfg.FaceSize, statusBarH)

	face, err := kawaiigen.New(kawaiigen.Config{
		Parent:        faceSurf,
		TickInterval:  time.Duration(cfg.TickMs) * time.Millisecond,
		BlinkInterval: time.Duration(cfg.BlinkMs) * time.Millisecond,
		AutoBlink:     st.AutoBlink,
		Logger:        &log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("face setup failed")
	}
	if err := face.Init(); err != nil {
		log.Fatal().Err(err).Msg("face init failed")
	}

	idx := 0
	for i, e := range cycleOrder {
		if e == kawaiigen.Emotion(st.Emotion) {
			idx = i
			break
		}
	}
	face.SetEmotion(cycleOrder[idx], false)

	statusText, err := textbuf.New(statusSurf, textbuf.FontSize6x8)
	if err != nil {
		log.Fatal().Err(err).Msg("status text init failed")
	}
	statusText.AutoFlush = true

	g := &game{
		log:        log,
		face:       face,
		store:      store,
		faceSurf:   faceSurf,
		statusSurf: statusSurf,
		statusText: statusText,
		faceImg:    ebiten.NewImage(cfg.FaceSize, cfg.FaceSize),
		statusImg:  ebiten.NewImage(cfg.FaceSize, statusBarH),
		tickEvery:  time.Duration(cfg.TickMs) * time.Millisecond,
		holdFor:    time.Duration(cfg.HoldMs) * time.Millisecond,
		lastTick:   time.Now(),
		lastSwitch: time.Now(),
		idx:        idx,
		autoBlink:  st.AutoBlink,
	}

	ebiten.SetWindowSize(cfg.FaceSize*cfg.Scale, (cfg.FaceSize+statusBarH)*cfg.Scale)
	ebiten.SetWindowTitle("kawaiigen")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("window closed with error")
	}
}
