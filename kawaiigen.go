// Package kawaiigen animates a kawaii-style cartoon face (two eyes and a
// mouth) onto a host-supplied pixel surface. The host owns the surface and
// the clock; the engine owns the expression state machine and the drawing.
package kawaiigen

import (
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"

	"github.com/ajanata/kawaiigen/internal/canvas"
	"github.com/ajanata/kawaiigen/internal/mirror"
	"github.com/ajanata/kawaiigen/internal/render"
)

// Face is the animation engine. Create one with New, call Init once the
// parent surface is usable, then drive it with Run or manual Tick calls.
// All exported methods are safe to call before Init; they do nothing.
type Face struct {
	cfg    Config
	log    zerolog.Logger
	lock   func()
	unlock func()

	init bool

	geo  geometry
	x, y int16 // container origin on the parent

	leftEye  *canvas.Canvas
	rightEye *canvas.Canvas
	mouth    *canvas.Canvas
	preview  drivers.Displayer

	current  Emotion
	target   Emotion
	progress uint8      // transition progress, 0..100
	source   baseVector // blend source snapshot

	ch         channels
	blink      blinker
	diamondDir int8
	motions    [NumEmotions]motion

	tick uint32
}

// geometry is the layout derived from the parent surface dimensions. The
// face occupies a faceSize square; positions are relative to its origin.
type geometry struct {
	faceSize  int16
	eyeSide   int16
	mouthW    int16
	mouthH    int16
	eyeY      int16
	leftEyeX  int16
	rightEyeX int16
	mouthX    int16
	mouthY    int16
}

func computeGeometry(w, h int16) geometry {
	g := geometry{}
	g.faceSize = w
	if h < w {
		g.faceSize = h
	}
	g.eyeSide = int16(float64(g.faceSize) * 0.45)
	g.mouthW = int16(float64(g.faceSize) * 0.45)
	g.mouthH = int16(float64(g.faceSize) * 0.38)
	g.eyeY = int16(float64(g.faceSize) * 0.12)
	g.mouthY = int16(float64(g.faceSize) * 0.62)

	gap := g.eyeSide / 4
	g.leftEyeX = g.faceSize/2 - g.eyeSide - gap/2
	g.rightEyeX = g.faceSize/2 + gap/2
	g.mouthX = g.faceSize/2 - g.mouthW/2
	return g
}

// New validates the configuration and prepares a Face. The parent surface
// is not touched until Init.
func New(cfg Config) (*Face, error) {
	if cfg.Parent == nil {
		return nil, errors.New("must provide a parent surface")
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.BlinkInterval <= 0 {
		cfg.BlinkInterval = DefaultBlinkInterval
	}

	f := &Face{
		cfg:    cfg,
		log:    zerolog.Nop(),
		lock:   func() {},
		unlock: func() {},
	}
	if cfg.Logger != nil {
		f.log = *cfg.Logger
	}
	if cfg.Lock != nil && cfg.Unlock != nil {
		f.lock, f.unlock = cfg.Lock, cfg.Unlock
	}
	for e := EmotionNeutral; e.valid(); e++ {
		f.motions[e] = descriptors[e].newMotion()
	}
	return f, nil
}

// Init derives the layout from the parent surface, allocates the eye and
// mouth buffers, and draws the neutral face. Calling it again on an
// initialized Face logs a warning and returns nil.
func (f *Face) Init() error {
	if f.init {
		f.log.Warn().Msg("face already initialized")
		return nil
	}
	f.lock()
	defer f.unlock()

	w, h := f.cfg.Parent.Size()
	f.geo = computeGeometry(w, h)
	f.x = (w - f.geo.faceSize) / 2
	f.y = (h - f.geo.faceSize) / 2

	var err error
	f.leftEye, err = canvas.New(f.geo.eyeSide, f.geo.eyeSide)
	if err != nil {
		return errors.New("left eye buffer: " + err.Error())
	}
	f.rightEye, err = canvas.New(f.geo.eyeSide, f.geo.eyeSide)
	if err != nil {
		f.release()
		return errors.New("right eye buffer: " + err.Error())
	}
	f.mouth, err = canvas.New(f.geo.mouthW, f.geo.mouthH)
	if err != nil {
		f.release()
		return errors.New("mouth buffer: " + err.Error())
	}

	if f.cfg.Preview != nil {
		f.preview = mirror.New(f.cfg.Preview)
	}

	f.current, f.target = EmotionNeutral, EmotionNeutral
	f.progress = 100
	f.resolveCurrent()
	f.blink = blinker{}
	f.diamondDir = 1
	f.tick = 0

	f.init = true
	f.render()
	f.log.Info().
		Int16("face", f.geo.faceSize).
		Int16("eye", f.geo.eyeSide).
		Int16("mouthW", f.geo.mouthW).
		Int16("mouthH", f.geo.mouthH).
		Msg("face initialized")
	return nil
}

// release drops the pixel buffers. Safe to call with any subset allocated.
func (f *Face) release() {
	f.leftEye, f.rightEye, f.mouth, f.preview = nil, nil, nil, nil
}

// Deinit releases the buffers and resets all animation state. It is
// idempotent, and the Face may be Init'd again afterward.
func (f *Face) Deinit() {
	if !f.init {
		return
	}
	f.lock()
	f.release()
	f.ch = channels{}
	f.blink = blinker{}
	f.current, f.target = EmotionNeutral, EmotionNeutral
	f.progress = 0
	f.tick = 0
	f.init = false
	f.unlock()
	f.log.Info().Msg("face deinitialized")
}

// Run drives the animation at the configured tick interval. It never
// returns; run it on its own goroutine, or call Tick from the host's own
// frame loop instead.
func (f *Face) Run() {
	for range time.Tick(f.cfg.TickInterval) {
		if err := f.Tick(); err != nil {
			f.log.Err(err).Msg("tick failed")
		}
	}
}

// Tick advances the animation by one frame: blink cycle, transition blend,
// the active emotion's idle motion, and secondary-counter decay. The
// surfaces are redrawn only when something changed.
func (f *Face) Tick() error {
	if !f.init {
		return nil
	}
	f.lock()
	defer f.unlock()

	f.tick++
	dirty := false

	if f.blink.step(f.tick) {
		dirty = true
	} else if f.cfg.AutoBlink && f.blink.due(f.tick, f.cfg.BlinkInterval, f.cfg.TickInterval) {
		f.blink.trigger()
	}

	if f.advanceTransition() {
		dirty = true
	}

	settled := f.progress == 100
	if f.motions[f.current].step(&f.ch, f.tick, settled, f.blink.active) {
		dirty = true
	}
	if f.stepCounters() {
		dirty = true
	}

	if dirty {
		return f.render()
	}
	return nil
}

// advanceTransition moves one step toward the target profile. The blink
// override sits above the blended values, so blending continues during a
// blink.
func (f *Face) advanceTransition() bool {
	if f.progress >= 100 {
		return false
	}
	f.progress += 10
	if f.progress >= 100 {
		f.progress = 100
		f.current = f.target
		f.resolveCurrent()
		return true
	}
	f.ch.setBase(f.source.lerp(ProfileOf(f.target), f.progress))
	return true
}

// resolveCurrent snaps the base channels to the current emotion's profile
// and applies its baseline effect levels. Called when an emotion becomes
// current: immediate set, transition completion, or init.
func (f *Face) resolveCurrent() {
	p := ProfileOf(f.current)
	f.ch.setBase(p.base())
	f.ch.blush = p.Blush
	f.ch.sparkle = p.Sparkle
	f.ch.heart = p.Heartbeat
}

// stepCounters ramps the drip counters the current emotion enables and
// decays everything its motion does not own.
func (f *Face) stepCounters() bool {
	d := &descriptors[f.current]
	dirty := false

	if d.tears {
		f.ch.tear += 2
		if f.ch.tear > 80 {
			f.ch.tear = 0
		}
		dirty = true
	} else if f.ch.tear > 0 {
		f.ch.tear = dec(f.ch.tear, 4)
		dirty = true
	}

	if d.sweatRate > 0 {
		f.ch.sweat += d.sweatRate
		if f.ch.sweat > 100 {
			f.ch.sweat = 0
		}
		dirty = true
	} else if f.ch.sweat > 0 {
		f.ch.sweat = dec(f.ch.sweat, 4)
		dirty = true
	}

	if d.diamond {
		next := int(f.ch.diamond) + int(f.diamondDir)*8
		if next >= 100 {
			next = 100
			f.diamondDir = -1
		} else if next <= 50 {
			next = 50
			f.diamondDir = 1
		}
		f.ch.diamond = uint8(next)
		dirty = true
	} else if f.ch.diamond > 0 {
		f.ch.diamond = dec(f.ch.diamond, 8)
		f.diamondDir = 1
		dirty = true
	}

	if !d.ownsSparkle && f.ch.sparkle > 0 {
		f.ch.sparkle = dec(f.ch.sparkle, 2)
		dirty = true
	}
	if !d.ownsBlush && f.ch.blush > 0 {
		f.ch.blush = dec(f.ch.blush, 2)
		dirty = true
	}
	if !d.ownsHeart && f.ch.heart > 0 {
		f.ch.heart = dec(f.ch.heart, 5)
		dirty = true
	}
	return dirty
}

// SetEmotion changes the face's expression. With smooth set, the current
// resolved values blend toward the new profile over ten ticks; otherwise
// the new profile takes effect and is drawn immediately. Invalid emotions
// are ignored.
func (f *Face) SetEmotion(e Emotion, smooth bool) {
	if !f.init || !e.valid() {
		return
	}
	f.lock()
	defer f.unlock()

	if smooth {
		if e == f.current && e == f.target && f.progress == 100 {
			return
		}
		f.target = e
		f.source = f.ch.base()
		f.progress = 0
		return
	}
	f.current, f.target = e, e
	f.progress = 100
	f.resolveCurrent()
	_ = f.render()
}

// CurrentEmotion returns the emotion currently shown. During a smooth
// transition this remains the old emotion until the blend completes.
func (f *Face) CurrentEmotion() Emotion {
	return f.current
}

// Blinking reports whether a blink cycle is in progress.
func (f *Face) Blinking() bool {
	return f.blink.active
}

// TriggerBlink starts a blink cycle. It does nothing while one is already
// in progress.
func (f *Face) TriggerBlink() {
	if !f.init {
		return
	}
	f.lock()
	f.blink.trigger()
	f.unlock()
}

// SetAutoBlink enables or disables the automatic blink scheduler.
func (f *Face) SetAutoBlink(enable bool) {
	f.lock()
	f.cfg.AutoBlink = enable
	f.unlock()
}

// SetEyeOpenness sets both eyes directly, clamped to 0..100. The values
// persist until the next transition or openness-modulating idle motion.
func (f *Face) SetEyeOpenness(left, right int) {
	if !f.init {
		return
	}
	f.lock()
	defer f.unlock()
	f.ch.leftOpen = clamp8(left, 0, 100)
	f.ch.rightOpen = clamp8(right, 0, 100)
	_ = f.render()
}

// SetMouthShape sets the mouth curve directly, clamped to -100..100.
func (f *Face) SetMouthShape(curve int) {
	if !f.init {
		return
	}
	f.lock()
	defer f.unlock()
	if curve > 100 {
		curve = 100
	} else if curve < -100 {
		curve = -100
	}
	f.ch.mouth = int8(curve)
	_ = f.render()
}

// SetPosition moves the face container's origin on the parent surface.
// Init centers it; the host is responsible for clearing the old region.
func (f *Face) SetPosition(x, y int16) {
	if !f.init {
		return
	}
	f.lock()
	defer f.unlock()
	f.x, f.y = x, y
	_ = f.render()
}

// Bounds returns the face container's rectangle on the parent surface.
func (f *Face) Bounds() image.Rectangle {
	return image.Rect(int(f.x), int(f.y), int(f.x+f.geo.faceSize), int(f.y+f.geo.faceSize))
}

// SetLockFuncs installs the lock/unlock pair called around every state
// mutation. Passing nil for either restores the no-op pair.
func (f *Face) SetLockFuncs(lock, unlock func()) {
	if lock == nil || unlock == nil {
		f.lock, f.unlock = func() {}, func() {}
		return
	}
	f.lock, f.unlock = lock, unlock
}

func clamp8(v, lo, hi int) uint8 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint8(v)
}

// render redraws the three buffers from the resolved channels and
// composites them onto the parent (and mirrored preview, if any).
func (f *Face) render() error {
	d := &descriptors[f.current]
	p := render.Params{
		Bounce:     int16(f.ch.bounce),
		LeftBrow:   int16(f.ch.leftBrow),
		RightBrow:  int16(f.ch.rightBrow),
		BrowHeight: int16(f.ch.browHeight),
		PupilX:     int16(f.ch.pupilX),
		PupilY:     int16(f.ch.pupilY),
		Blush:      f.ch.blush,
		Sparkle:    f.ch.sparkle,
		Tear:       f.ch.tear,
		Sweat:      f.ch.sweat,
		Diamond:    f.ch.diamond,
		HeartEyes:  d.heartEyes,
		Teeth:      d.teeth,
		EyeTears:   d.eyeTears,
		SweatBoth:  d.sweatBoth,
		SweatLeft:  d.sweatRate > 0 && !d.sweatBoth,
	}

	left, right := f.ch.leftOpen, f.ch.rightOpen
	if o, ok := f.blink.openness(); ok {
		left, right = o, o
	}

	render.DrawEye(f.leftEye, p, left, true)
	render.DrawEye(f.rightEye, p, right, false)
	render.DrawMouth(f.mouth, p, f.ch.mouth)

	f.composite(f.cfg.Parent)
	err := f.cfg.Parent.Display()
	if f.preview != nil {
		f.composite(f.preview)
		if perr := f.preview.Display(); err == nil {
			err = perr
		}
	}
	return err
}

func (f *Face) composite(dst drivers.Displayer) {
	f.leftEye.Blit(dst, f.x+f.geo.leftEyeX, f.y+f.geo.eyeY)
	f.rightEye.Blit(dst, f.x+f.geo.rightEyeX, f.y+f.geo.eyeY)
	f.mouth.Blit(dst, f.x+f.geo.mouthX, f.y+f.geo.mouthY)
}
