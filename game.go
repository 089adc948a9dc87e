package main

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/introgate/intro"
	"github.com/milk9111/introgate/patterns"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	sampleRate = 44100
	lockOwner  = "introgate:demo"

	sectionHeight = 420.0
	sectionCount  = 6
)

type Game struct {
	loop     *intro.Loop
	registry *patterns.Registry
	locker   *intro.LockTable
	session  *intro.Session
	chrome   *ChromeUI
	watcher  *patterns.Watcher

	patternID string
	audioCtx  *audio.Context
	splash    *audio.Player
	scrollY   float64
}

func NewGame(registry *patterns.Registry, patternID string) *Game {
	g := &Game{
		loop:      intro.NewLoop(),
		registry:  registry,
		locker:    intro.NewLockTable(),
		patternID: patternID,
		audioCtx:  audio.NewContext(sampleRate),
	}
	g.splash = g.audioCtx.NewPlayerFromBytes(splashPCM(4 * time.Second))
	g.chrome = NewChromeUI(patternID)
	g.startSession(patternID)
	return g
}

func (g *Game) startSession(id string) {
	if g.session != nil {
		g.session.Close()
	}

	var pattern *intro.Pattern
	if id != "" {
		p, ok := g.registry.Resolve(id)
		if !ok {
			log.Printf("unknown pattern %q; continuing with no intro", id)
		}
		pattern = p
	}

	g.session = intro.NewSession(intro.Config{
		Pattern: pattern,
		Settings: intro.Settings{
			LockScroll:      true,
			ContentFadeStep: 1,
		},
		Overlay: &intro.Overlay{
			Component: "splash-card",
			Props:     map[string]any{"title": "introgate"},
		},
	}, intro.Options{
		Loop:      g.loop,
		Locker:    g.locker,
		LockOwner: lockOwner,
		Media:     g.resolveMedia,
		Chrome:    g.chrome.SetVisible,
	})
	g.session.Start()
}

// resolveMedia hands the media-time trigger its playback target. The
// trigger keeps re-querying through this until the target exists.
func (g *Game) resolveMedia(name string) intro.Media {
	if name != "splash" || g.splash == nil {
		return nil
	}
	if !g.splash.IsPlaying() {
		g.splash.Play()
	}
	return g.splash
}

func (g *Game) Update() error {
	g.drainWatcher()

	g.loop.Advance(time.Second / 60)

	if !g.locker.Locked() {
		_, wheelY := ebiten.Wheel()
		g.scrollY -= wheelY * 24
		if ebiten.IsKeyPressed(ebiten.KeyDown) {
			g.scrollY += 8
		}
		if ebiten.IsKeyPressed(ebiten.KeyUp) {
			g.scrollY -= 8
		}
		maxScroll := sectionHeight*sectionCount - baseHeight
		if g.scrollY > maxScroll {
			g.scrollY = maxScroll
		}
		if g.scrollY < 0 {
			g.scrollY = 0
		}
	}

	g.chrome.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case id, ok := <-g.watcher.Reloaded:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reloaded pattern %q (takes effect on next session)", id)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff})

	st := g.session.State()
	g.drawContent(screen)
	if !st.Completed {
		g.drawOverlay(screen, st)
	}
	g.chrome.Draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pattern=%s phase=%s step=%d progress=%.2f reveal=%.2f locked=%v  FPS: %.1f",
		g.patternID, st.Phase, st.CurrentStep, st.StepProgress, st.RevealProgress,
		g.locker.Locked(), ebiten.ActualFPS()))
}

var sectionColors = []color.NRGBA{
	{R: 0x2b, G: 0x5d, B: 0x8a, A: 0xff},
	{R: 0x8a, G: 0x5d, B: 0x2b, A: 0xff},
	{R: 0x3f, G: 0x8a, B: 0x5a, A: 0xff},
	{R: 0x6a, G: 0x3f, B: 0x8a, A: 0xff},
	{R: 0x8a, G: 0x3f, B: 0x52, A: 0xff},
	{R: 0x44, G: 0x6e, B: 0x6e, A: 0xff},
}

func (g *Game) drawContent(screen *ebiten.Image) {
	opacity := g.session.ContentOpacity()
	if opacity <= 0 {
		return
	}
	for i := 0; i < sectionCount; i++ {
		y := float64(i)*sectionHeight - g.scrollY
		if y > baseHeight || y+sectionHeight < 0 {
			continue
		}
		c := sectionColors[i%len(sectionColors)]
		c.A = uint8(float64(c.A) * opacity)
		vector.FillRect(screen, 80, float32(y+40), baseWidth-160, sectionHeight-80, c, false)
	}
}

// drawOverlay renders the splash card outside the gated content tree. It
// fades with the reveal so instant patterns never flash it.
func (g *Game) drawOverlay(screen *ebiten.Image, st intro.State) {
	alpha := 1.0
	if st.Phase == intro.PhaseRevealing {
		alpha = 1 - st.RevealProgress
	}
	if alpha <= 0 {
		return
	}

	vector.FillRect(screen, 0, 0, baseWidth, baseHeight,
		color.NRGBA{A: uint8(200 * alpha)}, false)

	cardW, cardH := float32(420), float32(160)
	x := float32(baseWidth-cardW) / 2
	y := float32(baseHeight-cardH) / 2
	vector.FillRect(screen, x, y, cardW, cardH, color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: uint8(255 * alpha)}, false)
	vector.StrokeRect(screen, x, y, cardW, cardH, 1, colornames.Lightgrey, false)

	// Per-trigger progress under the card, whichever trigger is active.
	progress := st.StepProgress
	if st.TimerElapsed > 0 || st.MediaTime > 0 {
		progress = 0
		if d := gateDuration(g.session); d > 0 {
			elapsed := st.TimerElapsed
			if st.MediaTime > elapsed {
				elapsed = st.MediaTime
			}
			progress = float64(elapsed) / float64(d)
			if progress > 1 {
				progress = 1
			}
		}
	}
	barY := y + cardH + 16
	vector.FillRect(screen, x, barY, cardW, 4, color.NRGBA{R: 0x30, G: 0x30, B: 0x38, A: uint8(255 * alpha)}, false)
	vector.FillRect(screen, x, barY, cardW*float32(progress), 4, colornames.Lightseagreen, false)
}

// gateDuration pulls the active blocking trigger's total duration so the
// overlay can show a meaningful bar.
func gateDuration(s *intro.Session) time.Duration {
	p := s.Pattern()
	if p == nil {
		return 0
	}
	for _, d := range p.Triggers {
		switch d.Type {
		case intro.TriggerTimer:
			return d.Duration
		case intro.TriggerMediaTime:
			return d.Position
		}
	}
	return 0
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// splashPCM synthesizes the embedded splash track: a fading 220Hz tone,
// 16-bit stereo little-endian.
func splashPCM(d time.Duration) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		fade := 1 - t/d.Seconds()
		v := int16(math.Sin(2*math.Pi*220*t) * 0.2 * fade * math.MaxInt16)
		binary.LittleEndian.PutUint16(b[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(b[i*4+2:], uint16(v))
	}
	return b
}
