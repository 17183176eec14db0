package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bubble-backdrop/internal/config"
	"github.com/iburimskiy/bubble-backdrop/internal/particle"
)

const bandHeight = 4

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	switch g.state {
	case stateLoading:
		ebitenutil.DebugPrintAt(screen, "loading...", 12, 12)
	case stateRunning:
		g.drawParticles(screen)
	}

	if g.debug {
		g.drawOverlay(screen)
	}
}

// drawBackground paints a slow vertical gradient that brightens with the
// soundtrack level.
func (g *Game) drawBackground(screen *ebiten.Image) {
	b := screen.Bounds()
	h := b.Dy()
	if h == 0 {
		return
	}
	boost := g.level * config.LevelGain
	for y := 0; y < h; y += bandHeight {
		ratio := float64(y) / float64(h)
		t := g.time * config.BackgroundSpeed
		r := channel(10+boost*0.5, 20, t*1.6+ratio*math.Pi, math.Sin)
		gr := channel(12+boost*0.7, 15, t+ratio*math.Pi, math.Cos)
		bl := channel(20+boost, 25, t*2.3+ratio*math.Pi, math.Sin)
		vector.DrawFilledRect(screen, 0, float32(y), float32(b.Dx()), bandHeight, color.RGBA{R: r, G: gr, B: bl, A: 255}, false)
	}
}

func channel(base, amp, phase float64, wave func(float64) float64) uint8 {
	return uint8(clamp01((base+amp*wave(phase))/255) * 255)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, sp := range g.sim.Sprites() {
		if sp.Atlas < 0 || sp.Atlas >= len(g.sprites) {
			continue
		}
		img := g.sprites[sp.Atlas]
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = spriteGeoM(sp, img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		op.ColorScale = colorScale(sp.Color)
		screen.DrawImage(img, op)
	}
}

// toScreen maps a world position (origin at centre, y up) to screen pixels.
func toScreen(p particle.Vec2, w, h int) (float64, float64) {
	return p.X + float64(w)/2, float64(h)/2 - p.Y
}

// spriteGeoM centres the cell, scales its width to sp.Scale pixels, rotates
// and moves it to the particle's screen position.
func spriteGeoM(sp particle.Sprite, cellW, cellH, screenW, screenH int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(cellW)/2, -float64(cellH)/2)
	s := sp.Scale / float64(cellW)
	m.Scale(s, s)
	m.Rotate(sp.Rotation)
	x, y := toScreen(sp.Position, screenW, screenH)
	m.Translate(x, y)
	return m
}

func colorScale(c particle.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(c.R, c.G, c.B, 1)
	cs.ScaleAlpha(c.A)
	return cs
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	live := 0
	if g.sim != nil {
		live = g.sim.Len()
	}
	uptime := time.Duration(g.time * float64(time.Second))
	lines := fmt.Sprintf("%s | bubbles %d | tps %.0f | up %s", g.state, live, ebiten.ActualTPS(), formatDuration(uptime))
	if g.viewport != nil {
		lines += fmt.Sprintf("\nviewport %.0fx%.0f | spawn p/frame %.5f",
			g.viewport.Width, g.viewport.Height, particle.Threshold(g.dt, *g.viewport))
	}
	switch {
	case g.music == nil:
	case g.music.Playing():
		lines += fmt.Sprintf("\nmusic playing, level %.2f (Space: pause, O: open)", g.level)
	case g.music.Paused():
		lines += "\nmusic paused (Space: play, O: open)"
	default:
		lines += "\nO: open soundtrack"
	}
	if g.lastErr != nil {
		lines += "\nerror: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, lines, 12, 12)
}
