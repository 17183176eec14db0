// Package game hosts the bubble simulation inside an ebiten window.
package game

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bubble-backdrop/internal/assets"
	"github.com/iburimskiy/bubble-backdrop/internal/atlas"
	"github.com/iburimskiy/bubble-backdrop/internal/audio"
	"github.com/iburimskiy/bubble-backdrop/internal/config"
	"github.com/iburimskiy/bubble-backdrop/internal/logging"
	"github.com/iburimskiy/bubble-backdrop/internal/particle"
)

type state int

const (
	stateLoading state = iota
	stateRunning
)

func (s state) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateRunning:
		return "running"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type loadResult struct {
	atlas *atlas.Atlas
	err   error
}

// Game implements ebiten.Game.
type Game struct {
	cfg config.Config
	log *logging.Logger

	state  state
	loaded chan loadResult
	cancel context.CancelFunc

	// set once by onAssetsReady
	sheet   *ebiten.Image
	sprites []*ebiten.Image
	sim     *particle.Simulation

	viewport *particle.Viewport
	dt       float64
	time     float64

	music  *audio.Player
	picked chan string
	level  float64

	debug   bool
	lastErr error
}

// New prepares the host. Asset loading starts with Start.
func New(cfg config.Config, log *logging.Logger, music *audio.Player) *Game {
	return &Game{
		cfg:    cfg,
		log:    log,
		loaded: make(chan loadResult, 1),
		picked: make(chan string, 1),
		dt:     1 / float64(cfg.TPS),
		music:  music,
		debug:  cfg.Debug,
	}
}

// Start loads the sprites in the background from fsys (nil = generated) and
// packs them into the atlas. Update picks the result up on a later frame.
func (g *Game) Start(ctx context.Context, fsys fs.FS) {
	ctx, g.cancel = context.WithCancel(ctx)
	go func() {
		t0 := time.Now()
		imgs, err := assets.Load(ctx, fsys, assets.Required)
		if err != nil {
			g.loaded <- loadResult{err: fmt.Errorf("load assets: %w", err)}
			return
		}
		a, err := atlas.Pack(imgs, assets.CircleSize*2)
		if err != nil {
			g.loaded <- loadResult{err: fmt.Errorf("build atlas: %w", err)}
			return
		}
		g.log.Debugf("game", "assets ready in %v", time.Since(t0))
		g.loaded <- loadResult{atlas: a}
	}()
}

// Close stops background work and the soundtrack.
func (g *Game) Close() error {
	if g.cancel != nil {
		g.cancel()
	}
	if g.music != nil {
		return g.music.Close()
	}
	return nil
}

// onAssetsReady runs once, on the frame loop, after the atlas is built.
func (g *Game) onAssetsReady(a *atlas.Atlas) error {
	circle, err := a.Index(assets.Circle)
	if err != nil {
		return err
	}

	g.sheet = ebiten.NewImageFromImage(a.Sheet)
	g.sprites = make([]*ebiten.Image, a.Len())
	for i := range g.sprites {
		g.sprites[i] = g.sheet.SubImage(a.Rect(i)).(*ebiten.Image)
	}

	g.run(circle)
	g.log.Infof("game", "atlas %dx%d with %d sprites, circle=%d",
		a.Sheet.Bounds().Dx(), a.Sheet.Bounds().Dy(), a.Len(), circle)
	return nil
}

// run builds the simulation around the resolved sprite index and flips the
// host into the running state.
func (g *Game) run(circle int) {
	opts := []particle.Option{}
	if g.cfg.Workers > 1 {
		opts = append(opts, particle.WithWorkers(g.cfg.Workers))
	}
	g.sim = particle.NewSimulation(circle, tint(g.cfg.Hue, g.cfg.Saturation, g.cfg.Value), opts...)
	g.state = stateRunning
}

func (g *Game) Update() error {
	if g.state == stateLoading {
		select {
		case res := <-g.loaded:
			if res.err != nil {
				return res.err
			}
			if err := g.onAssetsReady(res.atlas); err != nil {
				return fmt.Errorf("assets ready: %w", err)
			}
		default:
		}
	}

	if err := g.handleInput(); err != nil {
		return err
	}
	g.pollMusic()

	g.step()
	return nil
}

// step advances one frame. The simulation only runs once assets are in.
func (g *Game) step() {
	g.time += g.dt
	if g.music != nil {
		g.level = g.music.Level()
	}
	if g.state != stateRunning {
		return
	}
	g.sim.Tick(g.dt, g.viewport)
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sim != nil {
		g.sim.Reset()
		g.log.Debugf("game", "particles cleared")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.music != nil {
		g.music.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && g.music != nil {
		go g.pickMusic()
	}
	return nil
}

// pickMusic shows the native file dialog off the frame loop.
func (g *Game) pickMusic() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Formats,
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.log.Errorf("game", "file dialog: %v", err)
		}
		return
	}
	select {
	case g.picked <- filename:
	default:
	}
}

func (g *Game) pollMusic() {
	select {
	case path := <-g.picked:
		g.openMusic(path)
	default:
	}
}

// openMusic starts path; failures are shown on the overlay, never fatal.
func (g *Game) openMusic(path string) {
	if err := g.music.Open(path); err != nil {
		g.lastErr = err
		g.log.Errorf("audio", "%v", err)
		return
	}
	g.lastErr = nil
}

// PlayMusic queues path for playback on the next frame.
func (g *Game) PlayMusic(path string) {
	if path == "" || g.music == nil {
		return
	}
	select {
	case g.picked <- path:
	default:
	}
}

// Layout tracks the outside size so the canvas always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		g.viewport = nil
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	g.viewport = &particle.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
