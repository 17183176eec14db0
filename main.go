package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bubble-backdrop/internal/audio"
	"github.com/iburimskiy/bubble-backdrop/internal/config"
	"github.com/iburimskiy/bubble-backdrop/internal/game"
	"github.com/iburimskiy/bubble-backdrop/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bubbles:", err)
		// best-effort; there is no dialog backend on every platform
		_ = zenity.Error(err.Error(), zenity.Title("Bubbles"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := logging.New(w, cfg.Debug)

	var fsys fs.FS
	if cfg.AssetDir != "" {
		fsys = os.DirFS(cfg.AssetDir)
	}

	g := game.New(cfg, log, audio.NewPlayer(log))
	g.Start(context.Background(), fsys)
	defer g.Close()
	g.PlayMusic(cfg.Music)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Bubbles - Space: pause music, O: open music, D: debug, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Infof("main", "starting %dx%d at %d tps", cfg.Width, cfg.Height, cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
