package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Background gradient
	BackgroundSpeed = 0.3
	LevelGain       = 40

	// Bubble tint as HSV (hue: 0-360, saturation/value: 0-1)
	TintHue        = 200
	TintSaturation = 0.25
	TintValue      = 1.0

	EnvPrefix = "BUBBLES_"
)

// Config is the runtime configuration of the backdrop.
type Config struct {
	Width, Height int
	TPS           int

	// AssetDir holds bottle.png and circle.png; empty means generated sprites.
	AssetDir string
	// Music is an optional WAV/MP3/FLAC file looped in the background.
	Music string

	Hue, Saturation, Value float64

	// Workers > 1 enables the parallel update pass.
	Workers int

	Debug   bool
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:      WindowWidth,
		Height:     WindowHeight,
		TPS:        TPS,
		Hue:        TintHue,
		Saturation: TintSaturation,
		Value:      TintValue,
	}
}

// Load parses args (without the program name). Flags left unset fall back to
// BUBBLES_<NAME> environment variables looked up through getenv.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("bubbles", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "simulation ticks per second")
	fs.StringVar(&cfg.AssetDir, "assets", "", "directory with bottle.png and circle.png (default: generated)")
	fs.StringVar(&cfg.Music, "music", "", "audio file to loop in the background (wav, mp3, flac)")
	fs.Float64Var(&cfg.Hue, "hue", cfg.Hue, "bubble tint hue, 0-360")
	fs.Float64Var(&cfg.Saturation, "saturation", cfg.Saturation, "bubble tint saturation, 0-1")
	fs.Float64Var(&cfg.Value, "value", cfg.Value, "bubble tint value, 0-1")
	fs.IntVar(&cfg.Workers, "parallel", 0, "goroutines for the particle update pass (0 = serial)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging and overlay")
	fs.StringVar(&cfg.LogFile, "log", "", "append logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if getenv != nil {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		var envErr error
		fs.VisitAll(func(f *flag.Flag) {
			if set[f.Name] || envErr != nil {
				return
			}
			v := getenv(EnvName(f.Name))
			if v == "" {
				return
			}
			if err := f.Value.Set(v); err != nil {
				envErr = fmt.Errorf("%s: %w", EnvName(f.Name), err)
			}
		})
		if envErr != nil {
			return Config{}, envErr
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvName maps a flag name to its environment variable.
func EnvName(flagName string) string {
	b := []byte(EnvPrefix + flagName)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c == '-':
			b[i] = '_'
		}
	}
	return string(b)
}

var ErrInvalid = errors.New("invalid configuration")

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Hue < 0 || c.Hue > 360:
		return fmt.Errorf("%w: hue %s", ErrInvalid, strconv.FormatFloat(c.Hue, 'g', -1, 64))
	case c.Saturation < 0 || c.Saturation > 1:
		return fmt.Errorf("%w: saturation %s", ErrInvalid, strconv.FormatFloat(c.Saturation, 'g', -1, 64))
	case c.Value < 0 || c.Value > 1:
		return fmt.Errorf("%w: value %s", ErrInvalid, strconv.FormatFloat(c.Value, 'g', -1, 64))
	case c.Workers < 0:
		return fmt.Errorf("%w: parallel %d", ErrInvalid, c.Workers)
	}
	return nil
}
