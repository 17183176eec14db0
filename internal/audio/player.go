// Package audio plays an optional looping soundtrack behind the bubbles.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/bubble-backdrop/internal/config"
	"github.com/iburimskiy/bubble-backdrop/internal/logging"
)

const levelWindow = 2048

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player owns the speaker and at most one looping track.
// Methods are called from the frame loop only.
type Player struct {
	log *logging.Logger

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap

	level    float64
	paused   bool
	initDone bool
}

func NewPlayer(log *logging.Logger) *Player {
	return &Player{log: log}
}

// Formats lists the file patterns Open accepts.
var Formats = []string{"*.wav", "*.mp3", "*.flac"}

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Open decodes path and starts looping it, replacing any current track.
func (p *Player) Open(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> loop -> tap -> ctrl
	tap := NewTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("speaker init: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("speaker init: %w", err)
		}
	default:
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.release()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = tap
	p.paused = false
	p.level = 0

	speaker.Play(ctrl)
	p.log.Infof("audio", "looping %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return nil
}

// TogglePause pauses or resumes the current track. It is a no-op without one.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
	p.log.Debugf("audio", "paused=%v", p.paused)
}

func (p *Player) Playing() bool { return p.ctrl != nil && !p.paused }

func (p *Player) Paused() bool { return p.paused }

// Level returns the smoothed loudness of the track in [0, 1]; 0 when nothing
// is playing.
func (p *Player) Level() float64 {
	target := 0.0
	if p.tap != nil && !p.paused {
		target = p.tap.Level(levelWindow)
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*target
	return p.level
}

// Close stops playback and releases the current track.
func (p *Player) Close() error {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	return p.release()
}

func (p *Player) release() error {
	var errs []error
	if p.streamer != nil {
		errs = append(errs, p.streamer.Close())
		p.streamer = nil
	}
	if p.file != nil {
		// decoders may already have closed the file
		if err := p.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
	return errors.Join(errs...)
}
