package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/bubble-backdrop/internal/logging"
)

// constStreamer emits the same stereo sample forever.
type constStreamer struct{ v float64 }

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.v, c.v}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

// countStreamer emits 1, 2, 3, ... on both channels.
type countStreamer struct{ n float64 }

func (c *countStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		c.n++
		samples[i] = [2]float64{c.n, c.n}
	}
	return len(samples), true
}

func (*countStreamer) Err() error { return nil }

func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(&countStreamer{}, 8)
	buf := make([][2]float64, 5)
	tap.Stream(buf)

	got := tap.Snapshot(3)
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], got[i][0])
		}
	}

	if n := len(tap.Snapshot(100)); n != 5 {
		t.Errorf("expected snapshot capped at 5 recorded samples, got %d", n)
	}
}

func TestTapWrapsAround(t *testing.T) {
	tap := NewTap(&countStreamer{}, 4)
	tap.Stream(make([][2]float64, 6))

	got := tap.Snapshot(4)
	for i, want := range []float64{3, 4, 5, 6} {
		if got[i][0] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, got[i][0])
		}
	}
}

func TestTapLevel(t *testing.T) {
	if l := NewTap(constStreamer{}, 16).Level(16); l != 0 {
		t.Errorf("expected 0 level before any samples, got %v", l)
	}

	tap := NewTap(constStreamer{v: 0.5}, 16)
	tap.Stream(make([][2]float64, 16))
	want := math.Pow(0.5, 0.3)
	if l := tap.Level(16); math.Abs(l-want) > 1e-12 {
		t.Errorf("expected level %v, got %v", want, l)
	}
}

func TestDecoderFor(t *testing.T) {
	for _, name := range []string{"a.wav", "b.MP3", "c.flac"} {
		if _, err := decoderFor(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	if _, err := decoderFor("d.ogg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOpenErrors(t *testing.T) {
	p := NewPlayer(logging.Nop())
	if err := p.Open("track.ogg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err := p.Open(filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(bad, []byte("definitely not RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := p.Open(bad); err == nil {
		t.Error("expected decode error")
	}
	if p.Playing() {
		t.Error("expected nothing playing after failed opens")
	}
}

func TestIdlePlayer(t *testing.T) {
	p := NewPlayer(logging.Nop())
	p.TogglePause()
	if p.Paused() {
		t.Error("TogglePause without a track must be a no-op")
	}
	if l := p.Level(); l != 0 {
		t.Errorf("expected zero level, got %v", l)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
