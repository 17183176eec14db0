package particle

import (
	"math"
	"math/rand/v2"
)

const (
	// ReferenceArea is the 1080p viewport the spawn rate is normalised to.
	ReferenceArea = 1920 * 1080
	// SpawnRate is the expected number of bubbles per second at ReferenceArea.
	SpawnRate     = 0.4
)

// Rand is the uniform [0, 1) source the spawner draws from.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Viewport is the current drawable surface size, supplied by the host.
type Viewport struct {
	Width, Height float64
}

// Area returns width*height.
func (v Viewport) Area() float64 { return v.Width * v.Height }

// Spawner decides once per frame whether a new bubble appears.
type Spawner struct {
	rng    Rand
	sprite int
	tint   Color
}

// NewSpawner returns a spawner drawing from rng; nil uses math/rand/v2.
func NewSpawner(rng Rand, sprite int, tint Color) *Spawner {
	if rng == nil {
		rng = globalRand{}
	}
	return &Spawner{rng: rng, sprite: sprite, tint: tint}
}

// Chance is the viewport area relative to ReferenceArea.
func Chance(vp Viewport) float64 {
	return vp.Area() / ReferenceArea
}

// Threshold is the per-frame spawn probability for a frame of dt seconds.
// It is not capped; values of 1 or more make spawning certain.
func Threshold(dt float64, vp Viewport) float64 {
	return Chance(vp) * SpawnRate * dt
}

// Spawn draws one uniform sample and, if it falls under the threshold,
// samples and returns a fresh particle. A nil viewport never spawns.
func (s *Spawner) Spawn(dt float64, vp *Viewport) (Particle, bool) {
	if vp == nil || dt <= 0 {
		return Particle{}, false
	}
	if s.rng.Float64() > Threshold(dt, *vp) {
		return Particle{}, false
	}

	angle := s.uniform(0, 2*math.Pi)
	speed := s.uniform(MinSpeed, MaxSpeed)
	peak := s.uniform(MinPeakAlpha, MaxPeakAlpha)
	size := s.uniform(MinSize, MaxSize)
	x := s.uniform(-vp.Width/2, vp.Width/2)
	y := s.uniform(-vp.Height/2, vp.Height/2)

	tint := s.tint
	tint.A = 0
	return Particle{
		Position:  Vec2{x, y},
		Drift:     FromPolar(angle, speed),
		PeakAlpha: peak,
		Size:      size,
		Sprite:    s.sprite,
		Color:     tint,
		Timer:     NewTimer(Lifetime),
	}, true
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
