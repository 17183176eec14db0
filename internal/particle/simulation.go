package particle

import "context"

// Simulation owns the live bubbles and runs the per-frame passes.
// It is not safe for concurrent use; call Tick from the frame loop only.
type Simulation struct {
	spawner   *Spawner
	particles []Particle
	workers   int
	sprites   []Sprite
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source. Tests pass a scripted one.
func WithRand(rng Rand) Option {
	return func(s *Simulation) { s.spawner.rng = rng }
}

// WithWorkers enables the parallel update pass with n goroutines.
func WithWorkers(n int) Option {
	return func(s *Simulation) { s.workers = n }
}

// NewSimulation builds a simulation that draws every bubble with the atlas
// entry sprite, resolved once by the caller.
func NewSimulation(sprite int, tint Color, opts ...Option) *Simulation {
	s := &Simulation{spawner: NewSpawner(nil, sprite, tint)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick runs spawn, update, accumulate and reap in that order.
// vp may be nil while the host has no surface yet.
func (s *Simulation) Tick(dt float64, vp *Viewport) {
	if p, ok := s.spawner.Spawn(dt, vp); ok {
		s.particles = append(s.particles, p)
	}

	if s.workers > 1 {
		// background context: the update pass cannot be cancelled mid-frame
		_ = UpdateParallel(context.Background(), s.particles, dt, s.workers)
	} else {
		Update(s.particles, dt)
	}

	Accumulate(s.particles, dt)
	s.particles = Reap(s.particles)
}

// Sprites returns render attributes for the live bubbles. The slice is reused
// by the next call.
func (s *Simulation) Sprites() []Sprite {
	s.sprites = s.sprites[:0]
	for i := range s.particles {
		s.sprites = append(s.sprites, s.particles[i].sprite())
	}
	return s.sprites
}

// Particles exposes the live collection for inspection. Callers must not keep
// it across Tick.
func (s *Simulation) Particles() []Particle { return s.particles }

func (s *Simulation) Len() int { return len(s.particles) }

// Reset discards every live bubble.
func (s *Simulation) Reset() {
	s.particles = nil
}
