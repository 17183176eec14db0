package particle

import "math"

const (
	// Lifetime is how long every bubble lives, in seconds.
	Lifetime = 2.4

	MinSpeed     = 16.0
	MaxSpeed     = 64.0
	MinPeakAlpha = 0.3
	MaxPeakAlpha = 0.7
	MinSize      = 24.0
	MaxSize      = 84.0
)

// Color is a straight (non-premultiplied) RGBA tint with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Particle is one bubble sprite instance.
type Particle struct {
	Position  Vec2
	Z         float64
	Drift     Vec2
	PeakAlpha float64
	Size      float64
	Sprite    int
	Color     Color
	Timer     Timer
}

// Sprite holds what the renderer needs to draw one particle.
type Sprite struct {
	Position Vec2
	Z        float64
	Rotation float64
	Scale    float64
	Atlas    int
	Color    Color
}

// Envelope is the triangular opacity curve: 0 at f=0, peak at f=0.5, 0 at f=1.
func Envelope(f, peak float64) float64 {
	return (1 - math.Abs(f*2-1)) * peak
}

func (p *Particle) sprite() Sprite {
	return Sprite{
		Position: p.Position,
		Z:        p.Z,
		Scale:    p.Size,
		Atlas:    p.Sprite,
		Color:    p.Color,
	}
}
