package particle

// Timer tracks how long a timed entity has lived.
// elapsed stays in [0, lifetime] and never decreases.
type Timer struct {
	elapsed  float64
	lifetime float64
}

// NewTimer panics when lifetime is not positive.
func NewTimer(lifetime float64) Timer {
	if !(lifetime > 0) {
		panic("particle: timer lifetime must be positive")
	}
	return Timer{lifetime: lifetime}
}

// Accumulate advances the timer by dt seconds, clamping at the lifetime.
func (t *Timer) Accumulate(dt float64) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.lifetime {
		t.elapsed = t.lifetime
	}
}

// Progress returns elapsed/lifetime in [0, 1].
func (t Timer) Progress() float64 { return t.elapsed / t.lifetime }

func (t Timer) Expired() bool { return t.elapsed >= t.lifetime }

func (t Timer) Elapsed() float64  { return t.elapsed }
func (t Timer) Lifetime() float64 { return t.lifetime }
