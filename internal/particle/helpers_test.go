package particle

// scriptedRand replays vals in order, then returns tail forever.
type scriptedRand struct {
	vals []float64
	tail float64
	n    int
}

func (r *scriptedRand) Float64() float64 {
	r.n++
	if len(r.vals) == 0 {
		return r.tail
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
