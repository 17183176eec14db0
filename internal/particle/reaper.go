package particle

// Accumulate advances every particle's timer by dt.
func Accumulate(ps []Particle, dt float64) {
	for i := range ps {
		ps[i].Timer.Accumulate(dt)
	}
}

// Reap drops expired particles in place and returns the shortened slice.
// Survivors keep their relative order.
func Reap(ps []Particle) []Particle {
	next := ps[:0]
	for i := range ps {
		if ps[i].Timer.Expired() {
			continue
		}
		next = append(next, ps[i])
	}
	return next
}
