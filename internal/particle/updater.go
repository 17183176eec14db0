package particle

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny collections from being split across goroutines.
const minChunk = 64

// Update advances one particle. It reads only p.
func (p *Particle) Update(dt float64) {
	p.Color.A = float32(Envelope(p.Timer.Progress(), p.PeakAlpha))
	p.Position = p.Position.Add(p.Drift.Mul(dt))
}

// Update advances every particle. Timers must not have been accumulated for
// this frame yet.
func Update(ps []Particle, dt float64) {
	for i := range ps {
		ps[i].Update(dt)
	}
}

// UpdateParallel is Update split into chunks over at most workers goroutines.
// It returns only after every chunk is done.
func UpdateParallel(ctx context.Context, ps []Particle, dt float64, workers int) error {
	if workers <= 1 || len(ps) <= minChunk {
		Update(ps, dt)
		return nil
	}

	chunk := (len(ps) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(ps); start += chunk {
		end := min(start+chunk, len(ps))
		part := ps[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			Update(part, dt)
			return nil
		})
	}
	return g.Wait()
}
