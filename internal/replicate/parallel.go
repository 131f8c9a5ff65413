package replicate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"simlab/domain/core"
	"simlab/internal/rng"
)

// StreamTrial is a trial that draws from an explicitly provided stream
// instead of closing over a shared one. Each invocation receives its own
// independently seeded stream, which makes parallel execution safe.
type StreamTrial func(s *rng.Stream) (Outcome, error)

// ReplicateStreams runs trial count times with up to workers concurrent
// invocations. Trial i draws from its own stream seeded with baseSeed+i, and
// results are reassembled in request order before collection, so the output
// is identical for any worker count, including 1.
func ReplicateStreams(ctx context.Context, count int, baseSeed int64, trial StreamTrial, mode Mode, workers int) (*Result, error) {
	if count < 1 {
		return nil, core.ErrCountTooSmall
	}
	if trial == nil {
		return nil, core.ErrNilTrial
	}
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := trial(rng.Derive(baseSeed, int64(i)))
			if err != nil {
				return core.NewTrialError(i+1, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collect(outcomes, mode), nil
}
