// Package experiment composes the replication runner with the samplers to
// produce seeded, reproducible experiment reports.
package experiment

import (
	"context"
	"time"

	"simlab/domain/core"
	"simlab/internal/replicate"
	"simlab/internal/rng"
	"simlab/internal/sample"
	"simlab/internal/summary"
)

// Config describes a sampling-distribution experiment: Trials repetitions of
// "draw SampleSize values from Normal(Mean, StdDev) and take the mean".
type Config struct {
	Seed       int64   `json:"seed"`
	Trials     int     `json:"trials"`
	SampleSize int     `json:"sample_size"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Workers    int     `json:"workers"`
}

// DefaultConfig returns a modest sampling-distribution setup.
func DefaultConfig() Config {
	return Config{
		Seed:       42,
		Trials:     1000,
		SampleSize: 30,
		Mean:       100,
		StdDev:     15,
		Workers:    1,
	}
}

// Report is the reproducibility manifest of one experiment run: everything
// needed to regenerate the result, plus the result's summary.
type Report struct {
	RunID      core.RunID      `json:"run_id"`
	Seed       int64           `json:"seed"`
	Trials     int             `json:"trials"`
	SampleSize int             `json:"sample_size"`
	Workers    int             `json:"workers"`
	Means      summary.Summary `json:"means"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SamplingDistribution runs the experiment and summarizes the distribution
// of sample means. Workers > 1 runs trials concurrently on independent
// per-trial streams; the result is identical either way.
func SamplingDistribution(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Trials < 1 {
		return nil, core.ErrCountTooSmall
	}

	trial := func(s *rng.Stream) (replicate.Outcome, error) {
		xs, err := sample.Normal(s, cfg.SampleSize, cfg.Mean, cfg.StdDev)
		if err != nil {
			return nil, err
		}
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		return replicate.Scalar(sum / float64(len(xs))), nil
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	res, err := replicate.ReplicateStreams(ctx, cfg.Trials, cfg.Seed, trial, replicate.Simplify, workers)
	if err != nil {
		return nil, err
	}

	means, err := summary.Describe(res.Flat)
	if err != nil {
		return nil, err
	}

	return &Report{
		RunID:      core.NewID(),
		Seed:       cfg.Seed,
		Trials:     cfg.Trials,
		SampleSize: cfg.SampleSize,
		Workers:    workers,
		Means:      means,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
