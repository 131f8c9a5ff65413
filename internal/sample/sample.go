// Package sample draws vectors of random values from standard distributions.
//
// All draws come from an explicit *rng.Stream; the distributions themselves
// are gonum's. Parameters can be supplied as scalars or as short sequences
// cycled across the draws (see the Broadcast variants).
package sample

import (
	"simlab/domain/core"
	"simlab/internal/rng"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws n values from a normal distribution with the given mean and
// standard deviation.
func Normal(s *rng.Stream, n int, mean, sd float64) ([]float64, error) {
	return NormalBroadcast(s, n, []float64{mean}, []float64{sd})
}

// NormalBroadcast draws n values from normal distributions whose parameters
// cycle over means and sds: draw j uses means[j % len(means)] and
// sds[j % len(sds)].
func NormalBroadcast(s *rng.Stream, n int, means, sds []float64) ([]float64, error) {
	if err := checkDrawCount(n); err != nil {
		return nil, err
	}
	if len(means) == 0 {
		return nil, core.NewInvalidArgumentError("means", "must not be empty")
	}
	if len(sds) == 0 {
		return nil, core.NewInvalidArgumentError("sds", "must not be empty")
	}
	for _, sd := range sds {
		if sd < 0 {
			return nil, core.NewInvalidArgumentError("sds", "standard deviation must be >= 0")
		}
	}

	out := make([]float64, n)
	for j := 0; j < n; j++ {
		dist := distuv.Normal{
			Mu:    means[j%len(means)],
			Sigma: sds[j%len(sds)],
			Src:   s,
		}
		if dist.Sigma == 0 {
			// distuv rejects Sigma == 0; a degenerate normal is just its mean.
			out[j] = dist.Mu
			continue
		}
		out[j] = dist.Rand()
	}
	return out, nil
}

// Uniform draws n values from a continuous uniform distribution on
// [min, max).
func Uniform(s *rng.Stream, n int, min, max float64) ([]float64, error) {
	return UniformBroadcast(s, n, []float64{min}, []float64{max})
}

// UniformBroadcast draws n values from uniform distributions whose bounds
// cycle over mins and maxs with the same rule as NormalBroadcast.
func UniformBroadcast(s *rng.Stream, n int, mins, maxs []float64) ([]float64, error) {
	if err := checkDrawCount(n); err != nil {
		return nil, err
	}
	if len(mins) == 0 {
		return nil, core.NewInvalidArgumentError("mins", "must not be empty")
	}
	if len(maxs) == 0 {
		return nil, core.NewInvalidArgumentError("maxs", "must not be empty")
	}

	out := make([]float64, n)
	for j := 0; j < n; j++ {
		lo := mins[j%len(mins)]
		hi := maxs[j%len(maxs)]
		if lo > hi {
			return nil, core.NewInvalidArgumentError("bounds", "min must be <= max")
		}
		if lo == hi {
			out[j] = lo
			continue
		}
		dist := distuv.Uniform{Min: lo, Max: hi, Src: s}
		out[j] = dist.Rand()
	}
	return out, nil
}

// checkDrawCount validates the draw count. The count is always a single
// integer; it is never inferred from parameter-sequence lengths.
func checkDrawCount(n int) error {
	if n < 1 {
		return core.NewInvalidArgumentError("n", "draw count must be >= 1")
	}
	return nil
}
