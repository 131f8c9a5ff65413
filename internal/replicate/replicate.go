// Package replicate runs a stochastic trial a fixed number of times and
// collects the results, either simplified into one rectangular collection
// when every trial produced the same shape, or kept as an ordered list.
package replicate

import (
	"simlab/domain/core"
	"simlab/internal/frame"
)

// Trial produces one stochastic result. A trial closes over whatever stream
// and parameters it needs; the runner only calls it.
type Trial func() (Outcome, error)

// Mode selects how trial results are collected.
type Mode int

const (
	// Simplify collapses uniform-shaped results into a flat vector or a
	// matrix. When shapes differ it silently degrades to List behavior.
	Simplify Mode = iota
	// List keeps every result as-is, in invocation order.
	List
)

// Outcome is one trial result: a scalar, a fixed-length numeric vector, or a
// labeled table. The variant set is sealed so collection can switch on shape.
type Outcome interface {
	outcome()
}

// Scalar is a single numeric trial result.
type Scalar float64

// Vector is a fixed-length numeric trial result.
type Vector []float64

// Table is a labeled tabular trial result.
type Table struct {
	Frame *frame.Frame
}

func (Scalar) outcome() {}
func (Vector) outcome() {}
func (Table) outcome()  {}

// Replicate invokes trial exactly count times, strictly in order, and
// collects the results according to mode. The first trial error aborts the
// run with no partial result. Reproducibility is the caller's concern:
// reseed the shared stream before calling.
func Replicate(count int, trial Trial, mode Mode) (*Result, error) {
	if count < 1 {
		return nil, core.ErrCountTooSmall
	}
	if trial == nil {
		return nil, core.ErrNilTrial
	}

	outcomes := make([]Outcome, count)
	for i := 0; i < count; i++ {
		out, err := trial()
		if err != nil {
			return nil, core.NewTrialError(i+1, err)
		}
		outcomes[i] = out
	}
	return collect(outcomes, mode), nil
}

// collect turns ordered outcomes into a Result. Simplification is best
// effort: a shape mismatch falls back to the list form, never an error.
func collect(outcomes []Outcome, mode Mode) *Result {
	if mode == List {
		return &Result{Kind: KindList, List: outcomes}
	}
	if flat, ok := simplifyScalars(outcomes); ok {
		return &Result{Kind: KindFlat, Flat: flat}
	}
	if m, ok := simplifyVectors(outcomes); ok {
		return &Result{Kind: KindMatrix, Matrix: m}
	}
	return &Result{Kind: KindList, List: outcomes}
}

func simplifyScalars(outcomes []Outcome) ([]float64, bool) {
	flat := make([]float64, len(outcomes))
	for i, out := range outcomes {
		s, ok := out.(Scalar)
		if !ok {
			return nil, false
		}
		flat[i] = float64(s)
	}
	return flat, true
}
