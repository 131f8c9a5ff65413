package replicate

import (
	"gonum.org/v1/gonum/mat"
)

// Kind tags the shape a replication collected into.
type Kind int

const (
	// KindFlat: every trial returned a Scalar; Flat holds one value per
	// trial, in invocation order.
	KindFlat Kind = iota
	// KindMatrix: every trial returned a Vector of the same length k;
	// Matrix is k rows by count columns, column c holding trial c.
	KindMatrix
	// KindList: list mode, or simplification was not possible.
	KindList
)

// Result is the tagged outcome of a replication. Exactly one of Flat,
// Matrix, or List is populated, per Kind.
type Result struct {
	Kind   Kind
	Flat   []float64
	Matrix *mat.Dense
	List   []Outcome
}

// Trials returns the number of trial results collected.
func (r *Result) Trials() int {
	switch r.Kind {
	case KindFlat:
		return len(r.Flat)
	case KindMatrix:
		_, c := r.Matrix.Dims()
		return c
	default:
		return len(r.List)
	}
}

// At returns element row of the trial'th result for rectangular collections.
// For KindFlat, row must be 0.
func (r *Result) At(row, trial int) float64 {
	if r.Kind == KindFlat {
		if row != 0 {
			panic("replicate: flat result has a single row")
		}
		return r.Flat[trial]
	}
	return r.Matrix.At(row, trial)
}

// simplifyVectors assembles same-length vector outcomes into a k x count
// matrix. Zero-length vectors cannot form a matrix and report a mismatch.
func simplifyVectors(outcomes []Outcome) (*mat.Dense, bool) {
	k := -1
	for _, out := range outcomes {
		v, ok := out.(Vector)
		if !ok {
			return nil, false
		}
		if k == -1 {
			k = len(v)
		} else if len(v) != k {
			return nil, false
		}
	}
	if k < 1 {
		return nil, false
	}

	m := mat.NewDense(k, len(outcomes), nil)
	for c, out := range outcomes {
		v := out.(Vector)
		for r := 0; r < k; r++ {
			m.Set(r, c, v[r])
		}
	}
	return m, true
}
