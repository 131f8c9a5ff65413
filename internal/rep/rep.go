// Package rep repeats sequences under the each/times/length-out rules used
// throughout the dataset recipes (group factors, block labels).
package rep

import (
	"simlab/domain/core"
)

// Options controls how Repeat expands its input.
//
// Each repeats every element contiguously Each times and is applied first.
// Times then repeats the whole expanded sequence Times times. TimesEach
// instead repeats element i exactly TimesEach[i] times and must match the
// input length. LengthOut truncates or cyclically extends the Each-expanded
// sequence to an exact final length; when set it wins over Times and
// TimesEach, which are ignored.
//
// Zero values mean unset (Each and Times default to 1).
type Options struct {
	Each      int
	Times     int
	TimesEach []int
	LengthOut int
}

// Repeat expands values according to opts. The input is never modified.
func Repeat[T any](values []T, opts Options) ([]T, error) {
	if err := validate(len(values), opts); err != nil {
		return nil, err
	}

	each := opts.Each
	if each == 0 {
		each = 1
	}

	expanded := make([]T, 0, len(values)*each)
	for _, v := range values {
		for i := 0; i < each; i++ {
			expanded = append(expanded, v)
		}
	}

	// LengthOut overrides every other repetition rule.
	if opts.LengthOut > 0 {
		return cycleTo(expanded, opts.LengthOut), nil
	}

	if opts.TimesEach != nil {
		out := make([]T, 0, len(values))
		for i, v := range values {
			for n := 0; n < opts.TimesEach[i]; n++ {
				out = append(out, v)
			}
		}
		return out, nil
	}

	times := opts.Times
	if times == 0 {
		times = 1
	}
	out := make([]T, 0, len(expanded)*times)
	for i := 0; i < times; i++ {
		out = append(out, expanded...)
	}
	return out, nil
}

func validate(inputLen int, opts Options) error {
	if opts.Each < 0 {
		return core.NewInvalidArgumentError("each", "must be >= 0")
	}
	if opts.Times < 0 {
		return core.NewInvalidArgumentError("times", "must be >= 0")
	}
	if opts.LengthOut < 0 {
		return core.NewInvalidArgumentError("length_out", "must be >= 0")
	}
	if opts.LengthOut > 0 && inputLen == 0 {
		return core.ErrEmptyInput
	}
	if opts.TimesEach != nil {
		if len(opts.TimesEach) != inputLen {
			return core.NewLengthMismatchError("times_each", inputLen, len(opts.TimesEach))
		}
		if opts.Each > 1 {
			return core.NewInvalidArgumentError("times_each", "cannot combine with each > 1")
		}
		if opts.Times > 1 {
			return core.NewInvalidArgumentError("times_each", "cannot combine with times")
		}
		for _, n := range opts.TimesEach {
			if n < 0 {
				return core.NewInvalidArgumentError("times_each", "counts must be >= 0")
			}
		}
	}
	return nil
}

// cycleTo repeats values cyclically until the output has exactly n elements.
func cycleTo[T any](values []T, n int) []T {
	out := make([]T, n)
	if len(values) == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = values[i%len(values)]
	}
	return out
}
