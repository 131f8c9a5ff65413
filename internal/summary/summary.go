// Package summary computes descriptive statistics for simulated data.
package summary

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"simlab/domain/core"
)

// Summary holds the descriptive statistics of one numeric sequence.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Describe computes summary statistics for data.
func Describe(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, core.ErrEmptyInput
	}

	s := Summary{Count: len(data)}
	var err error

	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		// A single observation has no sample deviation.
		s.StdDev = 0
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		s.Q25 = s.Median
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		s.Q75 = s.Median
	}
	return s, nil
}

// String renders the summary on one line for logs.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4f sd=%.4f min=%.4f q25=%.4f median=%.4f q75=%.4f max=%.4f",
		s.Count, s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max)
}
