// Package frame binds equal-length named columns into row-aligned records.
// It is the output sink the dataset recipes and experiment reports write
// into, not a general data-frame implementation.
package frame

import (
	"strconv"

	"simlab/domain/core"
)

// Column is one named sequence of values in a frame.
type Column interface {
	Name() string
	Len() int
	// Cell renders row i as a string for export sinks.
	Cell(i int) string
}

// NumberColumn holds float64 values.
type NumberColumn struct {
	name   string
	values []float64
}

// Numbers creates a numeric column.
func Numbers(name string, values []float64) *NumberColumn {
	return &NumberColumn{name: name, values: values}
}

func (c *NumberColumn) Name() string { return c.name }
func (c *NumberColumn) Len() int     { return len(c.values) }
func (c *NumberColumn) Cell(i int) string {
	return strconv.FormatFloat(c.values[i], 'g', -1, 64)
}

// Values returns the underlying numeric data.
func (c *NumberColumn) Values() []float64 { return c.values }

// LabelColumn holds string values (group names, subject identifiers).
type LabelColumn struct {
	name   string
	values []string
}

// Labels creates a string column.
func Labels(name string, values []string) *LabelColumn {
	return &LabelColumn{name: name, values: values}
}

func (c *LabelColumn) Name() string      { return c.name }
func (c *LabelColumn) Len() int          { return len(c.values) }
func (c *LabelColumn) Cell(i int) string { return c.values[i] }

// Values returns the underlying labels.
func (c *LabelColumn) Values() []string { return c.values }

// Frame is an ordered collection of equal-length named columns.
type Frame struct {
	cols []Column
}

// New builds a frame from the given columns. All columns must have the same
// length and distinct names.
func New(cols ...Column) (*Frame, error) {
	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		if c.Name() == "" {
			return nil, core.NewInvalidArgumentError("column", "name must not be empty")
		}
		if seen[c.Name()] {
			return nil, core.NewInvalidArgumentError("column", "duplicate name "+c.Name())
		}
		seen[c.Name()] = true
		if i > 0 && c.Len() != cols[0].Len() {
			return nil, core.NewLengthMismatchError("column "+c.Name(), cols[0].Len(), c.Len())
		}
	}
	return &Frame{cols: cols}, nil
}

// Rows returns the number of records.
func (f *Frame) Rows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Cols returns the number of columns.
func (f *Frame) Cols() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, bool) {
	for _, c := range f.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Numeric returns the values of the named numeric column.
func (f *Frame) Numeric(name string) ([]float64, bool) {
	c, ok := f.Column(name)
	if !ok {
		return nil, false
	}
	nc, ok := c.(*NumberColumn)
	if !ok {
		return nil, false
	}
	return nc.Values(), true
}

// Headers returns the column names as an export header row.
func (f *Frame) Headers() []string { return f.Names() }

// Records renders every row as strings, ready for CSV or spreadsheet output.
func (f *Frame) Records() [][]string {
	rows := make([][]string, f.Rows())
	for r := range rows {
		rec := make([]string, len(f.cols))
		for c, col := range f.cols {
			rec[c] = col.Cell(r)
		}
		rows[r] = rec
	}
	return rows
}
