// Package dataset holds the in-memory tabular data the agents analyze:
// the column-typed Dataset model, the atomically-replaced Store, CSV/ZIP
// ingestion and the descriptive statistics the analysis agents rely on.
package dataset

import "math"

// Kind distinguishes the two column families the agents care about.
type Kind string

const (
	Numeric     Kind = "numeric"
	Categorical Kind = "categorical"
)

// Column is a single typed column. Numeric columns store their values in
// Floats with NaN marking missing cells; categorical columns store raw
// strings in Values with "" marking missing cells. Only the slice matching
// Kind is populated.
type Column struct {
	Name   string
	Kind   Kind
	Floats []float64
	Values []string
}

// Len returns the number of cells, missing ones included.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Values)
}

// ValidFloats returns the non-missing numeric values, in row order.
func (c *Column) ValidFloats() []float64 {
	out := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Missing returns the number of missing cells.
func (c *Column) Missing() int {
	n := 0
	if c.Kind == Numeric {
		for _, v := range c.Floats {
			if math.IsNaN(v) {
				n++
			}
		}
		return n
	}
	for _, v := range c.Values {
		if v == "" {
			n++
		}
	}
	return n
}

// Dataset is a named, immutable-during-session table. Identity is the name;
// a new upload replaces the whole dataset, never merges into it.
type Dataset struct {
	Name    string
	Columns []Column
	Rows    int
}

// NumericColumns returns the numeric columns in declaration order.
func (d *Dataset) NumericColumns() []Column {
	var out []Column
	for _, c := range d.Columns {
		if c.Kind == Numeric {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns the non-numeric columns in declaration order.
func (d *Dataset) CategoricalColumns() []Column {
	var out []Column
	for _, c := range d.Columns {
		if c.Kind == Categorical {
			out = append(out, c)
		}
	}
	return out
}

// Column returns the named column, or nil.
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}
