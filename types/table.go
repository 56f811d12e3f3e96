package types

// Table is a renderer-agnostic tabular payload. Rows are already formatted
// as strings; numeric formatting is the producer's concern.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// ChartKind enumerates the chart families the agents produce.
type ChartKind string

const (
	ChartHistogram ChartKind = "histogram"
	ChartBox       ChartKind = "box"
	ChartBar       ChartKind = "bar"
	ChartPie       ChartKind = "pie"
	ChartHeatmap   ChartKind = "heatmap"
)

// ChartSpec is a declarative chart description. The presentation layer owns
// rendering; agents only decide what to plot. Which fields are populated
// depends on Kind:
//
//   - histogram: XLabel, BinEdges, Counts
//   - box: YLabel, Box
//   - bar: XLabel, YLabel, Labels, Values
//   - pie: Labels, Values
//   - heatmap: Labels, Matrix
type ChartSpec struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`

	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`

	BinEdges []float64 `json:"bin_edges,omitempty"`
	Counts   []int     `json:"counts,omitempty"`

	Box *BoxStats `json:"box,omitempty"`

	Matrix [][]float64 `json:"matrix,omitempty"`
}

// BoxStats carries the five-number summary plus outliers for a box plot.
type BoxStats struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}
