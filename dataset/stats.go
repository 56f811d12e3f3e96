package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/monjearse/eda-app/types"
)

// Quantile computes the q-th quantile (0..1) of the non-missing values with
// linear interpolation between closest ranks, matching the semantics of the
// usual dataframe libraries: position h = (n-1)*q, interpolating between
// floor(h) and ceil(h). Returns NaN for an empty column.
func Quantile(values []float64, q float64) float64 {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	n := len(valid)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	if n == 1 {
		return valid[0]
	}

	h := float64(n-1) * q
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return valid[lo]
	}
	frac := h - float64(lo)
	return valid[lo] + frac*(valid[hi]-valid[lo])
}

// Mean returns the arithmetic mean of the non-missing values, NaN if none.
func Mean(values []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Std returns the sample standard deviation (ddof=1), NaN when fewer than
// two values are present.
func Std(values []float64) float64 {
	mean := Mean(values)
	if math.IsNaN(mean) {
		return math.NaN()
	}
	sum, n := 0.0, 0
	for _, v := range values {
		if !math.IsNaN(v) {
			d := v - mean
			sum += d * d
			n++
		}
	}
	if n < 2 {
		return math.NaN()
	}
	return math.Sqrt(sum / float64(n-1))
}

// MinMax returns the smallest and largest non-missing values.
func MinMax(values []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ValueCount is one categorical value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns the distinct non-missing values of a categorical
// column ordered by descending count (first-seen order breaks ties),
// truncated to topN when topN > 0.
func ValueCounts(c *Column, topN int) []ValueCount {
	counts := map[string]int{}
	var order []string
	for _, v := range c.Values {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// DistinctCount returns the number of distinct non-missing values.
func DistinctCount(c *Column) int {
	return len(ValueCounts(c, 0))
}

// IQRSummary is the interquartile-range outlier summary of one numeric
// column: Q1/Q3 are the 25th/75th percentiles, the bounds sit 1.5*IQR
// beyond them, and a value is an outlier iff it falls strictly outside
// [Lower, Upper].
type IQRSummary struct {
	Q1       float64
	Q3       float64
	IQR      float64
	Lower    float64
	Upper    float64
	Outliers int
}

// IQROutlierSummary computes the IQR rule for a numeric column.
func IQROutlierSummary(c *Column) IQRSummary {
	q1 := Quantile(c.Floats, 0.25)
	q3 := Quantile(c.Floats, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	outliers := 0
	for _, v := range c.Floats {
		if math.IsNaN(v) {
			continue
		}
		if v < lower || v > upper {
			outliers++
		}
	}
	return IQRSummary{Q1: q1, Q3: q3, IQR: iqr, Lower: lower, Upper: upper, Outliers: outliers}
}

// describeColumns is the fixed header of the describe-all table, the union
// of numeric and categorical summaries.
var describeColumns = []string{
	"Coluna", "count", "unique", "top", "freq",
	"mean", "std", "min", "25%", "50%", "75%", "max",
}

// Describe builds the describe-all-column-kinds table: count plus quantile
// statistics for numeric columns, count/unique/top/freq for categorical
// ones. Cells that do not apply to a column kind read "NaN".
func Describe(d *Dataset) *types.Table {
	rows := make([][]string, 0, len(d.Columns))
	for i := range d.Columns {
		c := &d.Columns[i]
		row := make([]string, len(describeColumns))
		for k := range row {
			row[k] = "NaN"
		}
		row[0] = c.Name

		if c.Kind == Numeric {
			valid := c.ValidFloats()
			lo, hi := MinMax(c.Floats)
			row[1] = fmt.Sprintf("%d", len(valid))
			row[5] = formatStat(Mean(c.Floats))
			row[6] = formatStat(Std(c.Floats))
			row[7] = formatStat(lo)
			row[8] = formatStat(Quantile(c.Floats, 0.25))
			row[9] = formatStat(Quantile(c.Floats, 0.50))
			row[10] = formatStat(Quantile(c.Floats, 0.75))
			row[11] = formatStat(hi)
		} else {
			vc := ValueCounts(c, 0)
			row[1] = fmt.Sprintf("%d", c.Len()-c.Missing())
			row[2] = fmt.Sprintf("%d", len(vc))
			if len(vc) > 0 {
				row[3] = vc[0].Value
				row[4] = fmt.Sprintf("%d", vc[0].Count)
			}
		}
		rows = append(rows, row)
	}

	return &types.Table{Columns: append([]string(nil), describeColumns...), Rows: rows}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}

// CorrMatrix computes the pairwise Pearson correlation matrix over the
// numeric columns, using pairwise-complete observations. Returns the column
// labels and the square matrix; zero-variance pairs yield NaN.
func CorrMatrix(d *Dataset) ([]string, [][]float64) {
	nums := d.NumericColumns()
	labels := make([]string, len(nums))
	for i, c := range nums {
		labels[i] = c.Name
	}

	m := make([][]float64, len(nums))
	for i := range nums {
		m[i] = make([]float64, len(nums))
		for j := range nums {
			if i == j {
				m[i][j] = 1
				continue
			}
			m[i][j] = pearson(nums[i].Floats, nums[j].Floats)
		}
	}
	return labels, m
}

func pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	var sx, sy float64
	var count int
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		sx += x[i]
		sy += y[i]
		count++
	}
	if count < 2 {
		return math.NaN()
	}
	mx, my := sx/float64(count), sy/float64(count)

	var cov, vx, vy float64
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		dx, dy := x[i]-mx, y[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(vx*vy)
}
