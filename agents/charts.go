package agents

import (
	"fmt"
	"math"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/types"
)

// Chart builders shared by the visual agents. Each returns an error instead
// of a degenerate chart; callers skip the column and move on.

const histogramBins = 30

func histogramChart(d *dataset.Dataset, c *dataset.Column) (*types.ChartSpec, error) {
	valid := c.ValidFloats()
	if len(valid) == 0 {
		return nil, fmt.Errorf("column %q has no numeric values", c.Name)
	}

	lo, hi := dataset.MinMax(c.Floats)
	bins := histogramBins
	if lo == hi {
		bins = 1
	}

	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := 0; i <= bins; i++ {
		edges[i] = lo + float64(i)*width
	}
	counts := make([]int, bins)
	for _, v := range valid {
		idx := bins - 1
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		} else {
			idx = 0
		}
		counts[idx]++
	}

	return &types.ChartSpec{
		Kind:     types.ChartHistogram,
		Title:    fmt.Sprintf("Distribuição de %s — %s", c.Name, d.Name),
		XLabel:   c.Name,
		BinEdges: edges,
		Counts:   counts,
	}, nil
}

func boxChart(d *dataset.Dataset, c *dataset.Column) (*types.ChartSpec, error) {
	valid := c.ValidFloats()
	if len(valid) == 0 {
		return nil, fmt.Errorf("column %q has no numeric values", c.Name)
	}

	sum := dataset.IQROutlierSummary(c)
	lo, hi := dataset.MinMax(c.Floats)

	var outliers []float64
	for _, v := range c.Floats {
		if math.IsNaN(v) {
			continue
		}
		if v < sum.Lower || v > sum.Upper {
			outliers = append(outliers, v)
		}
	}

	return &types.ChartSpec{
		Kind:   types.ChartBox,
		Title:  fmt.Sprintf("Boxplot de %s — %s", c.Name, d.Name),
		YLabel: c.Name,
		Box: &types.BoxStats{
			Min:      lo,
			Q1:       sum.Q1,
			Median:   dataset.Quantile(c.Floats, 0.50),
			Q3:       sum.Q3,
			Max:      hi,
			Outliers: outliers,
		},
	}, nil
}

func barChart(title, xLabel string, vc []dataset.ValueCount) (*types.ChartSpec, error) {
	if len(vc) == 0 {
		return nil, fmt.Errorf("no categories to plot")
	}
	labels := make([]string, len(vc))
	values := make([]float64, len(vc))
	for i, v := range vc {
		labels[i] = v.Value
		values[i] = float64(v.Count)
	}
	return &types.ChartSpec{
		Kind:   types.ChartBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Frequência",
		Labels: labels,
		Values: values,
	}, nil
}

func pieChart(d *dataset.Dataset, c *dataset.Column, vc []dataset.ValueCount) *types.ChartSpec {
	labels := make([]string, len(vc))
	values := make([]float64, len(vc))
	for i, v := range vc {
		labels[i] = v.Value
		values[i] = float64(v.Count)
	}
	return &types.ChartSpec{
		Kind:   types.ChartPie,
		Title:  fmt.Sprintf("Distribuição de %s (%s)", c.Name, d.Name),
		Labels: labels,
		Values: values,
	}
}

func heatmapChart(d *dataset.Dataset, labels []string, matrix [][]float64) *types.ChartSpec {
	return &types.ChartSpec{
		Kind:   types.ChartHeatmap,
		Title:  fmt.Sprintf("Matriz de Correlação — %s", d.Name),
		Labels: labels,
		Matrix: matrix,
	}
}
