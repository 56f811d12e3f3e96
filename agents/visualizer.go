package agents

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Visualizer produces the chart views: histograms and boxplots for numeric
// columns, bar and pie charts for categorical ones. Chart generation is
// local; one commentary call per dataset (not per column) follows the
// charts, with chart-type-specific fallback copy.
type Visualizer struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewVisualizer creates the visualizer agent.
func NewVisualizer(provider llm.Provider, model string, logger *zap.Logger) *Visualizer {
	return &Visualizer{provider: provider, model: model, logger: logger}
}

// Histograms emits one histogram per numeric column. A column that fails
// to chart is skipped; the others continue.
func (v *Visualizer) Histograms(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		for i := range d.Columns {
			c := &d.Columns[i]
			if c.Kind != dataset.Numeric {
				continue
			}
			chart, err := histogramChart(d, c)
			if err != nil {
				continue
			}
			results = append(results, types.NewChartBlock(
				fmt.Sprintf("📈 Distribuição — %s (%s)", c.Name, name), chart))
		}

		prompt := fmt.Sprintf("Você é um analista de dados. Analise os histogramas das variáveis numéricas "+
			"do dataset '%s' e descreva brevemente padrões visíveis: assimetrias, "+
			"dispersões e concentrações. Dados de apoio: %s.", name, numericPreview(d))
		results = append(results, v.commentary(ctx, name, prompt, histogramFallback))
	}
	return results
}

// Boxplots emits one box plot per numeric column.
func (v *Visualizer) Boxplots(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		for i := range d.Columns {
			c := &d.Columns[i]
			if c.Kind != dataset.Numeric {
				continue
			}
			chart, err := boxChart(d, c)
			if err != nil {
				continue
			}
			results = append(results, types.NewChartBlock(
				fmt.Sprintf("📊 Boxplot — %s (%s)", c.Name, name), chart))
		}

		prompt := fmt.Sprintf("Analise os boxplots das variáveis numéricas do dataset '%s'. "+
			"Explique em linguagem natural quais variáveis apresentam maior dispersão, "+
			"assimetria ou outliers significativos. Use um tom analítico e direto. "+
			"Dados estatísticos: %s.", name, numericPreview(d))
		results = append(results, v.commentary(ctx, name, prompt, boxplotFallback))
	}
	return results
}

// Barplots emits a top-10 frequency bar chart per categorical column.
func (v *Visualizer) Barplots(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		for i := range d.Columns {
			c := &d.Columns[i]
			if c.Kind != dataset.Categorical {
				continue
			}
			vc := dataset.ValueCounts(c, 10)
			chart, err := barChart(
				fmt.Sprintf("Top categorias — %s (%s)", c.Name, name), c.Name, vc)
			if err != nil {
				continue
			}
			results = append(results, types.NewChartBlock(
				fmt.Sprintf("📊 Categorias mais frequentes — %s (%s)", c.Name, name), chart))
		}

		prompt := fmt.Sprintf("Analise as distribuições categóricas do dataset '%s'. "+
			"Identifique categorias dominantes, raras e possíveis desequilíbrios "+
			"de frequência. Dados de apoio: %s.", name, categoricalPreview(d))
		results = append(results, v.commentary(ctx, name, prompt, barplotFallback))
	}
	return results
}

// Piecharts emits a pie chart per categorical column whose distinct-value
// count is in [2, 6] — below two is degenerate, above six is illegible.
func (v *Visualizer) Piecharts(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		for i := range d.Columns {
			c := &d.Columns[i]
			if c.Kind != dataset.Categorical {
				continue
			}
			vc := dataset.ValueCounts(c, 0)
			if len(vc) < 2 || len(vc) > 6 {
				continue
			}
			results = append(results, types.NewChartBlock(
				fmt.Sprintf("🥧 Distribuição (pizza) — %s (%s)", c.Name, name),
				pieChart(d, c, vc)))
		}

		prompt := fmt.Sprintf("Analise os gráficos de pizza do dataset '%s'. "+
			"Explique brevemente o equilíbrio entre categorias, e destaque se há predominância "+
			"de alguma delas. Dados categóricos: %s.", name, categoricalPreview(d))
		results = append(results, v.commentary(ctx, name, prompt, pieFallback))
	}
	return results
}

func (v *Visualizer) commentary(ctx context.Context, name, prompt, fallback string) types.Block {
	commentary, err := narrate(ctx, v.provider, v.model, prompt)
	if err != nil {
		v.logger.Warn("visual commentary unavailable",
			zap.String("dataset", name), zap.Error(err))
		commentary = fallback
	}
	return types.NewTextBlock(fmt.Sprintf("🧠 Interpretação Automática — %s", name), commentary)
}
