package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Anomaly detects outliers with the IQR rule. The primary path asks the
// collaborator to interpret which numeric columns are most outlier-prone;
// the fallback path computes the IQR summary locally. Box plots are
// produced on both paths — only the narrative differs.
type Anomaly struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewAnomaly creates the anomaly agent.
func NewAnomaly(provider llm.Provider, model string, logger *zap.Logger) *Anomaly {
	return &Anomaly{provider: provider, model: model, logger: logger}
}

// IQROutliers analyzes each dataset for outliers.
func (a *Anomaly) IQROutliers(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]

		prompt := fmt.Sprintf("Você é um especialista em análise de dados. "+
			"Avalie o dataset '%s' e identifique quais variáveis numéricas "+
			"apresentam outliers com base no método IQR (Interquartile Range). "+
			"Explique resumidamente, em tom humano, "+
			"quais variáveis são mais críticas e o que isso pode indicar. "+
			"Dados estatísticos iniciais: %s.", name, numericPreview(d))

		commentary, err := narrate(ctx, a.provider, a.model, prompt)
		if err == nil {
			results = append(results, types.NewTextBlock(
				fmt.Sprintf("🧠 Interpretação Automática — %s", name), commentary))
			results = append(results, a.boxplots(d, name)...)
			continue
		}

		a.logger.Warn("anomaly commentary unavailable",
			zap.String("dataset", name), zap.Error(err))

		var lines []string
		for _, c := range d.NumericColumns() {
			sum := dataset.IQROutlierSummary(&c)
			lines = append(lines, fmt.Sprintf(
				"A variável **%s** possui **%d outlier(s)**. IQR = %.2f, limites [%.2f, %.2f].",
				c.Name, sum.Outliers, sum.IQR, sum.Lower, sum.Upper))
		}
		results = append(results, a.boxplots(d, name)...)
		results = append(results, types.NewTextBlock(
			fmt.Sprintf("⚠️ Resumo de Outliers — %s", name), strings.Join(lines, "\n")))
		results = append(results, types.NewTextBlock(
			fmt.Sprintf("📝 Comentários — %s", name), anomalyFallback))
	}
	return results
}

// boxplots builds one box plot per numeric column; failures are skipped.
func (a *Anomaly) boxplots(d *dataset.Dataset, name string) []types.Block {
	var out []types.Block
	for i := range d.Columns {
		c := &d.Columns[i]
		if c.Kind != dataset.Numeric {
			continue
		}
		chart, err := boxChart(d, c)
		if err != nil {
			continue
		}
		out = append(out, types.NewChartBlock(
			fmt.Sprintf("📊 Boxplot — %s (%s)", c.Name, name), chart))
	}
	return out
}
