package agents

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Pattern finds relationships in the data: numeric correlations and
// categorical frequency patterns.
type Pattern struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewPattern creates the pattern agent.
func NewPattern(provider llm.Provider, model string, logger *zap.Logger) *Pattern {
	return &Pattern{provider: provider, model: model, logger: logger}
}

// Correlations renders the numeric correlation matrix per dataset as a
// heatmap and asks the collaborator to interpret the strongest
// relationships. When that call fails, the strongest pairs are computed
// locally instead: flatten the matrix excluding self-pairs, sort by value
// descending, keep the top 5.
func (p *Pattern) Correlations(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		labels, matrix := dataset.CorrMatrix(d)

		results = append(results, types.NewChartBlock(
			fmt.Sprintf("🔗 Matriz de Correlação — %s", name),
			heatmapChart(d, labels, matrix)))

		prompt := fmt.Sprintf("Você é um analista de dados. Analise a matriz de correlação do dataset '%s'. "+
			"Descreva, de forma clara e objetiva, as relações mais fortes (positivas e negativas), "+
			"indicando possíveis implicações. Use uma linguagem humana e precisa. "+
			"Matriz de correlação: %s.", name, corrPreview(labels, matrix))

		commentary, err := narrate(ctx, p.provider, p.model, prompt)
		if err != nil {
			p.logger.Warn("correlation commentary unavailable",
				zap.String("dataset", name), zap.Error(err))
			results = append(results, types.NewTextBlock(
				fmt.Sprintf("📝 Comentários — %s", name),
				"Resumo automático indisponível.\n\n"+
					"Correlações mais fortes encontradas localmente:\n- "+
					strings.Join(topPairs(labels, matrix, 5), "\n- ")))
			continue
		}
		results = append(results, types.NewTextBlock(
			fmt.Sprintf("🧠 Interpretação Automática — %s", name), commentary))
	}
	return results
}

// Frequencies analyzes frequency patterns in categorical columns: a top-10
// bar chart per column plus one commentary per dataset. Datasets without
// categorical columns are skipped.
func (p *Pattern) Frequencies(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		cats := d.CategoricalColumns()
		if len(cats) == 0 {
			continue
		}

		var lastFreq []dataset.ValueCount
		for i := range cats {
			vc := dataset.ValueCounts(&cats[i], 10)
			chart, err := barChart(
				fmt.Sprintf("Top categorias — %s (%s)", cats[i].Name, name), cats[i].Name, vc)
			if err != nil {
				continue
			}
			lastFreq = vc
			results = append(results, types.NewChartBlock(
				fmt.Sprintf("📊 Padrões de Frequência — %s (%s)", cats[i].Name, name), chart))
		}

		prompt := fmt.Sprintf("Analise os padrões de frequência das variáveis categóricas do dataset '%s'. "+
			"Descreva quais categorias aparecem com maior e menor frequência, "+
			"e o que isso pode sugerir sobre os dados. "+
			"Resumo de frequências: %s.", name, freqPreview(lastFreq))

		commentary, err := narrate(ctx, p.provider, p.model, prompt)
		if err != nil {
			p.logger.Warn("frequency commentary unavailable",
				zap.String("dataset", name), zap.Error(err))
			commentary = frequenciesFallback
		}
		results = append(results, types.NewTextBlock(
			fmt.Sprintf("🧠 Interpretação Automática — %s", name), commentary))
	}
	return results
}

// topPairs flattens the correlation matrix excluding self-pairs, sorts by
// value descending and formats the strongest n as "a–b: 0.87" entries.
func topPairs(labels []string, matrix [][]float64, n int) []string {
	type pair struct {
		a, b string
		v    float64
	}
	var pairs []pair
	for i := range matrix {
		for j := range matrix[i] {
			if i == j || math.IsNaN(matrix[i][j]) {
				continue
			}
			pairs = append(pairs, pair{a: labels[i], b: labels[j], v: matrix[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].v > pairs[j].v })

	if len(pairs) > n {
		pairs = pairs[:n]
	}
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, fmt.Sprintf("%s–%s: %.2f", p.a, p.b, p.v))
	}
	return out
}

func corrPreview(labels []string, matrix [][]float64) string {
	var sb strings.Builder
	for i, row := range matrix {
		for j, v := range row {
			if j <= i || math.IsNaN(v) {
				continue
			}
			fmt.Fprintf(&sb, "%s/%s=%.3f ", labels[i], labels[j], v)
		}
	}
	return strings.TrimSpace(sb.String())
}

func freqPreview(vc []dataset.ValueCount) string {
	parts := make([]string, 0, len(vc))
	for _, v := range vc {
		parts = append(parts, fmt.Sprintf("%s=%d", v.Value, v.Count))
	}
	return strings.Join(parts, ", ")
}
