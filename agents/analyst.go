package agents

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Analyst produces the descriptive-statistics overview: one describe-all
// table per dataset plus collaborator commentary.
type Analyst struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewAnalyst creates the analyst agent.
func NewAnalyst(provider llm.Provider, model string, logger *zap.Logger) *Analyst {
	return &Analyst{provider: provider, model: model, logger: logger}
}

// Describe never returns an error to the caller: per-dataset failures are
// converted into text blocks naming the dataset, and the remaining
// datasets are still processed.
func (a *Analyst) Describe(ctx context.Context, datasets map[string]*dataset.Dataset) []types.Block {
	results := []types.Block{}
	for _, name := range sortedNames(datasets) {
		d := datasets[name]
		if len(d.Columns) == 0 {
			results = append(results, types.NewTextBlock(
				fmt.Sprintf("Erro ao gerar resumo — %s", name),
				fmt.Sprintf("o dataset %s não possui colunas", name)))
			continue
		}

		desc := dataset.Describe(d)
		results = append(results, types.NewTableBlock(
			fmt.Sprintf("📊 Resumo estatístico — %s", name), desc))

		prompt := fmt.Sprintf("Explique resumidamente as estatísticas do dataset %s: %s",
			name, tablePreview(desc, 5))
		commentary, err := narrate(ctx, a.provider, a.model, prompt)
		if err != nil {
			a.logger.Warn("analyst commentary unavailable",
				zap.String("dataset", name), zap.Error(err))
			commentary = analystFallback
		}

		results = append(results, types.NewTextBlock(
			fmt.Sprintf("📝 Comentários — %s", name), commentary))
	}
	return results
}
