package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/testutil/mocks"
	"github.com/monjearse/eda-app/types"
)

func TestSummarizeWithoutPriorAnswer(t *testing.T) {
	provider := mocks.NewMockProvider()
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	block := a.Summarize(context.Background(), nil)
	assert.Equal(t, "📌 Resumo Geral e Recomendações", block.Title)
	assert.Contains(t, block.Text, "Nenhuma análise disponível ainda.")
	assert.Contains(t, block.Text, SuggestionsMarker)

	// No collaborator call for the placeholder.
	assert.Equal(t, 0, provider.CallCount())
}

func TestSummarizeAppendsMissingSuggestions(t *testing.T) {
	provider := mocks.NewMockProvider().WithResponse("Resumo sem a seção esperada.")
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	last := &types.Answer{
		Agent:  types.AgentAnomaly,
		Result: []types.Block{types.NewTextBlock("⚠️ Resumo", "um outlier em idade")},
	}
	block := a.Summarize(context.Background(), last)

	assert.Equal(t, "📌 Resumo Geral, Recomendações e Perguntas Sugeridas", block.Title)
	assert.Contains(t, block.Text, "Resumo sem a seção esperada.")
	assert.Contains(t, block.Text, SuggestionsMarker)
}

func TestSummarizeKeepsExistingSuggestions(t *testing.T) {
	content := "Resumo.\n\nPerguntas sugeridas:\n- Pergunta própria?"
	provider := mocks.NewMockProvider().WithResponse(content)
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	last := &types.Answer{
		Agent:  types.AgentAnalyst,
		Result: []types.Block{types.NewTextBlock("📊 Resumo", "tabela")},
	}
	block := a.Summarize(context.Background(), last)

	assert.Equal(t, 1, strings.Count(block.Text, SuggestionsMarker))
	assert.Contains(t, block.Text, "Pergunta própria?")
}

func TestSummarizeEmbedsLastAgentAndBlocks(t *testing.T) {
	provider := mocks.NewMockProvider().WithResponse("ok")
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	last := &types.Answer{
		Agent: types.AgentPattern,
		Result: []types.Block{
			types.NewTextBlock("🧠 Interpretação", "correlação forte entre a e b"),
			types.NewChartBlock("🔗 Matriz", &types.ChartSpec{Kind: types.ChartHeatmap}),
		},
	}
	a.Summarize(context.Background(), last)

	call := provider.LastCall()
	require.NotNil(t, call)
	prompt := call.Request.Messages[len(call.Request.Messages)-1].Content
	assert.Contains(t, prompt, types.AgentPattern)
	assert.Contains(t, prompt, "correlação forte entre a e b")
	assert.Contains(t, prompt, "🔗 Matriz (chart)")
}

func TestSummarizeFallbackOnProviderError(t *testing.T) {
	provider := mocks.NewMockProvider().WithError(errors.New("quota"))
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	last := &types.Answer{
		Agent:  types.AgentAnalyst,
		Result: []types.Block{types.NewTextBlock("📊 Resumo", "x")},
	}
	block := a.Summarize(context.Background(), last)

	assert.Contains(t, block.Text, "Resumo automático indisponível.")
	assert.Contains(t, block.Text, "Recomendações:")
	assert.Contains(t, block.Text, SuggestionsMarker)
}

func TestSummarizeHistoryEmpty(t *testing.T) {
	provider := mocks.NewMockProvider()
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	block := a.SummarizeHistory(context.Background(), nil)
	assert.Equal(t, "📌 Conclusões Gerais", block.Title)
	assert.Contains(t, block.Text, "Ainda não foram feitas análises suficientes")
	assert.Contains(t, block.Text, SuggestionsMarker)
	assert.Equal(t, 0, provider.CallCount())
}

func TestSummarizeHistoryEmbedsRecords(t *testing.T) {
	provider := mocks.NewMockProvider().WithResponse("Conclusões objetivas.")
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	records := []history.Record{
		{Question: "outliers em idade?", Answer: "um outlier"},
		{Question: "correlações?", Answer: "a e b fortes"},
	}
	block := a.SummarizeHistory(context.Background(), records)

	prompt := provider.LastCall().Request.Messages[0].Content
	assert.Contains(t, prompt, "Pergunta: outliers em idade?")
	assert.Contains(t, prompt, "Resposta: a e b fortes")
	assert.Contains(t, block.Text, "Conclusões objetivas.")
	assert.Contains(t, block.Text, SuggestionsMarker)
}

func TestSummarizeHistoryFallbackOnProviderError(t *testing.T) {
	provider := mocks.NewMockProvider().WithError(errors.New("upstream down"))
	a := NewAdvisor(provider, "test-model", zap.NewNop())

	records := []history.Record{{Question: "q", Answer: "a"}}
	block := a.SummarizeHistory(context.Background(), records)

	assert.Contains(t, block.Text, "Erro ao gerar conclusões:")
	assert.Contains(t, block.Text, SuggestionsMarker)
}

func TestEnsureSuggestions(t *testing.T) {
	assert.Contains(t, ensureSuggestions("sem marcador", defaultSuggestions), SuggestionsMarker)
	withMarker := "tem\n\nPerguntas sugeridas:\n- x"
	assert.Equal(t, withMarker, ensureSuggestions(withMarker, defaultSuggestions))
}
