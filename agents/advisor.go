package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Advisor produces overall summaries, recommendations and suggested
// follow-up questions, either from the last answer or from the user's
// analysis history. Every advisor block carries the "Perguntas sugeridas:"
// section, appended after the fact when the collaborator omits it.
type Advisor struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewAdvisor creates the advisor agent.
func NewAdvisor(provider llm.Provider, model string, logger *zap.Logger) *Advisor {
	return &Advisor{provider: provider, model: model, logger: logger}
}

// Summarize builds a summary of the last answer, or a placeholder when no
// analysis has been produced yet.
func (a *Advisor) Summarize(ctx context.Context, last *types.Answer) types.Block {
	if last == nil || len(last.Result) == 0 {
		return types.NewTextBlock("📌 Resumo Geral e Recomendações",
			"Nenhuma análise disponível ainda."+defaultSuggestions)
	}

	prompt := fmt.Sprintf(`Você é um assistente de análise exploratória de dados.
Baseado no resultado produzido pelo agente %s:

%s

Gere:
- Um resumo claro e curto (3 a 5 frases).
- Entre 2 e 3 recomendações práticas para próximos passos.
- 3 perguntas que o usuário pode fazer a seguir para entender melhor os dados.
Sempre inclua a seção "Perguntas sugeridas:" no final.`, last.Agent, formatBlocks(last.Result))

	commentary, err := narrate(ctx, a.provider, a.model, prompt)
	if err != nil {
		a.logger.Warn("advisor summary unavailable", zap.Error(err))
		commentary = "Resumo automático indisponível.\n\n" +
			"Recomendações:\n" +
			"- Continue explorando distribuições e correlações.\n" +
			"- Analise outliers para identificar padrões atípicos.\n" +
			"- Valide se existem valores ausentes relevantes." +
			defaultSuggestions
	}

	return types.NewTextBlock("📌 Resumo Geral, Recomendações e Perguntas Sugeridas",
		ensureSuggestions(commentary, defaultSuggestions))
}

// SummarizeHistory builds overall conclusions from the user's prior
// questions and answers.
func (a *Advisor) SummarizeHistory(ctx context.Context, records []history.Record) types.Block {
	if len(records) == 0 {
		return types.NewTextBlock("📌 Conclusões Gerais",
			"Ainda não foram feitas análises suficientes para gerar conclusões."+emptyHistorySuggestions)
	}

	var hist strings.Builder
	for _, r := range records {
		fmt.Fprintf(&hist, "Pergunta: %s\nResposta: %s\n", r.Question, r.Answer)
	}

	prompt := fmt.Sprintf(`Você é um assistente de análise de dados.
Aqui estão as perguntas e respostas anteriores do usuário:

%s

Com base nisso, escreva:
- 3 a 5 conclusões objetivas já obtidas dos dados.
- 2 recomendações práticas de próximos passos para análise.
- 3 perguntas sugeridas para aprofundar a exploração dos dados.`, hist.String())

	content, err := narrate(ctx, a.provider, a.model, prompt)
	if err != nil {
		a.logger.Warn("advisor conclusions unavailable", zap.Error(err))
		content = fmt.Sprintf("Erro ao gerar conclusões: %v\n\n"+
			"Conclusões preliminares não disponíveis.", err) + historySuggestions
	}

	return types.NewTextBlock("📌 Conclusões Gerais",
		ensureSuggestions(content, historySuggestions))
}

// ensureSuggestions appends the default suggested-questions section when
// the content does not already carry the marker.
func ensureSuggestions(content, suggestions string) string {
	if strings.Contains(content, SuggestionsMarker) {
		return content
	}
	return content + suggestions
}

// formatBlocks renders answer blocks for prompt embedding: titles plus text
// content; table and chart payloads are reduced to their titles.
func formatBlocks(blocks []types.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Type {
		case types.BlockText:
			fmt.Fprintf(&sb, "%s\n%s\n", b.Title, b.Text)
		default:
			fmt.Fprintf(&sb, "%s (%s)\n", b.Title, b.Type)
		}
	}
	return sb.String()
}
