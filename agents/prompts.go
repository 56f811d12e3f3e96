package agents

// Prompt copy sent to the narrative collaborator and the deterministic
// fallback texts shown when it is unavailable. All of it is user-facing
// Portuguese and must stay stable; tests pin the invariant markers.

const intentSystemPrompt = "Você é um orquestrador de agentes EDA. Analise a pergunta e escolha SOMENTE UMA categoria entre:\n" +
	" - 'analyst' (estatísticas, tipos, ausentes)\n" +
	" - 'histogram' (gráficos de distribuição para variáveis numéricas)\n" +
	" - 'boxplot' (gráficos de boxplots para variáveis numéricas)\n" +
	" - 'barplot' (gráficos de barras para variáveis categóricas)\n" +
	" - 'pie' (gráficos de pizza para variáveis categóricas com poucas categorias)\n" +
	" - 'pattern' (correlações, frequências, clusters simples)\n" +
	" - 'anomaly' (detecção de outliers)\n" +
	" - 'advisor' (quando o usuário pedir conclusões gerais ou resumo das análises)\n" +
	"Responda apenas com a palavra da categoria."

// Persona system prompts for the priming round-trip the orchestrator issues
// before dispatching. The response is discarded.
const (
	personaAnalyst    = "Você é o Agente Analista. Foque em estatísticas descritivas, tipos e valores ausentes."
	personaVisualizer = "Você é o Agente Visualizador. Escolha gráficos adequados (histogramas, boxplots, barras, pizza)."
	personaPattern    = "Você é o Agente de Padrões. Foque em correlações numéricas e valores mais/menos frequentes."
	personaAnomaly    = "Você é o Agente de Anomalias. Foque em detecção de outliers com IQR."
	personaAdvisor    = "Você é o Agente de Conclusões. Resuma descobertas e recomendações a partir do histórico de análises."
)

// SuggestionsMarker is the section header every advisor answer must carry.
const SuggestionsMarker = "Perguntas sugeridas:"

const (
	defaultSuggestions = "\n\nPerguntas sugeridas:\n" +
		"- Quais variáveis apresentam maior variabilidade?\n" +
		"- Existem correlações fortes entre variáveis numéricas?\n" +
		"- Quais categorias aparecem com mais frequência?"

	historySuggestions = "\n\nPerguntas sugeridas:\n" +
		"- Existe alguma variável com tendência temporal?\n" +
		"- Quais relações ainda não foram exploradas?\n" +
		"- Onde podem existir inconsistências nos dados?"

	emptyHistorySuggestions = "\n\nPerguntas sugeridas:\n" +
		"- Qual tendência geral pode ser observada nos dados já analisados?\n" +
		"- Existem padrões repetidos ao longo do tempo?\n" +
		"- Quais insights podem ser aprofundados com novas análises?"
)

// Deterministic fallback commentary, one per narrative call site.
const (
	analystFallback = "Resumo automático indisponível (possível quota excedida). " +
		"Verifique valores ausentes, outliers e distribuições para obter insights iniciais."

	histogramFallback = "Resumo automático indisponível. " +
		"Sugestão: observe os histogramas para identificar distribuições assimétricas " +
		"e picos de frequência, que indicam concentração de valores ou outliers."

	boxplotFallback = "Resumo automático indisponível. " +
		"Sugestão: observe variáveis com grande dispersão nos boxplots — " +
		"elas indicam variabilidade alta ou presença de outliers."

	barplotFallback = "Resumo automático indisponível. " +
		"Sugestão: observe categorias dominantes e pouco representadas — " +
		"elas indicam concentração de registros ou casos raros."

	pieFallback = "Resumo automático indisponível. " +
		"Sugestão: observe gráficos com categorias dominantes — " +
		"elas podem indicar concentração de casos ou viés de amostragem."

	frequenciesFallback = "Resumo automático indisponível. " +
		"Sugestão: observe as categorias dominantes — elas indicam concentração de registros " +
		"ou possíveis viéses de coleta."

	anomalyFallback = "Resumo automático indisponível. " +
		"Variáveis com muitos outliers podem indicar erros de medição, " +
		"valores atípicos ou fenômenos raros que merecem investigação."
)
