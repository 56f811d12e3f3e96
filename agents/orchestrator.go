package agents

import (
	"context"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/internal/metrics"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// DefaultUser is the user identity attached to questions when the caller
// does not provide one.
const DefaultUser = "demo@local"

// defaultHistoryLimit bounds how many prior records the advisor path reads.
const defaultHistoryLimit = 20

// HistoryReader is the slice of the history store the orchestrator needs:
// the advisor path re-reads the acting user's records, most recent first.
type HistoryReader interface {
	Recent(user string, limit int) ([]history.Record, error)
}

// Config wires an Orchestrator.
type Config struct {
	Provider llm.Provider
	Model    string
	Store    *dataset.Store
	History  HistoryReader

	// HistoryLimit bounds the advisor's history read; 0 means the default.
	HistoryLimit int
	// DisablePersonaPriming turns off the per-intent persona round-trip
	// whose response is discarded.
	DisablePersonaPriming bool
}

// Orchestrator owns one instance of each analysis agent plus the intent
// classifier, and answers one question per call. Each call is independent:
// the only shared mutable context is the dataset store and the history.
type Orchestrator struct {
	classifier *Classifier
	analyst    *Analyst
	visual     *Visualizer
	patterns   *Pattern
	anomaly    *Anomaly
	advisor    *Advisor

	provider llm.Provider
	model    string
	store    *dataset.Store
	history  HistoryReader

	historyLimit  int
	primePersonas bool
	logger        *zap.Logger
}

// NewOrchestrator creates the orchestrator and its agents.
func NewOrchestrator(cfg Config, logger *zap.Logger) *Orchestrator {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &Orchestrator{
		classifier:    NewClassifier(cfg.Provider, cfg.Model, logger),
		analyst:       NewAnalyst(cfg.Provider, cfg.Model, logger),
		visual:        NewVisualizer(cfg.Provider, cfg.Model, logger),
		patterns:      NewPattern(cfg.Provider, cfg.Model, logger),
		anomaly:       NewAnomaly(cfg.Provider, cfg.Model, logger),
		advisor:       NewAdvisor(cfg.Provider, cfg.Model, logger),
		provider:      cfg.Provider,
		model:         cfg.Model,
		store:         cfg.Store,
		history:       cfg.History,
		historyLimit:  limit,
		primePersonas: !cfg.DisablePersonaPriming,
		logger:        logger,
	}
}

// Advisor exposes the advisor agent for callers that need upload-time
// summaries outside the question flow.
func (o *Orchestrator) Advisor() *Advisor { return o.advisor }

// Answer classifies the question and dispatches it to exactly one agent.
// The datasets are snapshotted once per call, so an upload that lands
// mid-analysis never produces a mixed view. The only error this method
// returns is a classification failure; every other problem is converted
// into blocks by the handling agent. An unmatched intent yields the
// Unknown sentinel answer, never an error.
func (o *Orchestrator) Answer(ctx context.Context, question, user string) (*types.Answer, error) {
	if user == "" {
		user = DefaultUser
	}

	intent, err := o.classifier.Classify(ctx, question)
	if err != nil {
		return nil, err
	}

	snapshot := o.store.Snapshot()

	var ans *types.Answer
	switch intent {
	case IntentAnalyst:
		o.prime(ctx, personaAnalyst, question)
		ans = &types.Answer{Agent: types.AgentAnalyst, Result: o.analyst.Describe(ctx, snapshot)}
	case IntentHistogram:
		o.prime(ctx, personaVisualizer, question)
		ans = &types.Answer{Agent: types.AgentVisualizer, Result: o.visual.Histograms(ctx, snapshot)}
	case IntentBoxplot:
		o.prime(ctx, personaVisualizer, question)
		ans = &types.Answer{Agent: types.AgentVisualizer, Result: o.visual.Boxplots(ctx, snapshot)}
	case IntentBarplot:
		o.prime(ctx, personaVisualizer, question)
		ans = &types.Answer{Agent: types.AgentVisualizer, Result: o.visual.Barplots(ctx, snapshot)}
	case IntentPie:
		o.prime(ctx, personaVisualizer, question)
		ans = &types.Answer{Agent: types.AgentVisualizer, Result: o.visual.Piecharts(ctx, snapshot)}
	case IntentPattern:
		o.prime(ctx, personaPattern, question)
		blocks := o.patterns.Correlations(ctx, snapshot)
		if wantsFrequencies(question) {
			blocks = append(blocks, o.patterns.Frequencies(ctx, snapshot)...)
		}
		ans = &types.Answer{Agent: types.AgentPattern, Result: blocks}
	case IntentAnomaly:
		o.prime(ctx, personaAnomaly, question)
		ans = &types.Answer{Agent: types.AgentAnomaly, Result: o.anomaly.IQROutliers(ctx, snapshot)}
	case IntentAdvisor:
		o.prime(ctx, personaAdvisor, question)
		records := o.recentHistory(user)
		ans = &types.Answer{
			Agent:  types.AgentAdvisor,
			Result: []types.Block{o.advisor.SummarizeHistory(ctx, records)},
		}
	default:
		ans = &types.Answer{
			Agent: types.AgentUnknown,
			Result: []types.Block{
				types.NewTextBlock("❓ Intenção não identificada", "Reformule a pergunta."),
			},
		}
	}

	if ans.Result == nil {
		ans.Result = []types.Block{}
	}
	metrics.QuestionsTotal.WithLabelValues(ans.Agent).Inc()
	o.logger.Info("question answered",
		zap.String("user", user),
		zap.String("intent", string(intent)),
		zap.String("agent", ans.Agent),
		zap.Int("blocks", len(ans.Result)))
	return ans, nil
}

// prime issues the persona round-trip for the matched intent and discards
// the response. The call exists for behavioral parity with the original
// pipeline; a failure here never affects the answer.
func (o *Orchestrator) prime(ctx context.Context, persona, question string) {
	if !o.primePersonas {
		return
	}
	if _, err := complete(ctx, o.provider, o.model, persona, question, 0); err != nil {
		o.logger.Debug("persona priming call failed", zap.Error(err))
	}
}

func (o *Orchestrator) recentHistory(user string) []history.Record {
	if o.history == nil {
		return nil
	}
	records, err := o.history.Recent(user, o.historyLimit)
	if err != nil {
		o.logger.Warn("history read failed, advising without it", zap.Error(err))
		return nil
	}
	return records
}
