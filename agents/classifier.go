package agents

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/internal/metrics"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Classifier maps a free-text question to exactly one intent via the
// narrative collaborator. No caching, no retry: a failed collaborator call
// propagates, because without it the intent literally cannot be determined.
type Classifier struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewClassifier creates an intent classifier.
func NewClassifier(provider llm.Provider, model string, logger *zap.Logger) *Classifier {
	return &Classifier{provider: provider, model: model, logger: logger}
}

// Classify resolves the question to one intent. The collaborator response
// is trimmed and lower-cased, then matched against the known labels by
// substring in the canonical order; first match wins. When no label
// matches but the question itself asks for conclusions or a summary, the
// intent is forced to advisor. An explicit label match always beats the
// keyword override.
func (c *Classifier) Classify(ctx context.Context, question string) (Intent, error) {
	raw, err := complete(ctx, c.provider, c.model, intentSystemPrompt, question, 0)
	if err != nil {
		return IntentUnknown, types.NewError(types.ErrClassificationFailed,
			"intent classification call failed").WithCause(err)
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	intent, matched := matchIntent(normalized)
	if !matched && wantsConclusions(question) {
		intent = IntentAdvisor
	}

	c.logger.Debug("question classified",
		zap.String("response", normalized),
		zap.String("intent", string(intent)))
	metrics.IntentsTotal.WithLabelValues(string(intent)).Inc()
	return intent, nil
}
