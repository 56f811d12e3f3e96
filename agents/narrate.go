package agents

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/internal/metrics"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// complete issues one collaborator round-trip and returns the trimmed text
// of the first choice. No retry: a failed call surfaces as an error and the
// caller decides the fallback.
func complete(ctx context.Context, p llm.Provider, model, system, user string, temperature float32) (string, error) {
	msgs := make([]llm.Message, 0, 2)
	if system != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: system})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: user})

	start := time.Now()
	resp, err := p.Completion(ctx, &llm.ChatRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: temperature,
	})
	metrics.CollaboratorLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return llm.FirstText(resp), nil
}

// narrate asks the collaborator for commentary at the temperature all
// analysis agents use.
func narrate(ctx context.Context, p llm.Provider, model, prompt string) (string, error) {
	text, err := complete(ctx, p, model, "", prompt, 0.2)
	if err != nil {
		metrics.NarrativeFallbacks.Inc()
	}
	return text, err
}

// sortedNames returns the dataset names in a stable order so block order is
// deterministic across calls.
func sortedNames(datasets map[string]*dataset.Dataset) []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// numericPreview renders the numeric describe statistics of a dataset as
// the compact support text embedded in commentary prompts.
func numericPreview(d *dataset.Dataset) string {
	var sb strings.Builder
	for _, c := range d.NumericColumns() {
		valid := c.ValidFloats()
		lo, hi := dataset.MinMax(c.Floats)
		fmt.Fprintf(&sb, "%s: count=%d, mean=%.6g, std=%.6g, min=%.6g, 25%%=%.6g, 50%%=%.6g, 75%%=%.6g, max=%.6g\n",
			c.Name, len(valid),
			dataset.Mean(c.Floats), dataset.Std(c.Floats), lo,
			dataset.Quantile(c.Floats, 0.25), dataset.Quantile(c.Floats, 0.50),
			dataset.Quantile(c.Floats, 0.75), hi)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// categoricalPreview renders unique/top/freq per categorical column.
func categoricalPreview(d *dataset.Dataset) string {
	var sb strings.Builder
	for i := range d.Columns {
		c := &d.Columns[i]
		if c.Kind != dataset.Categorical {
			continue
		}
		vc := dataset.ValueCounts(c, 1)
		if len(vc) == 0 {
			fmt.Fprintf(&sb, "%s: unique=0\n", c.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s: unique=%d, top=%s, freq=%d\n",
			c.Name, dataset.DistinctCount(c), vc[0].Value, vc[0].Count)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// tablePreview renders the first maxRows rows of a table, one line per row.
func tablePreview(t *types.Table, maxRows int) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Columns, " | "))
	for i, row := range t.Rows {
		if i >= maxRows {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, " | "))
	}
	return sb.String()
}
