package types

import "encoding/json"

// Canonical agent names. Answer.Agent is always one of these or AgentUnknown.
const (
	AgentAnalyst    = "AnalystAgent"
	AgentVisualizer = "VisualizerAgent"
	AgentPattern    = "PatternAgent"
	AgentAnomaly    = "AnomalyAgent"
	AgentAdvisor    = "AdvisorAgent"
	AgentUnknown    = "Unknown"
)

// Answer is the orchestrator's output: the name of the agent that handled
// the question plus the ordered blocks it produced. Result is never nil,
// only possibly empty; block order is presentation order.
type Answer struct {
	Agent  string  `json:"agent"`
	Result []Block `json:"result"`
}

// String renders the answer as JSON, the form persisted in the Q/A history.
func (a *Answer) String() string {
	data, err := json.Marshal(a)
	if err != nil {
		return a.Agent
	}
	return string(data)
}
