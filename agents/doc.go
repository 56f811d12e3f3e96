// Package agents implements the analysis agents and the intent-routing
// orchestrator of the EDA assistant.
//
// Each agent turns a snapshot of the loaded datasets into an ordered list
// of display blocks. Statistics and charts are always computed locally; the
// narrative collaborator is only asked for human-readable commentary, and
// every commentary call has a deterministic local fallback. The
// orchestrator classifies a free-text question into one intent and
// dispatches to exactly one agent per call.
package agents
