// Copyright (C) 2025, Lux Industries Inc All rights reserved.
// Orthogonal Module Implementations - Single Implementation Per Concern

package ai

import (
	"context"
	"fmt"
)

// === BASE MODULE ===

// baseModule provides common functionality for all modules
type baseModule struct {
	id     string
	typ    ModuleType
	config Config
}

func (m *baseModule) ID() string       { return m.id }
func (m *baseModule) Type() ModuleType { return m.typ }

func (m *baseModule) Initialize(ctx context.Context, config Config) error {
	m.config = config
	return nil
}

func (m *baseModule) Start(ctx context.Context) error { return nil }
func (m *baseModule) Stop(ctx context.Context) error  { return nil }

// === INFERENCE MODULE - ONE WAY TO INFER ===

type inferenceModule struct {
	baseModule
	model interface{} // LLM, Neural Network, or other model
}

func NewInferenceModule(id string, config interface{}) Module {
	return &inferenceModule{
		baseModule: baseModule{
			id:  id,
			typ: ModuleInference,
		},
	}
}

func (m *inferenceModule) Process(ctx context.Context, input Input) (Output, error) {
	// Single way to do inference regardless of underlying model
	switch input.Type {
	case InputBlock:
		return m.processBlock(ctx, input)
	case InputProposal:
		return m.processProposal(ctx, input)
	case InputVote:
		return m.processVote(ctx, input)
	case InputQuery:
		return m.processQuery(ctx, input)
	default:
		return Output{}, fmt.Errorf("unsupported input type: %s", input.Type)
	}
}

func (m *inferenceModule) processBlock(ctx context.Context, input Input) (Output, error) {
	// Unified block analysis
	analysis := map[string]interface{}{
		"validity":   true,
		"confidence": 0.95,
		"risk_score": 0.1,
		"features":   []string{"valid_signatures", "correct_hash", "proper_structure"},
	}

	return Output{
		Type: OutputPrediction,
		Data: analysis,
		Metadata: map[string]interface{}{
			"module": m.id,
			"model":  "unified_inference",
		},
	}, nil
}

func (m *inferenceModule) processProposal(ctx context.Context, input Input) (Output, error) {
	// Unified proposal analysis
	analysis := map[string]interface{}{
		"sentiment":    "positive",
		"complexity":   "medium",
		"impact_score": 0.7,
		"stakeholders": []string{"validators", "users"},
	}

	return Output{
		Type: OutputAnalysis,
		Data: analysis,
	}, nil
}

func (m *inferenceModule) processVote(ctx context.Context, input Input) (Output, error) {
	// Unified vote analysis
	analysis := map[string]interface{}{
		"weight":       1.0,
		"authenticity": true,
		"alignment":    "consistent",
	}

	return Output{
		Type: OutputAnalysis,
		Data: analysis,
	}, nil
}

func (m *inferenceModule) processQuery(ctx context.Context, input Input) (Output, error) {
	// Unified query processing
	response := map[string]interface{}{
		"answer":     "Based on current state analysis...",
		"confidence": 0.85,
		"sources":    []string{"historical_data", "current_metrics"},
	}

	return Output{
		Type: OutputPrediction,
		Data: response,
	}, nil
}

// === DECISION MODULE - ONE WAY TO DECIDE ===

type decisionModule struct {
	baseModule
	strategy interface{} // Decision strategy (voting, consensus, etc.)
}

func NewDecisionModule(id string, config interface{}) Module {
	return &decisionModule{
		baseModule: baseModule{
			id:  id,
			typ: ModuleDecision,
		},
	}
}

func (m *decisionModule) Process(ctx context.Context, input Input) (Output, error) {
	// Single way to make decisions regardless of strategy
	decision := map[string]interface{}{
		"action":       "approve",
		"confidence":   0.9,
		"reasoning":    "Analysis indicates positive outcome with high confidence",
		"alternatives": []string{"reject", "defer"},
	}

	return Output{
		Type: OutputDecision,
		Data: decision,
		Metadata: map[string]interface{}{
			"module":   m.id,
			"strategy": "consensus_weighted",
		},
	}, nil
}

// === LEARNING MODULE - ONE WAY TO LEARN ===

type learningModule struct {
	baseModule
	memory interface{} // Learning memory/state
}

func NewLearningModule(id string, config interface{}) Module {
	return &learningModule{
		baseModule: baseModule{
			id:  id,
			typ: ModuleLearning,
		},
	}
}

func (m *learningModule) Process(ctx context.Context, input Input) (Output, error) {
	// Single way to learn from experience
	// This is typically async and doesn't return immediate results

	// Extract learning signals
	signals := map[string]interface{}{
		"outcome":    input.Data,
		"feedback":   "positive",
		"adjustment": 0.1,
		"timestamp":  ctx.Value("timestamp"),
	}

	// Update internal state (in real implementation)
	// m.updateMemory(signals)

	return Output{
		Type: OutputAction,
		Data: map[string]interface{}{
			"learned": true,
			"signals": signals,
		},
		Metadata: map[string]interface{}{
			"module": m.id,
			"type":   "experience_update",
		},
	}, nil
}

// === COORDINATION MODULE - ONE WAY TO COORDINATE ===

type coordinationModule struct {
	baseModule
	network interface{} // Network/coordination state
}

func NewCoordinationModule(id string, config interface{}) Module {
	return &coordinationModule{
		baseModule: baseModule{
			id:  id,
			typ: ModuleCoordination,
		},
	}
}

func (m *coordinationModule) Process(ctx context.Context, input Input) (Output, error) {
	// Single way to coordinate with other nodes/modules
	coordination := map[string]interface{}{
		"broadcast":  true,
		"recipients": []string{"validator_nodes", "governance_dao"},
		"message":    input.Data,
		"priority":   "normal",
	}

	return Output{
		Type: OutputAction,
		Data: coordination,
		Metadata: map[string]interface{}{
			"module":  m.id,
			"network": "lux_consensus",
		},
	}, nil
}
