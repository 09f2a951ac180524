// Copyright (C) 2019-2024, Lux Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nebula

import (
	"context"
	"time"

	"github.com/luxfi/consensus/api/health"
	"github.com/luxfi/consensus/core"
	"github.com/luxfi/consensus/types"
	"github.com/luxfi/ids"
)

// Engine is a post-quantum secured DAG engine
type Engine struct {
	// Core consensus context
	ctx *core.Context

	// Current state
	state State

	// Health reporting
	health health.Checker
}

// State represents the engine state
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateStopped
)

// New creates a new Nebula engine
func New(ctx *core.Context) *Engine {
	return &Engine{
		ctx:   ctx,
		state: StateInitializing,
	}
}

// Initialize initializes the engine
func (e *Engine) Initialize(ctx context.Context) error {
	e.state = StateRunning
	return nil
}

// Start starts the engine
func (e *Engine) Start(ctx context.Context) error {
	if e.state != StateRunning {
		return core.ErrNotRunning
	}
	return nil
}

// Stop stops the engine
func (e *Engine) Stop(ctx context.Context) error {
	e.state = StateStopped
	return nil
}

// GetVertex retrieves a vertex by ID
func (e *Engine) GetVertex(ctx context.Context, id ids.ID) (types.Vertex, error) {
	// Placeholder implementation
	return nil, core.ErrNotImplemented
}

// PutVertex stores a vertex
func (e *Engine) PutVertex(ctx context.Context, vtx types.Vertex) error {
	// Placeholder implementation
	return core.ErrNotImplemented
}

// BuildVertex builds a new vertex
func (e *Engine) BuildVertex(ctx context.Context) (types.Vertex, error) {
	// Placeholder implementation
	return nil, core.ErrNotImplemented
}

// LastAccepted returns the last accepted vertices
func (e *Engine) LastAccepted(ctx context.Context) ([]ids.ID, error) {
	// Placeholder implementation
	return nil, core.ErrNotImplemented
}

// Health returns the health status
func (e *Engine) Health(ctx context.Context) (interface{}, error) {
	return map[string]interface{}{
		"state":  e.state,
		"engine": "nebula",
	}, nil
}

// Timeout returns the timeout duration
func (e *Engine) Timeout() time.Duration {
	return 30 * time.Second
}