// Copyright (C) 2019-2024, Lux Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pulsar

import (
	"context"
	"time"

	"github.com/luxfi/consensus/api/health"
	"github.com/luxfi/consensus/core"
	"github.com/luxfi/consensus/types"
	"github.com/luxfi/ids"
)

// Engine is a post-quantum secured chain engine
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

// New creates a new Pulsar engine
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

// GetBlock retrieves a block by ID
func (e *Engine) GetBlock(ctx context.Context, id ids.ID) (types.Block, error) {
	// Placeholder implementation
	return nil, core.ErrNotImplemented
}

// PutBlock stores a block
func (e *Engine) PutBlock(ctx context.Context, blk types.Block) error {
	// Placeholder implementation
	return core.ErrNotImplemented
}

// BuildBlock builds a new block
func (e *Engine) BuildBlock(ctx context.Context) (types.Block, error) {
	// Placeholder implementation
	return nil, core.ErrNotImplemented
}

// LastAccepted returns the last accepted block ID
func (e *Engine) LastAccepted(ctx context.Context) (ids.ID, error) {
	// Placeholder implementation
	return ids.Empty, core.ErrNotImplemented
}

// Health returns the health status
func (e *Engine) Health(ctx context.Context) (interface{}, error) {
	return map[string]interface{}{
		"state":  e.state,
		"engine": "pulsar",
	}, nil
}

// Timeout returns the timeout duration
func (e *Engine) Timeout() time.Duration {
	return 30 * time.Second
}