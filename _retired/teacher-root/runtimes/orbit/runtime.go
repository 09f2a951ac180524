// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orbit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/luxfi/consensus/beam"
	"github.com/luxfi/consensus/engine/pulsar"
	"github.com/luxfi/consensus/photon"
	"github.com/luxfi/consensus/wave"
	"github.com/luxfi/consensus/focus"
	"github.com/luxfi/ids"
)

// Runtime implements the Orbit runtime for linear chain consensus
// This is the runtime for single-chain consensus at stellar scale
type Runtime struct {
	// Core engine
	engine *pulsar.Engine
	
	// Consensus stages
	photonStage photon.Photon     // Quantum sampling
	waveStage   wave.Wave         // Propagation
	focusStage  focus.Focus       // Confidence aggregation
	beamStage   beam.Consensus    // Chain finalization
	
	// Runtime state
	params    Parameters
	state     *runtimeState
	mu        sync.RWMutex
	
	// Metrics
	metrics   *Metrics
}

// Parameters for Orbit runtime
type Parameters struct {
	// Network parameters
	K               int
	AlphaPreference int
	AlphaConfidence int
	Beta            int
	
	// Performance tuning
	MaxBlocksPerSecond int
	MaxPendingBlocks   int
	BatchSize          int
}

// New creates a new Orbit runtime
func New(params Parameters) (*Runtime, error) {
	// Create consensus stages
	photonFactory := photon.NewFactory()
	waveFactory := wave.NewFactory()
	focusFactory := focus.NewFactory()
	
	photonStage := photonFactory.New()
	waveStage := waveFactory.New()
	focusStage := focusFactory.New()
	
	// Create beam consensus
	beamStage := beam.New(beam.Parameters{
		K:               params.K,
		AlphaPreference: params.AlphaPreference,
		AlphaConfidence: params.AlphaConfidence,
		Beta:            params.Beta,
	})
	
	// Create pulsar engine
	engine := pulsar.New(pulsar.Parameters{
		K:               params.K,
		AlphaPreference: params.AlphaPreference,
		AlphaConfidence: params.AlphaConfidence,
		Beta:            params.Beta,
	})
	
	return &Runtime{
		engine:      engine,
		photonStage: photonStage,
		waveStage:   waveStage,
		focusStage:  focusStage,
		beamStage:   beamStage,
		params:      params,
		state:       newRuntimeState(),
		metrics:     NewMetrics(),
	}, nil
}

// Start begins the Orbit runtime
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	if r.state.running {
		return fmt.Errorf("runtime already running")
	}
	
	// Initialize stages
	r.photonStage.Initialize(r.params.K, r.params.AlphaPreference)
	r.waveStage.Initialize(r.params.AlphaPreference, r.params.AlphaConfidence)
	r.focusStage.Initialize(r.params.AlphaConfidence, r.params.Beta)
	
	// Start engine
	if err := r.engine.Start(ctx); err != nil {
		return fmt.Errorf("failed to start pulsar engine: %w", err)
	}
	
	r.state.running = true
	r.state.startTime = time.Now()
	
	return nil
}

// Stop halts the Orbit runtime
func (r *Runtime) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	if !r.state.running {
		return fmt.Errorf("runtime not running")
	}
	
	// Stop engine
	if err := r.engine.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop pulsar engine: %w", err)
	}
	
	r.state.running = false
	return nil
}

// SubmitBlock submits a block for consensus
func (r *Runtime) SubmitBlock(ctx context.Context, block Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	if !r.state.running {
		return fmt.Errorf("runtime not running")
	}
	
	// Process through consensus stages
	// 1. Photon stage - quantum sampling
	if err := r.processPhoton(ctx, block); err != nil {
		return fmt.Errorf("photon stage failed: %w", err)
	}
	
	// 2. Wave stage - propagation
	if err := r.processWave(ctx, block); err != nil {
		return fmt.Errorf("wave stage failed: %w", err)
	}
	
	// 3. Focus stage - confidence aggregation
	if err := r.processFocus(ctx, block); err != nil {
		return fmt.Errorf("focus stage failed: %w", err)
	}
	
	// 4. Beam stage - chain finalization
	if err := r.processBeam(ctx, block); err != nil {
		return fmt.Errorf("beam stage failed: %w", err)
	}
	
	r.metrics.ProcessedBlocks.Inc()
	return nil
}

// processPhoton handles quantum sampling stage
func (r *Runtime) processPhoton(ctx context.Context, block Block) error {
	// Simplified - in production this would involve actual quantum sampling
	r.photonStage.RecordPoll(block.ID())
	return nil
}

// processWave handles propagation stage
func (r *Runtime) processWave(ctx context.Context, block Block) error {
	// Simplified - in production this would involve network propagation
	r.waveStage.RecordPoll(block.ID())
	return nil
}

// processFocus handles confidence aggregation
func (r *Runtime) processFocus(ctx context.Context, block Block) error {
	// Simplified - in production this would aggregate confidence scores
	r.focusStage.RecordPoll(block.ID())
	return nil
}

// processBeam handles chain finalization
func (r *Runtime) processBeam(ctx context.Context, block Block) error {
	// Submit to beam consensus for finalization
	return r.beamStage.Add(ctx, block)
}

// GetChainHeight returns the current chain height
func (r *Runtime) GetChainHeight() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.chainHeight
}

// GetFinalizedHeight returns the last finalized height
func (r *Runtime) GetFinalizedHeight() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.finalizedHeight
}

// Metrics returns runtime metrics
func (r *Runtime) Metrics() *Metrics {
	return r.metrics
}

// Block interface for Orbit runtime
type Block interface {
	ID() ids.ID
	Height() uint64
	ParentID() ids.ID
	Timestamp() time.Time
	Bytes() []byte
	Verify() error
}

// Runtime state
type runtimeState struct {
	running         bool
	startTime       time.Time
	chainHeight     uint64
	finalizedHeight uint64
	preference      ids.ID
}

func newRuntimeState() *runtimeState {
	return &runtimeState{}
}

// Metrics tracking
type Metrics struct {
	ProcessedBlocks   Counter
	FinalizedBlocks   Counter
	ConsensusLatency  Histogram
	BlocksPerSecond   Gauge
}

// Stub types for metrics
type Counter struct{ count int64 }
func (c *Counter) Inc() { c.count++ }

type Histogram struct{}
type Gauge struct{ value float64 }

func NewMetrics() *Metrics {
	return &Metrics{}
}