// SPDX-License-Identifier: BUSL-1.1
// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quasar

import (
	"context"
	"sync"
	"time"
)

// Parameters defines Quasar consensus parameters
type Parameters struct {
	K                     int           // Sample size
	AlphaPreference       int           // Preference threshold
	AlphaConfidence       int           // Confidence threshold  
	Beta                  int           // Consecutive rounds
	MaxItemProcessingTime time.Duration // Processing timeout
	QuasarTimeout         time.Duration // Ringtail aggregation timeout
	QuasarThreshold       int           // Ringtail threshold
}

// DefaultParameters for mainnet (21 nodes)
var DefaultParameters = Parameters{
	K:                     21,
	AlphaPreference:       13,
	AlphaConfidence:       18,
	Beta:                  8,
	MaxItemProcessingTime: 9630 * time.Millisecond,
	QuasarTimeout:         1000 * time.Millisecond,
	QuasarThreshold:       15, // 2f+1 for 21 nodes
}

// ID type for consensus
type ID [32]byte

// Empty ID
var Empty = ID{}

// NodeID represents a node identifier
type NodeID string

// Vertex represents a DAG vertex
type Vertex interface {
	ID() ID
	Parents() []ID
	Height() uint64
	Timestamp() time.Time
	Transactions() []ID
	Verify(context.Context) error
	Bytes() []byte
}

// QBlock represents a Quasar block with dual certificates
type QBlock struct {
	Height    uint64
	VertexIDs []ID
	QBlockID  ID
	BLSCert   []byte
	RTCert    []byte
}

// Engine implements the Quasar consensus engine
type Engine struct {
	mu     sync.RWMutex
	params Parameters
	nodeID NodeID

	// Nova DAG
	vertices map[ID]Vertex
	frontier []ID

	// Q-blocks
	qBlocks  []QBlock
	lastQBlock *QBlock

	// Callbacks
	finalizedCallback func(QBlock)
}

// NewEngine creates a new Quasar engine
func NewEngine(params Parameters, nodeID NodeID) *Engine {
	return &Engine{
		params:   params,
		nodeID:   nodeID,
		vertices: make(map[ID]Vertex),
	}
}

// SetFinalizedCallback sets the Q-block finalized callback
func (e *Engine) SetFinalizedCallback(fn func(QBlock)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finalizedCallback = fn
}

// Initialize initializes the engine
func (e *Engine) Initialize(ctx context.Context) error {
	// Initialize Nova DAG
	// Initialize Ringtail
	return nil
}

// AddVertex adds a vertex to the Nova DAG
func (e *Engine) AddVertex(ctx context.Context, vtx Vertex) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Verify vertex
	if err := vtx.Verify(ctx); err != nil {
		return err
	}

	// Add to DAG
	e.vertices[vtx.ID()] = vtx
	
	// Update frontier
	// Run consensus
	
	return nil
}

// RecordPoll records votes from a node
func (e *Engine) RecordPoll(ctx context.Context, nodeID NodeID, votes []ID) error {
	// Record votes
	// Check for finalization
	return nil
}

// GetLastQBlock returns the last finalized Q-block
func (e *Engine) GetLastQBlock() (*QBlock, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	
	if e.lastQBlock == nil {
		return nil, false
	}
	return e.lastQBlock, true
}

// ConsensusStatus represents the current consensus state
type ConsensusStatus struct {
	PreferenceStrength int
	Confidence         int
}

// ConsensusStatus returns the current consensus status
func (e *Engine) ConsensusStatus() ConsensusStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return ConsensusStatus{
		PreferenceStrength: len(e.vertices),
		Confidence:         len(e.qBlocks),
	}
}

// GetFinalizedCallback returns the finalized callback function
func (e *Engine) GetFinalizedCallback() func(QBlock) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.finalizedCallback
}