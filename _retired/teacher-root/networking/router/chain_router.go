// Copyright (C) 2019-2024, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"context"
	"time"

	"github.com/luxfi/consensus/core"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/node/version"
)

// ChainRouter routes messages between blockchain chains
type ChainRouter struct {
	log log.Logger
}


// Initialize initializes the ChainRouter
func (cr *ChainRouter) Initialize(
	nodeID ids.NodeID,
	logInterface interface{},
	timeoutManager interface{},
	closeTimeout time.Duration,
	criticalChains interface{},
	sybilProtectionEnabled bool,
	trackedSubnets interface{},
	onFatal func(int),
	healthConfig HealthConfig,
	metricsRegisterer interface{},
) error {
	if logger, ok := logInterface.(log.Logger); ok {
		cr.log = logger
	}
	return nil
}

// Shutdown shuts down the router
func (cr *ChainRouter) Shutdown(ctx context.Context) error {
	return nil
}

// AddChain adds a chain to the router
func (cr *ChainRouter) AddChain(chainID ids.ID, handler interface{}) {
	// Implementation would go here
}

// RemoveChain removes a chain from the router
func (cr *ChainRouter) RemoveChain(chainID ids.ID) {
	// Implementation would go here
}

// HandleInbound handles an inbound message
func (cr *ChainRouter) HandleInbound(ctx context.Context, msg interface{}) {
	// Implementation would go here
}

// Connected is called when a node connects
func (cr *ChainRouter) Connected(nodeID ids.NodeID, nodeVersion *version.Application, subnetID ids.ID) {
	// Implementation would go here
}

// Disconnected is called when a node disconnects
func (cr *ChainRouter) Disconnected(nodeID ids.NodeID) {
	// Implementation would go here
}

// Benched is called when a node is benched
func (cr *ChainRouter) Benched(chainID ids.ID, nodeID ids.NodeID) {
	// Implementation would go here
}

// Unbenched is called when a node is unbenched
func (cr *ChainRouter) Unbenched(chainID ids.ID, nodeID ids.NodeID) {
	// Implementation would go here
}

// RegisterRequest registers a request
func (cr *ChainRouter) RegisterRequest(
	ctx context.Context,
	nodeID ids.NodeID,
	chainID ids.ID,
	requestID uint32,
	op interface{},
) {
	// Implementation would go here
}

// AppRequest sends an app request
func (cr *ChainRouter) AppRequest(
	ctx context.Context,
	nodeID ids.NodeID,
	requestID uint32,
	deadline time.Time,
	msg []byte,
) error {
	return nil
}

// AppResponse handles an app response
func (cr *ChainRouter) AppResponse(
	ctx context.Context,
	nodeID ids.NodeID,
	requestID uint32,
	msg []byte,
) error {
	return nil
}

// AppRequestFailed handles a failed app request
func (cr *ChainRouter) AppRequestFailed(
	ctx context.Context,
	nodeID ids.NodeID,
	requestID uint32,
	appErr *core.AppError,
) error {
	return nil
}

// AppGossip handles app gossip
func (cr *ChainRouter) AppGossip(
	ctx context.Context,
	nodeID ids.NodeID,
	msg []byte,
) error {
	return nil
}

// CrossChainAppRequest handles cross-chain app requests
func (cr *ChainRouter) CrossChainAppRequest(
	ctx context.Context,
	chainID ids.ID,
	requestID uint32,
	deadline time.Time,
	msg []byte,
) error {
	return nil
}

// CrossChainAppResponse handles cross-chain app responses
func (cr *ChainRouter) CrossChainAppResponse(
	ctx context.Context,
	chainID ids.ID,
	requestID uint32,
	msg []byte,
) error {
	return nil
}

// CrossChainAppRequestFailed handles failed cross-chain app requests
func (cr *ChainRouter) CrossChainAppRequestFailed(
	ctx context.Context,
	chainID ids.ID,
	requestID uint32,
) error {
	return nil
}

// Health returns the health of the router
func (cr *ChainRouter) Health(ctx context.Context) (interface{}, error) {
	return "healthy", nil
}

// HealthCheck returns the health check status of the router
func (cr *ChainRouter) HealthCheck(ctx context.Context) (interface{}, error) {
	return map[string]interface{}{
		"healthy": true,
	}, nil
}

// Trace wraps a router with tracing
func Trace(router interface{}, tracer interface{}) interface{} {
	// Would wrap the router with tracing
	return router
}