// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ringtail

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/luxfi/ids"
)

// QuasarService orchestrates Ringtail signing with precomputation.
// It runs alongside every validator to provide quantum-resistant finality.
type QuasarService struct {
	mu sync.RWMutex

	// Configuration
	nodeID     ids.NodeID
	keyPair    *KeyPair
	validators ValidatorSet

	// Precompute pool
	precomputer *Precomputer
	
	// Certificate management
	certManager *CertificateManager
	
	// Network interface
	network NetworkInterface
	
	// State
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NetworkInterface defines the network operations for the service.
type NetworkInterface interface {
	// BroadcastShare broadcasts a Ringtail share to other validators.
	BroadcastShare(share *Share) error
	
	// SendCertificate sends a completed certificate.
	SendCertificate(cert *Certificate) error
	
	// Subscribe to incoming shares and certificates.
	SubscribeShares() <-chan *Share
	SubscribeCertificates() <-chan *Certificate
}

// NewQuasarService creates a new Quasar service.
func NewQuasarService(nodeID ids.NodeID, keyPair *KeyPair, validators ValidatorSet, network NetworkInterface) *QuasarService {
	return &QuasarService{
		nodeID:      nodeID,
		keyPair:     keyPair,
		validators:  validators,
		network:     network,
		certManager: NewCertificateManager(nodeID, nil, keyPair, validators),
	}
}

// Start starts the Quasar service.
func (qs *QuasarService) Start(ctx context.Context) error {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	if qs.running {
		return nil
	}

	qs.ctx, qs.cancel = context.WithCancel(ctx)
	qs.running = true

	// Start precomputer
	qs.precomputer = NewPrecomputer(qs.keyPair, runtime.NumCPU())
	qs.precomputer.Start(qs.ctx)

	// Start goroutines
	go qs.shareProcessor()
	go qs.certificateProcessor()
	go qs.metricsCollector()

	return nil
}

// Stop stops the Quasar service.
func (qs *QuasarService) Stop() error {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	if !qs.running {
		return nil
	}

	qs.cancel()
	qs.running = false

	// Stop precomputer
	if qs.precomputer != nil {
		qs.precomputer.Stop()
	}

	return nil
}

// CreateShare creates a share for a block using precomputed data.
func (qs *QuasarService) CreateShare(round, height uint64, blockHash [32]byte) (*Share, error) {
	// Get precomputed share data
	preShare := qs.precomputer.GetShare()
	if preShare == nil {
		// Fall back to online computation
		return qs.certManager.CreateShare(round, height, blockHash)
	}

	// Bind precomputed share to this block
	share := &Share{
		ValidatorID: qs.nodeID,
		Index:       preShare.Index,
		ShareData:   qs.bindShare(preShare.Data, blockHash),
	}

	// Broadcast immediately
	if err := qs.network.BroadcastShare(share); err != nil {
		return nil, err
	}

	return share, nil
}

// bindShare binds a precomputed share to a specific block.
func (qs *QuasarService) bindShare(preShare []byte, blockHash [32]byte) []byte {
	// Implement actual binding with luxfi/ringtail
	// This combines the precomputed share with the block hash
	
	scheme := NewScheme()
	
	// Unmarshal precomputed data
	precomp := scheme.NewPrecomputed()
	if err := precomp.UnmarshalBinary(preShare); err != nil {
		// Fall back to online signing if precompute is invalid
		return nil
	}
	
	// Bind to the specific block hash
	sig, err := scheme.BindPrecomputed(precomp, blockHash[:])
	if err != nil {
		return nil
	}
	
	// Serialize the final signature
	sigBytes, err := sig.MarshalBinary()
	if err != nil {
		return nil
	}
	
	return sigBytes
}

// shareProcessor processes incoming shares from other validators.
func (qs *QuasarService) shareProcessor() {
	shares := qs.network.SubscribeShares()
	
	for {
		select {
		case <-qs.ctx.Done():
			return
		case share := <-shares:
			qs.processShare(share)
		}
	}
}

// processShare processes a single share.
func (qs *QuasarService) processShare(share *Share) {
	// Verify share
	validator, err := qs.validators.GetValidator(share.ValidatorID)
	if err != nil {
		return
	}

	if err := Verify(validator.RTPubKey, nil, &SignatureShare{
		ValidatorID: share.ValidatorID,
		ShareIndex:  share.Index,
		ShareData:   share.ShareData,
	}); err != nil {
		return
	}

	// Add to certificate manager
	// TODO: Extract round from share
	round := uint64(0)
	cert, err := qs.certManager.ProcessShare(round, *share)
	if err != nil {
		return
	}

	// If certificate is complete, broadcast it
	if cert != nil {
		qs.network.SendCertificate(cert)
	}
}

// certificateProcessor processes completed certificates.
func (qs *QuasarService) certificateProcessor() {
	certs := qs.network.SubscribeCertificates()
	
	for {
		select {
		case <-qs.ctx.Done():
			return
		case cert := <-certs:
			qs.processCertificate(cert)
		}
	}
}

// processCertificate processes a completed certificate.
func (qs *QuasarService) processCertificate(cert *Certificate) {
	// Verify certificate
	threshold := qs.validators.GetThreshold()
	
	// Collect public keys
	pubKeys := make([][]byte, 0, len(cert.Shares))
	for _, share := range cert.Shares {
		validator, err := qs.validators.GetValidator(share.ValidatorID)
		if err != nil {
			continue
		}
		pubKeys = append(pubKeys, validator.RTPubKey)
	}

	// Verify aggregate
	if err := VerifyAggregate(pubKeys, nil, cert.AggregateData, threshold); err != nil {
		return
	}

	// Certificate is valid - store or forward to consensus engine
}

// metricsCollector collects service metrics.
func (qs *QuasarService) metricsCollector() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-qs.ctx.Done():
			return
		case <-ticker.C:
			qs.collectMetrics()
		}
	}
}

// collectMetrics collects current metrics.
func (qs *QuasarService) collectMetrics() {
	metrics := map[string]interface{}{
		"precomputed_shares": qs.precomputer.Available(),
		"pending_certs":      0, // TODO: Get from cert manager
		"cpu_usage":          runtime.NumGoroutine(),
	}
	
	// Log or export metrics
	_ = metrics
}

// GetStats returns service statistics.
func (qs *QuasarService) GetStats() map[string]interface{} {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return map[string]interface{}{
		"running":            qs.running,
		"precomputed_shares": qs.precomputer.Available(),
		"node_id":            qs.nodeID.String(),
	}
}