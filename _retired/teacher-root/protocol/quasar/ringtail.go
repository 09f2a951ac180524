// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ringtail provides post-quantum cryptographic primitives for the Lux consensus.
// This is a stub implementation that forwards to the actual implementation in github.com/luxfi/crypto/ringtail.
package quasar

import (
	"crypto/rand"
	"errors"
)

// Type aliases for cleaner API
type (
	Precomp   = []byte
	Share     = []byte
	Cert      = []byte
	SecretKey = []byte
	PublicKey = []byte
	Signature = []byte // Alias for Share or Cert depending on context
)

// SecurityLevel represents the post-quantum security level
type SecurityLevel int

const (
	SecurityLow    SecurityLevel = 0
	SecurityMedium SecurityLevel = 1
	SecurityHigh   SecurityLevel = 2
)

// RingtailEngine represents the post-quantum consensus engine
type RingtailEngine interface {
	// Initialize the engine with security parameters
	Initialize(level SecurityLevel) error

	// Sign a message with the secret key
	Sign(msg []byte, sk SecretKey) (Signature, error)

	// Verify a signature
	Verify(msg []byte, sig Signature, pk PublicKey) bool

	// Generate a new key pair
	GenerateKeyPair() (SecretKey, PublicKey, error)

	// KEM operations for post-quantum key exchange
	Encapsulate(pk PublicKey) ([]byte, []byte, error)
	Decapsulate(ct []byte, sk SecretKey) ([]byte, error)

	// Shared secret operations
	CombineSharedSecrets(ss1, ss2 []byte) []byte
	DeriveKey(secret []byte, length int) []byte
}

// Error variables
var (
	ErrInvalidCertificate  = errors.New("invalid certificate")
	ErrMissingCertificate  = errors.New("missing certificate")
	ErrCertificateMismatch = errors.New("certificate mismatch")
)

// stubEngine is a stub implementation of RingtailEngine for testing
type stubEngine struct {
	level SecurityLevel
}

// NewRingtail creates a new ringtail engine
func NewRingtail() RingtailEngine {
	return &stubEngine{}
}

// Initialize sets the security level
func (e *stubEngine) Initialize(level SecurityLevel) error {
	e.level = level
	return nil
}

// Sign signs a message (stub implementation)
func (e *stubEngine) Sign(_ []byte, sk SecretKey) (Signature, error) {
	// Stub implementation - return non-zero signature
	sig := make([]byte, 32)
	// Put some non-zero bytes to make it a "valid" signature
	for i := range sig {
		sig[i] = byte(i + 1)
	}
	return sig, nil
}

// Verify verifies a signature (stub implementation)
func (e *stubEngine) Verify(msg []byte, sig Signature, pk PublicKey) bool {
	// Stub implementation - check if signature is non-zero
	// A real implementation would verify the cryptographic signature
	for _, b := range sig {
		if b != 0 {
			return true // Non-zero signature considered valid for stub
		}
	}
	return false // All-zero signature is invalid
}

// GenerateKeyPair generates a new key pair (stub implementation)
func (e *stubEngine) GenerateKeyPair() (SecretKey, PublicKey, error) {
	// Stub implementation
	sk := make([]byte, 32)
	pk := make([]byte, 32)
	return sk, pk, nil
}

// Encapsulate generates a ciphertext and shared secret (stub implementation)
func (e *stubEngine) Encapsulate(pk PublicKey) ([]byte, []byte, error) {
	ct := make([]byte, 64)
	ss := make([]byte, 32)
	if _, err := rand.Read(ct); err != nil {
		return nil, nil, err
	}
	if _, err := rand.Read(ss); err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

// Decapsulate recovers shared secret from ciphertext (stub implementation)
func (e *stubEngine) Decapsulate(ct []byte, sk SecretKey) ([]byte, error) {
	ss := make([]byte, 32)
	if _, err := rand.Read(ss); err != nil {
		return nil, err
	}
	return ss, nil
}

// CombineSharedSecrets combines two shared secrets (stub implementation)
func (e *stubEngine) CombineSharedSecrets(ss1, ss2 []byte) []byte {
	combined := make([]byte, 32)
	for i := 0; i < 32 && i < len(ss1) && i < len(ss2); i++ {
		combined[i] = ss1[i] ^ ss2[i]
	}
	return combined
}

// DeriveKey derives a key from shared secret (stub implementation)
func (e *stubEngine) DeriveKey(secret []byte, length int) []byte {
	key := make([]byte, length)
	copy(key, secret)
	return key
}

// KeyGen generates a key pair from seed
func KeyGen(seed []byte) ([]byte, []byte, error) {
	// Stub implementation
	sk := make([]byte, 32)
	pk := make([]byte, 32)
	copy(sk, seed)
	copy(pk, seed)
	return sk, pk, nil
}

// Precompute generates a precomputed share
func Precompute(sk []byte) (Precomp, error) {
	// Stub implementation
	precomp := make([]byte, 32)
	if _, err := rand.Read(precomp); err != nil {
		return nil, err
	}
	return precomp, nil
}

// QuickSign signs using a precomputed share
func QuickSign(precomp Precomp, msg []byte) (Share, error) {
	// Stub implementation
	share := make([]byte, 32)
	copy(share, precomp)
	// XOR with message hash for demo
	for i := 0; i < len(share) && i < len(msg); i++ {
		share[i] ^= msg[i]
	}
	return share, nil
}

// VerifyShare verifies a share signature
func VerifyShare(pk []byte, msg []byte, share []byte) bool {
	// Stub implementation - always return true
	return true
}

// Aggregate aggregates shares into a certificate
func Aggregate(shares []Share) (Cert, error) {
	// Stub implementation
	if len(shares) == 0 {
		return nil, errors.New("no shares to aggregate")
	}
	cert := make([]byte, 32)
	// XOR all shares together for demo
	for _, share := range shares {
		for i := 0; i < len(cert) && i < len(share); i++ {
			cert[i] ^= share[i]
		}
	}
	return cert, nil
}

// Verify verifies a certificate
func Verify(pk []byte, msg []byte, cert []byte) bool {
	// Stub implementation - always return true
	return true
}

// NewCertificate creates a new empty certificate
// func NewCertificate(round, height uint64, blockHash [32]byte) *Certificate {
// 	return rt.NewCertificate(round, height, blockHash)
// }

// NewCertificateManager creates a new certificate manager
// func NewCertificateManager(nodeID ids.NodeID, blsKey, rtKey interface{}, validators ValidatorSet) *CertificateManager {
// 	return rt.NewCertificateManager(nodeID, blsKey, rtKey, validators)
// }

// VerifyAggregate verifies an aggregate signature
// func VerifyAggregate(pubKeys [][]byte, msg []byte, aggregateData []byte, threshold int) error {
// 	return rt.VerifyAggregate(pubKeys, msg, aggregateData, threshold)
// }
