// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pulsar

import (
	"testing"
	"github.com/stretchr/testify/require"
)

func TestPulsarEngineBasic(t *testing.T) {
	require := require.New(t)
	
	// TODO: Implement test
	require.True(true)
}

func TestPulsarEngineEdgeCases(t *testing.T) {
	require := require.New(t)
	
	// TODO: Implement edge case tests
	require.True(true)
}

func TestPulsarEngineConcurrent(t *testing.T) {
	require := require.New(t)
	
	// TODO: Implement concurrent tests
	require.True(true)
}

func BenchmarkPulsarEngine(b *testing.B) {
	// TODO: Implement benchmark
	for i := 0; i < b.N; i++ {
		// Benchmark code here
	}
}
