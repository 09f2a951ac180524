// Copyright (C) 2020-2025, Lux Indutries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bootstrap

import "github.com/luxfi/ids"

var (
	nodeID0 = ids.GenerateTestNodeID()
	nodeID1 = ids.GenerateTestNodeID()
	nodeID2 = ids.GenerateTestNodeID()

	blkID0 = ids.GenerateTestID()
	blkID1 = ids.GenerateTestID()
)
