// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package uptime re-exports github.com/luxfi/validators/uptime for backward compatibility.
package uptime

import (
	"github.com/luxfi/validators/uptime"
)

// State is an alias for uptime.State
type State = uptime.State
