package chain

import "errors"

// ErrSkipped is returned when an operation is skipped
var ErrSkipped = errors.New("operation skipped")
