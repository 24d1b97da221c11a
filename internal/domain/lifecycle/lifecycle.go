// Package lifecycle holds process-wide timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup checks.
const DefaultTimeout = 10 * time.Second
