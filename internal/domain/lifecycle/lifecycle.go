// Package lifecycle holds shared bounds for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers and clients.
const DefaultTimeout = 15 * time.Second
