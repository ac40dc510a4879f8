// Package delivery holds the transports exposing the engine.
package delivery

import "context"

// Delivery is a long running transport started by a command's fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
