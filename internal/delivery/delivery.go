// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown is driven by the lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
