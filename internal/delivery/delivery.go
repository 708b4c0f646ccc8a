// Package delivery defines the contract every transport-level server of the
// application satisfies, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server (HTTP today, possibly others later).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
