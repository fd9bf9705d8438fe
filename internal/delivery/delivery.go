// Package delivery defines the contract for transport servers.
package delivery

import "context"

// Delivery is implemented by every transport server the application runs.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
