// Package delivery defines the contract every transport implementation
// (HTTP, workers, ...) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context is
// cancelled or the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
