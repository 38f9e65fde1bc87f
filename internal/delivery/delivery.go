// Package delivery defines the contract every transport entrypoint
// of the service implements.
package delivery

import "context"

// Delivery is a long-running transport server, started by the
// composition root and shut down through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
