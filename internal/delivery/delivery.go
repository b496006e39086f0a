// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a server that accepts outside traffic (HTTP today).
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
