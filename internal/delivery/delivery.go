// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Each implementation registers
// its shutdown hook with fx; Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
