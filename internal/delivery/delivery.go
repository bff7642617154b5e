// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a running transport surface (HTTP today). Serve blocks until the
// listener fails or the application shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
