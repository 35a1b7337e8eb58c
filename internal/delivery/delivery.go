// Package delivery defines the interface every transport server implements.
package delivery

import "context"

// Delivery is a serving transport managed by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
