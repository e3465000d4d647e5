// Package delivery defines the inbound transport abstraction of the app.
package delivery

import "context"

// Delivery is a user-facing surface of the application. Implementations are
// collected in an fx group and served by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
