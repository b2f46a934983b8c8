// Package delivery defines the entry points through which the outside world
// talks to the application.
package delivery

import "context"

// Delivery is implemented by every transport (HTTP today) the application
// serves on.
type Delivery interface {
	// Serve blocks running the transport until it fails or is shut down.
	Serve(ctx context.Context) error
}
