// Package lifecycle holds process lifecycle constants shared by the
// application surfaces.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a serving surface.
const DefaultTimeout = 10 * time.Second
