// Package lifecycle holds process lifecycle constants shared by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations (server drain,
// database ping) driven by fx lifecycle hooks.
const DefaultTimeout = 30 * time.Second
