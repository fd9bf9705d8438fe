// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as database pings and
// HTTP server drain.
const DefaultTimeout = 10 * time.Second
