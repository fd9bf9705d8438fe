package service

import "time"

// Clock is the single source of "now" for the domain. Token issuance and
// validation must read time through it so every comparison uses the same
// timezone-aware instant; ad hoc time.Now() calls are prohibited there.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
}
