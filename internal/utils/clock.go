package utils

import "time"

// TimestampPrecision is the resolution every stored timestamp is cut to.
// Both stores keep microseconds, so comparing a local and a remote copy of
// the same write gives equality.
const TimestampPrecision = time.Microsecond

// Now returns the current UTC time at [TimestampPrecision].
func Now() time.Time {
	return time.Now().UTC().Truncate(TimestampPrecision)
}
