package types

import "time"

/*
Clock is the cache's time source.

The same clock MUST be used to compute an entry's deadline at insert time and
to compare against it at read time. Mixing two time sources here is how skew
bugs happen: an entry could look expired the instant it was written, or live
long past its deadline.

Clock is an interface (rather than time.Now called inline) so tests can
construct caches with a controllable clock and check expiration boundaries
exactly, without sleeping.
*/
type Clock interface {

	// Now returns the current instant.
	Now() time.Time
}

// SystemClock is the default Clock. It reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
