package drawer

import "time"

// Clock provides time for animations and momentum expiry. Tests inject a
// fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses wall time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
