package channel

import "time"

// Backoff is the bounded reconnect policy for the inbox channel. Zero
// Attempts disables reconnecting entirely.
type Backoff struct {
	Base     time.Duration
	Max      time.Duration
	Attempts int
}

// Delay returns how long to wait before the given attempt (1-based),
// doubling from Base and capped at Max.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			return b.Max
		}
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}
