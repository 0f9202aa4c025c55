package app

import "time"

// FrameLimiter paces a loop to a fixed frame rate
type FrameLimiter struct {
	target time.Duration
	next   time.Time
}

// NewFrameLimiter creates a limiter for fps frames per second. fps <= 0 disables pacing.
func NewFrameLimiter(fps int) *FrameLimiter {
	f := &FrameLimiter{}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	return f
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision.
func (f *FrameLimiter) Wait() {
	if f.target <= 0 {
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch so the loop does not race to catch up
	if late := -time.Until(f.next); late > f.target {
		f.next = time.Now().Add(f.target)
	}
}
