package lifecycle

import (
	"context"
	"time"
)

// Policy is the polling budget used to observe settlement.
type Policy struct {
	Attempts int
	Interval time.Duration
}

// Poll calls check until it reports done or the attempts run out. The first check
// runs immediately and Interval elapses between consecutive checks. It returns the
// number of checks made and whether the last one reported done. The context is only
// observed between checks.
func (p Policy) Poll(ctx context.Context, check func(ctx context.Context) bool) (int, bool, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if check(ctx) {
			return attempt, true, nil
		}
		if attempt == attempts {
			return attempt, false, nil
		}
		if ctx.Err() != nil {
			return attempt, false, ctx.Err()
		}

		timer := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, false, ctx.Err()
		case <-timer.C:
		}
	}
}
