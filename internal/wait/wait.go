// Package wait provides the bounded polling primitive every browser wait in
// this project is built on. The automation surface only exposes point-in-time
// queries, so "waiting" means re-asking until a deadline.
package wait

import (
	"context"
	"time"
)

// Poll runs cond every interval until it reports true or timeout elapses.
// It returns whether cond ever reported true. A timeout is not an error:
// callers treat absence as a degraded-but-defined state. Errors inside cond
// are the closure's problem; returning false keeps the poll going.
func Poll(ctx context.Context, interval, timeout time.Duration, cond func() bool) bool {
	if cond() {
		return true
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if cond() {
				return true
			}
		}
	}
	return false
}
