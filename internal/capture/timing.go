package capture

import "time"

// Timing bounds every poll in the capture core. Each wait is a fixed-interval
// bounded poll; none of them raises on timeout.
type Timing struct {
	DOMReadyTimeout   time.Duration
	ConsentTimeout    time.Duration
	OddsFormatTimeout time.Duration
	RowsTimeout       time.Duration
	PaginationWait    time.Duration
	ClickWindow       time.Duration
	HashTimeout       time.Duration
	SignatureTimeout  time.Duration
	ScrollTimeout     time.Duration
	ScrollPause       time.Duration
	StableScrolls     int

	// Jittered courtesy delay between page visits, inclusive bounds in
	// seconds. Pacing, not correctness.
	PageDelayMinSec int
	PageDelayMaxSec int
}

// DefaultTiming mirrors the budgets the site has been observed to need.
func DefaultTiming() Timing {
	return Timing{
		DOMReadyTimeout:   20 * time.Second,
		ConsentTimeout:    8 * time.Second,
		OddsFormatTimeout: 8 * time.Second,
		RowsTimeout:       10 * time.Second,
		PaginationWait:    8 * time.Second,
		ClickWindow:       12 * time.Second,
		HashTimeout:       8 * time.Second,
		SignatureTimeout:  10 * time.Second,
		ScrollTimeout:     30 * time.Second,
		ScrollPause:       2 * time.Second,
		StableScrolls:     3,
		PageDelayMinSec:   6,
		PageDelayMaxSec:   8,
	}
}
