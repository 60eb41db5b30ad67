package capture

import (
	"fmt"
	"time"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/wait"
)

const (
	domReadyPollInterval = 250 * time.Millisecond
	rowsPollInterval     = 300 * time.Millisecond
)

// WaitDOMReady polls the document's ready state until it is interactive or
// complete. Returns whether readiness was observed within the budget.
func WaitDOMReady(s *browser.Session, timeout time.Duration) bool {
	return wait.Poll(s.Context(), domReadyPollInterval, timeout, func() bool {
		var state string
		if err := s.Evaluate(`document.readyState`, &state); err != nil {
			return false
		}
		return state == "interactive" || state == "complete"
	})
}

// WaitEventRows polls for at least one listing row in the DOM.
func WaitEventRows(s *browser.Session, timeout time.Duration) bool {
	return wait.Poll(s.Context(), rowsPollInterval, timeout, func() bool {
		return countElements(s, EventRowSelector) > 0
	})
}

// ScrollUntilSettled drives lazy loading by scrolling to the bottom until the
// document height stops growing. It stops once the height has been stable for
// stableNeeded consecutive passes AND listing rows have been seen at least
// once, so it cannot declare a page settled before anything loaded. The
// overall timeout bounds the loop regardless of stability. Returns whether
// listing content was ever observed.
func ScrollUntilSettled(s *browser.Session, timeout, pause time.Duration, stableNeeded int) bool {
	deadline := time.Now().Add(timeout)

	var lastHeight int
	_ = s.Evaluate(`document.body.scrollHeight`, &lastHeight)

	stable := 0
	contentSeen := false

	for time.Now().Before(deadline) {
		_ = s.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil)
		time.Sleep(pause)

		var height int
		if err := s.Evaluate(`document.body.scrollHeight`, &height); err != nil {
			return contentSeen
		}
		if countElements(s, EventRowSelector) > 0 {
			contentSeen = true
		}

		if height == lastHeight {
			stable++
			if contentSeen && stable >= stableNeeded {
				break
			}
		} else {
			stable = 0
			lastHeight = height
		}
	}

	return contentSeen
}

// countElements is the point-in-time query behind the row polls.
func countElements(s *browser.Session, selector string) int {
	var n int
	if err := s.Evaluate(fmt.Sprintf(`document.querySelectorAll(%q).length`, selector), &n); err != nil {
		return 0
	}
	return n
}
