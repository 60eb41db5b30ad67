package capture

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/wait"
)

const hashPollInterval = 200 * time.Millisecond

// pageHash is the fragment the client router exposes for a page index.
func pageHash(page int) string {
	return fmt.Sprintf("#/page/%d", page)
}

// FirstRowSignature fingerprints the currently rendered page: the first
// match-detail href inside a listing row. The page is a single-page app that
// mutates in place, so comparing signatures before and after a pagination
// action is the only reliable way to tell whether content actually changed.
func FirstRowSignature(s *browser.Session) (string, bool) {
	var hrefs []string
	js := fmt.Sprintf(`
	(() => Array.from(document.querySelectorAll(%q))
		.map((a) => a.href || '')
		.filter((h) => h.length > 0))()`, EventRowAnchorSelector)
	if err := s.Evaluate(js, &hrefs); err != nil {
		return "", false
	}
	for _, href := range hrefs {
		if isMatchDetailURL(href) {
			return href, true
		}
	}
	return "", false
}

// GoToPage advances the listing to the target page index and confirms the
// re-render completed. Page 1 needs no navigation; the initial load already
// shows it. Confirmation chains three bounded polls: fragment, rows present,
// signature changed from prevSignature. Each stage timing out is non-fatal;
// the caller harvests whatever is rendered and the season-level dedup absorbs
// any repeat. Returns whether all three stages confirmed.
func GoToPage(s *browser.Session, logger *log.Logger, timing Timing, target int, prevSignature string) bool {
	if target <= 1 {
		return true
	}

	method := triggerPageChange(s, timing, target)
	logger.Debug("pagination trigger dispatched", "page", target, "method", method)

	confirmed := true

	expected := pageHash(target)
	if !wait.Poll(s.Context(), hashPollInterval, timing.HashTimeout, func() bool {
		h, err := s.Hash()
		return err == nil && h == expected
	}) {
		logger.Warn("location fragment never matched, proceeding anyway", "page", target, "expected", expected)
		confirmed = false
	}

	if !WaitEventRows(s, timing.RowsTimeout) {
		logger.Warn("listing rows absent after navigation, proceeding anyway", "page", target)
		confirmed = false
	}

	if prevSignature != "" {
		changed := wait.Poll(s.Context(), rowsPollInterval, timing.SignatureTimeout, func() bool {
			sig, ok := FirstRowSignature(s)
			return ok && sig != prevSignature
		})
		if !changed {
			logger.Warn("content signature unchanged, page may be stale", "page", target)
			confirmed = false
		}
	}

	return confirmed
}

// triggerPageChange repeatedly looks for the pagination anchor whose text is
// exactly the target index and clicks it programmatically, bypassing any
// overlay that would intercept a trusted click. If no anchor shows up, it
// writes the location fragment directly, once; whether the client router
// honors that is unverified best effort. The returned method is one of
// "click", "hash", "none".
func triggerPageChange(s *browser.Session, timing Timing, target int) string {
	js := fmt.Sprintf(`
	(() => {
		for (const a of document.querySelectorAll(%q)) {
			if ((a.textContent || '').trim() === '%d') {
				a.click();
				return true;
			}
		}
		return false;
	})()`, PaginationLinkSelector, target)

	hashWritten := false
	clicked := wait.Poll(s.Context(), rowsPollInterval, timing.ClickWindow, func() bool {
		var ok bool
		if err := s.Evaluate(js, &ok); err == nil && ok {
			return true
		}
		if !hashWritten {
			hashWritten = s.SetHash(pageHash(target)) == nil
		}
		return false
	})

	switch {
	case clicked:
		return "click"
	case hashWritten:
		return "hash"
	default:
		return "none"
	}
}
