package capture

import (
	"fmt"
	"time"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/wait"
)

const dropdownSettleDelay = time.Second

// EnsureDecimalOdds switches the site's odds-format dropdown to Decimal so
// captured match pages render consistently later. The control missing, or the
// format already being Decimal, are both fine; the return value reports
// whether the control was found at all.
func EnsureDecimalOdds(s *browser.Session, timeout time.Duration) bool {
	found := wait.Poll(s.Context(), consentPollInterval, timeout, func() bool {
		var n int
		if err := s.Evaluate(fmt.Sprintf(`document.querySelectorAll(%q).length`, OddsFormatButtonSelector), &n); err != nil {
			return false
		}
		return n > 0
	})
	if !found {
		return false
	}

	var state string
	if err := s.Evaluate(fmt.Sprintf(`
	(() => {
		const btn = document.querySelector(%q);
		if (!btn) return 'missing';
		const current = (btn.textContent || '').trim().toLowerCase();
		if (current.startsWith('decimal')) return 'already';
		btn.click();
		return 'opened';
	})()`, OddsFormatButtonSelector), &state); err != nil {
		return false
	}
	if state != "opened" {
		return state == "already"
	}

	time.Sleep(dropdownSettleDelay)

	var picked bool
	_ = s.Evaluate(fmt.Sprintf(`
	(() => {
		for (const opt of document.querySelectorAll(%q)) {
			const txt = (opt.textContent || '').trim().toLowerCase();
			if (txt.includes('decimal')) {
				opt.click();
				return true;
			}
		}
		return false;
	})()`, OddsFormatOptionSelector), &picked)
	if picked {
		time.Sleep(dropdownSettleDelay)
	}
	return true
}
