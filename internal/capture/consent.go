package capture

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/wait"
)

const consentPollInterval = 500 * time.Millisecond

// DismissConsent clears the cookie/privacy overlay so the rest of the page is
// reliably interactive. It tries the known button selectors first, then scans
// every visible button for consent keywords. Absence of a banner is a normal
// outcome, not an error; the return value only reports whether a click landed.
func DismissConsent(s *browser.Session, timeout time.Duration) bool {
	js := consentClickJS()
	return wait.Poll(s.Context(), consentPollInterval, timeout, func() bool {
		var clicked bool
		if err := s.Evaluate(js, &clicked); err != nil {
			return false
		}
		return clicked
	})
}

// consentClickJS builds the single-round-trip script that finds and clicks a
// consent button, reporting whether it did.
func consentClickJS() string {
	selectorsJSON, _ := json.Marshal(consentSelectors)
	keywordsJSON, _ := json.Marshal(consentKeywords)

	return fmt.Sprintf(`
	(() => {
		const visible = (el) =>
			!!(el && (el.offsetWidth || el.offsetHeight || el.getClientRects().length));

		for (const sel of %s) {
			let el = null;
			try { el = document.querySelector(sel); } catch (e) { continue; }
			if (visible(el)) {
				el.click();
				return true;
			}
		}

		const keywords = %s;
		for (const b of document.querySelectorAll('button')) {
			if (!visible(b)) continue;
			const txt = (b.textContent || '').trim().toLowerCase();
			if (txt && keywords.some((k) => txt.includes(k))) {
				b.click();
				return true;
			}
		}
		return false;
	})()`, selectorsJSON, keywordsJSON)
}
