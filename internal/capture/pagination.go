package capture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/wait"
)

const paginationNudgeDelay = 800 * time.Millisecond

// DiscoverPages determines which listing pages exist for the current season.
// The site exposes no total-page count, so the range is reconstructed from the
// numbered pagination anchors: query them live, re-parse the markup snapshot
// if the live query came up empty, and default to a single page if both did.
func DiscoverPages(s *browser.Session, logger *log.Logger, timing Timing, maxPages int) []int {
	// A partial scroll nudges the client renderer into mounting the
	// pagination controls, which lag behind the rows.
	_ = s.Evaluate(`window.scrollTo(0, document.body.scrollHeight * 0.2)`, nil)
	time.Sleep(paginationNudgeDelay)

	found := wait.Poll(s.Context(), rowsPollInterval, timing.PaginationWait, func() bool {
		return countElements(s, PaginationContainerSelector) > 0
	})
	if !found {
		logger.Warn("pagination controls never appeared, parsing best-effort")
	}

	texts := livePaginationTexts(s)
	if len(texts) == 0 {
		if html, err := s.HTML(); err == nil {
			texts = paginationTextsFromMarkup(html)
		}
	}

	pages := PageRange(ParsePageNumbers(texts), maxPages)
	logger.Info("pagination discovered", "anchors", len(texts), "pages", len(pages))
	return pages
}

// livePaginationTexts collects the text of every numbered pagination anchor,
// excluding the "next" arrow.
func livePaginationTexts(s *browser.Session) []string {
	var texts []string
	js := fmt.Sprintf(`
	(() => Array.from(document.querySelectorAll(%q))
		.map((a) => (a.textContent || '').trim())
		.filter((t) => t.length > 0))()`, PaginationNumberSelector)
	if err := s.Evaluate(js, &texts); err != nil {
		return nil
	}
	return texts
}

// paginationTextsFromMarkup is the snapshot fallback: same selectors applied
// to the already-fetched markup instead of the live DOM.
func paginationTextsFromMarkup(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var texts []string
	doc.Find(paginationFallbackSelector).Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			texts = append(texts, t)
		}
	})
	return texts
}

// ParsePageNumbers keeps the anchor texts that are plain positive integers.
func ParsePageNumbers(texts []string) []int {
	var nums []int
	for _, t := range texts {
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || n < 1 {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// PageRange materializes the contiguous run [min..max] of the observed page
// indices. Pagination is sequential on the site, so gaps or duplicates in the
// raw observations are filled rather than trusted. No observations means a
// single-page listing. maxPages > 0 truncates to the first maxPages entries
// without reordering.
func PageRange(observed []int, maxPages int) []int {
	if len(observed) == 0 {
		return []int{1}
	}

	minP, maxP := observed[0], observed[0]
	for _, n := range observed[1:] {
		if n < minP {
			minP = n
		}
		if n > maxP {
			maxP = n
		}
	}

	full := make([]int, 0, maxP-minP+1)
	for p := minP; p <= maxP; p++ {
		full = append(full, p)
	}

	if maxPages > 0 && len(full) > maxPages {
		full = full[:maxPages]
	}
	return full
}
