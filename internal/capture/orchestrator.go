package capture

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mazen160/go-random"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/urlbuilder"
)

// renderSettleDelay gives the client renderer a beat after consent/odds-format
// interaction before pagination is inspected.
const renderSettleDelay = time.Second

// Orchestrator composes the capture components across all pages of one
// (league, season) listing. It borrows the browser session; ownership and
// teardown stay with the caller.
type Orchestrator struct {
	session *browser.Session
	logger  *log.Logger
	timing  Timing
}

func NewOrchestrator(session *browser.Session, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		session: session,
		logger:  logger,
		timing:  DefaultTiming(),
	}
}

// CaptureSeason loads the listing for one request, walks every discovered
// page and returns the deduplicated set of match links. A single page failing
// degrades that page to zero links and the walk continues; only failing to
// load the listing at all aborts. Order of the returned set is unspecified.
func (o *Orchestrator) CaptureSeason(req Request) ([]string, error) {
	baseURL := urlbuilder.HistoricMatchesURL(req.Sport, req.League, req.Season)
	logger := o.logger.With("sport", req.Sport, "league", req.League, "season", req.Season)

	logger.Info("capturing links", "url", baseURL)

	if err := o.session.Navigate(baseURL); err != nil {
		return nil, fmt.Errorf("load listing: %w", err)
	}
	o.preparePage(logger)

	pages := DiscoverPages(o.session, logger, o.timing, req.MaxPages)

	seen := make(map[string]struct{})
	var links []string
	for i, page := range pages {
		for _, link := range o.capturePage(logger, page, i+1, len(pages)) {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}

	logger.Info("finished capturing links", "pages", len(pages), "links", len(links))
	return links, nil
}

// preparePage clears the overlays standing between us and the listing. Every
// step is best effort; a missing banner or control is logged and skipped.
func (o *Orchestrator) preparePage(logger *log.Logger) {
	if !WaitDOMReady(o.session, o.timing.DOMReadyTimeout) {
		logger.Warn("document never reported ready, continuing anyway")
	}
	if DismissConsent(o.session, o.timing.ConsentTimeout) {
		logger.Debug("consent banner dismissed")
	} else {
		logger.Debug("no consent banner found")
	}
	if !EnsureDecimalOdds(o.session, o.timing.OddsFormatTimeout) {
		logger.Debug("odds-format control not found")
	}
	time.Sleep(renderSettleDelay)
}

// capturePage advances to one page index, settles it and harvests its links.
// Any failure here costs at most this page's contribution.
func (o *Orchestrator) capturePage(logger *log.Logger, page, step, total int) []string {
	logger.Info("navigating to page", "page", page, "step", fmt.Sprintf("%d/%d", step, total))

	if !WaitEventRows(o.session, o.timing.RowsTimeout) {
		logger.Warn("no listing rows on current page before navigation", "page", page)
	}
	prevSignature, _ := FirstRowSignature(o.session)

	if page != 1 {
		if !GoToPage(o.session, logger, o.timing, page, prevSignature) {
			logger.Warn("navigation not fully confirmed, harvesting current render", "page", page)
		}
	}

	o.pageDelay()

	if !ScrollUntilSettled(o.session, o.timing.ScrollTimeout, o.timing.ScrollPause, o.timing.StableScrolls) {
		logger.Warn("scroll settle finished without seeing listing rows", "page", page)
	}

	html, err := o.session.HTML()
	if err != nil {
		logger.Error("page snapshot failed, page contributes no links", "page", page, "err", err)
		return nil
	}

	links := ExtractMatchLinks(html)
	logger.Info("harvested page", "page", page, "links", len(links))
	return links
}

// pageDelay sleeps the jittered courtesy interval between page visits.
func (o *Orchestrator) pageDelay() {
	seconds, err := random.IntRange(o.timing.PageDelayMinSec, o.timing.PageDelayMaxSec+1)
	if err != nil {
		seconds = o.timing.PageDelayMinSec
	}
	time.Sleep(time.Duration(seconds) * time.Second)
}
