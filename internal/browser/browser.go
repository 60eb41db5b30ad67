// Package browser owns the Chrome automation session. The session is an
// explicitly scoped resource: callers construct it, pass it to the capture
// components, and release it with Close on every exit path.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// Options configures browser construction. Zero values mean "site default":
// no user-agent override, no locale, no timezone emulation.
type Options struct {
	Headless        bool
	UserAgent       string
	Locale          string
	TimezoneID      string
	PageLoadTimeout time.Duration
}

const defaultPageLoadTimeout = 30 * time.Second

// Session wraps one Chrome process with a single tab. All capture work for a
// run goes through this one session, strictly sequentially.
type Session struct {
	ctx             context.Context
	cancelTab       context.CancelFunc
	cancelAlloc     context.CancelFunc
	pageLoadTimeout time.Duration
}

// NewSession launches Chrome and verifies it started. A failure here is fatal
// for the whole run; there is no degraded mode without a browser.
func NewSession(parent context.Context, opts Options, logger *log.Logger) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1920, 1080),
	)
	if opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))
	} else {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.Locale != "" {
		allocOpts = append(allocOpts, chromedp.Flag("lang", opts.Locale))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Debugf),
	)

	// Run with no actions starts the browser, so construction failures
	// surface here instead of on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	if opts.TimezoneID != "" {
		// Timezone emulation is best effort; a failed override does not
		// stop the run.
		if err := chromedp.Run(tabCtx, emulation.SetTimezoneOverride(opts.TimezoneID)); err != nil {
			logger.Warn("timezone override failed", "timezone", opts.TimezoneID, "err", err)
		}
	}

	timeout := opts.PageLoadTimeout
	if timeout <= 0 {
		timeout = defaultPageLoadTimeout
	}

	return &Session{
		ctx:             tabCtx,
		cancelTab:       cancelTab,
		cancelAlloc:     cancelAlloc,
		pageLoadTimeout: timeout,
	}, nil
}

// Close tears down the tab and the Chrome process. Safe to call exactly once;
// meant for defer right after NewSession succeeds.
func (s *Session) Close() {
	s.cancelTab()
	s.cancelAlloc()
}

// Context exposes the tab context for deadline-aware polling.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Navigate loads a URL, bounded by the configured page-load timeout.
func (s *Session) Navigate(url string) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.pageLoadTimeout)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Location returns the tab's current URL.
func (s *Session) Location() (string, error) {
	var u string
	if err := chromedp.Run(s.ctx, chromedp.Location(&u)); err != nil {
		return "", err
	}
	return u, nil
}

// Hash returns the current location fragment, empty string when none.
func (s *Session) Hash() (string, error) {
	var h string
	err := s.Evaluate(`window.location.hash || ''`, &h)
	return h, err
}

// SetHash writes the location fragment directly. Whether the site's client
// router reacts to this is not guaranteed; callers treat it as best effort.
func (s *Session) SetHash(hash string) error {
	return s.Evaluate(fmt.Sprintf(`window.location.hash = %q`, hash), nil)
}

// HTML captures a full markup snapshot of the rendered document.
func (s *Session) HTML() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capture page markup: %w", err)
	}
	return html, nil
}

// Evaluate runs a JS expression in the page, unmarshaling the result into out
// when out is non-nil.
func (s *Session) Evaluate(js string, out any) error {
	if out == nil {
		return chromedp.Run(s.ctx, chromedp.Evaluate(js, nil))
	}
	return chromedp.Run(s.ctx, chromedp.Evaluate(js, out))
}
