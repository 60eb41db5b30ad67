package capture

// CSS selectors used across the capture components. Centralising them makes
// site markup changes a one-file fix.
const (
	// Listing rows. OddsPortal renders one div per match with a generated
	// class name that keeps the eventRow prefix across deploys.
	EventRowSelector       = `div[class*='eventRow']`
	EventRowAnchorSelector = `div[class*='eventRow'] a[href]`
	eventRowClassPrefix    = "eventRow"

	// Pagination.
	PaginationLinkSelector      = `a.pagination-link`
	PaginationNumberSelector    = `a.pagination-link:not([rel='next'])`
	PaginationContainerSelector = `a.pagination-link, nav[class*='pagination'], ul[class*='pagination']`
	// Markup-snapshot fallback, anchors inside pagination containers.
	paginationFallbackSelector = `a.pagination-link, nav[class*='pagination'] a, ul[class*='pagination'] a`

	// Odds-format dropdown.
	OddsFormatButtonSelector = `div.group > button.gap-2`
	OddsFormatOptionSelector = `div.group > div.dropdown-content > ul > li > a`
)

// Consent overlay buttons tried in order before falling back to a keyword
// scan of all visible buttons.
var consentSelectors = []string{
	`button#onetrust-accept-btn-handler`,
	`button[aria-label*='Accept']`,
	`button[mode='primary']`,
}

// Case-insensitive keywords identifying a consent button by its label.
var consentKeywords = []string{"accept", "agree", "consent", "ok", "got it"}
