package capture

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/urlbuilder"
)

// ExtractMatchLinks harvests candidate match-detail links from a rendered
// markup snapshot. Working on the snapshot rather than the live DOM keeps
// extraction independent of the browser: the same function serves the capture
// loop and the tests.
//
// A link qualifies when it sits inside a listing row and its path splits into
// more than three non-empty segments, which separates match-detail pages from
// listing, market and navigation links. Results are absolute URLs, deduplicated
// within the page.
func ExtractMatchLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	base, err := url.Parse(urlbuilder.BaseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find(`[class*="` + eventRowClassPrefix + `"]`).Each(func(_ int, row *goquery.Selection) {
		if !hasClassWithPrefix(row, eventRowClassPrefix) {
			return
		}
		row.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || !isMatchDetailURL(href) {
				return
			}
			abs, err := resolveAgainst(base, href)
			if err != nil {
				return
			}
			if _, dup := seen[abs]; dup {
				return
			}
			seen[abs] = struct{}{}
			links = append(links, abs)
		})
	})

	return links
}

// hasClassWithPrefix reports whether any class on the element starts with the
// prefix. The attribute-substring selector above over-matches (the generated
// class suffix could embed the prefix mid-string), so this narrows it.
func hasClassWithPrefix(sel *goquery.Selection, prefix string) bool {
	classes, _ := sel.Attr("class")
	for _, c := range strings.Fields(classes) {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// isMatchDetailURL applies the segment-count heuristic to a raw href.
func isMatchDetailURL(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	segments := 0
	for _, s := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if s != "" {
			segments++
		}
	}
	return segments > 3
}

// resolveAgainst makes an href absolute relative to the site origin.
func resolveAgainst(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
