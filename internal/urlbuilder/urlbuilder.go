// Package urlbuilder produces canonical OddsPortal listing URLs for
// (sport, league, season) combinations. The capture core treats the result as
// an opaque string.
package urlbuilder

import (
	"fmt"
	"strings"
)

// BaseURL is the origin all relative match links resolve against.
const BaseURL = "https://www.oddsportal.com"

// HistoricMatchesURL builds the results-listing URL for one league season.
// League slugs carry the country as their first segment
// (england-premier-league -> /football/england/premier-league). An empty
// season targets the current season, which has no year suffix on the site.
func HistoricMatchesURL(sport, league, season string) string {
	sport = strings.Trim(strings.TrimSpace(sport), "/")
	country, name := splitLeagueSlug(league)

	if season = strings.TrimSpace(season); season != "" {
		name = fmt.Sprintf("%s-%s", name, season)
	}
	if country == "" {
		return fmt.Sprintf("%s/%s/%s/results/", BaseURL, sport, name)
	}
	return fmt.Sprintf("%s/%s/%s/%s/results/", BaseURL, sport, country, name)
}

// splitLeagueSlug separates the country prefix from the league name, e.g.
// "spain-primera-division" -> ("spain", "primera-division"). Slugs without a
// separator have no country component.
func splitLeagueSlug(league string) (country, name string) {
	league = strings.Trim(strings.TrimSpace(league), "/")
	parts := strings.SplitN(league, "-", 2)
	if len(parts) < 2 {
		return "", league
	}
	return parts[0], parts[1]
}
