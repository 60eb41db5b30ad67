package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoricMatchesURL(t *testing.T) {
	tests := []struct {
		name   string
		sport  string
		league string
		season string
		want   string
	}{
		{
			name:   "league with country and season",
			sport:  "football",
			league: "england-premier-league",
			season: "2014-2015",
			want:   "https://www.oddsportal.com/football/england/premier-league-2014-2015/results/",
		},
		{
			name:   "current season has no year suffix",
			sport:  "football",
			league: "spain-primera-division",
			season: "",
			want:   "https://www.oddsportal.com/football/spain/primera-division/results/",
		},
		{
			name:   "single-segment slug has no country",
			sport:  "tennis",
			league: "atp",
			season: "2020",
			want:   "https://www.oddsportal.com/tennis/atp-2020/results/",
		},
		{
			name:   "surrounding whitespace is trimmed",
			sport:  " basketball ",
			league: " usa-nba ",
			season: " 2019-2020 ",
			want:   "https://www.oddsportal.com/basketball/usa/nba-2019-2020/results/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HistoricMatchesURL(tt.sport, tt.league, tt.season))
		})
	}
}
