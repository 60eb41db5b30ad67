package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRequests(t *testing.T) {
	plan := Plan{
		Sport:    "football",
		Leagues:  []string{"england-premier-league", "spain-primera-division"},
		Seasons:  []string{"2014-2015", "2015-2016"},
		MaxPages: 3,
	}

	requests, err := plan.Requests()
	require.NoError(t, err)
	require.Len(t, requests, 4)

	// League-major order, every request carries the plan settings.
	assert.Equal(t, Request{
		Sport:    "football",
		League:   "england-premier-league",
		Season:   "2014-2015",
		MaxPages: 3,
	}, requests[0])
	assert.Equal(t, "england-premier-league", requests[1].League)
	assert.Equal(t, "2015-2016", requests[1].Season)
	assert.Equal(t, "spain-primera-division", requests[2].League)
}

func TestPlanRequestsValidation(t *testing.T) {
	_, err := Plan{Sport: "football", Seasons: []string{"2014-2015"}}.Requests()
	assert.ErrorIs(t, err, ErrNoLeagues)

	_, err = Plan{Sport: "football", Leagues: []string{"england-premier-league"}}.Requests()
	assert.ErrorIs(t, err, ErrNoSeasons)
}
