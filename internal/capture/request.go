package capture

import "errors"

// Request identifies one (sport, league, season) listing to capture. It is
// immutable for the duration of a run; a run produces exactly one output file.
type Request struct {
	Sport  string
	League string
	Season string

	// MaxPages truncates the discovered pagination range when positive.
	MaxPages int
}

// Plan is the full CLI-resolved workload: every league crossed with every
// season, captured sequentially on one browser session.
type Plan struct {
	Sport    string
	Leagues  []string
	Seasons  []string
	MaxPages int
}

var (
	ErrNoLeagues = errors.New("at least one league must be provided")
	ErrNoSeasons = errors.New("at least one season must be provided")
)

// Requests expands the plan into per-season requests, league-major order.
// Empty league or season lists abort before any browser work.
func (p Plan) Requests() ([]Request, error) {
	if len(p.Leagues) == 0 {
		return nil, ErrNoLeagues
	}
	if len(p.Seasons) == 0 {
		return nil, ErrNoSeasons
	}

	out := make([]Request, 0, len(p.Leagues)*len(p.Seasons))
	for _, league := range p.Leagues {
		for _, season := range p.Seasons {
			out = append(out, Request{
				Sport:    p.Sport,
				League:   league,
				Season:   season,
				MaxPages: p.MaxPages,
			})
		}
	}
	return out, nil
}
