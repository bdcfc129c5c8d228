package gen

import (
	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/rng"
)

// League builds the fixed 32-team league from a seed. Conference assignment
// is a deterministic name lookup; ratings are rolled uniformly in [60, 95]
// and refined once rosters exist.
func League(seed string) *core.League {
	r := rng.NewFromString(seed)

	teams := make([]*core.Team, 0, len(TeamNames))
	for _, name := range TeamNames {
		teams = append(teams, &core.Team{
			ID:         r.ID("team"),
			Name:       name,
			Conference: ConferenceFor(name),
			Rating:     r.IntBetween(60, 95),
			Cap:        core.TeamCap{Cap: DefaultCap},
			Roster:     []*core.Player{},
		})
	}

	return &core.League{
		ID:    r.ID("league"),
		Seed:  seed,
		Teams: teams,
	}
}
