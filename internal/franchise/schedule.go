package franchise

import (
	"fmt"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/rng"
)

// Matchup is one scheduled game. Home enjoys the court bump.
type Matchup struct {
	HomeID string `json:"homeId"`
	AwayID string `json:"awayId"`
}

// BuildSchedule lays out the season as week buckets of games. Each week runs
// two passes of randomized perfect pairing over all team ids, so every team
// plays exactly two games per week. Regenerated every season.
func BuildSchedule(league *core.League, year int, seed string, weeks int) [][]Matchup {
	r := rng.NewFromString(fmt.Sprintf("%s_schedule_%d", seed, year))

	ids := make([]string, len(league.Teams))
	for i, t := range league.Teams {
		ids[i] = t.ID
	}

	schedule := make([][]Matchup, 0, weeks)
	for w := 0; w < weeks; w++ {
		var week []Matchup
		for pass := 0; pass < 2; pass++ {
			week = append(week, pairAll(r, ids)...)
		}
		schedule = append(schedule, week)
	}
	return schedule
}

// pairAll shuffles the id list and pairs adjacent entries. With an even team
// count this is a perfect pairing; an odd leftover simply sits the round out.
func pairAll(r *rng.Stream, ids []string) []Matchup {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	var games []Matchup
	for i := 0; i+1 < len(shuffled); i += 2 {
		games = append(games, Matchup{HomeID: shuffled[i], AwayID: shuffled[i+1]})
	}
	return games
}
