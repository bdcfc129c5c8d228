package franchise

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/courtside/internal/core"
)

// scoreScale turns aggregate minutes-weighted offense into a basketball-
// looking score. Gameplay tuning, not a correctness constant.
const scoreScale = 0.30

// homeCourtBump is the multiplier the home side's offense enjoys.
const homeCourtBump = 1.03

// teamOutput computes a team's offensive output and defensive rating for one
// game from its rotation. Players with zero minutes contribute nothing. Each
// rotation player gets an independent variance roll in [0.8, 1.2).
func teamOutput(t *core.Team, amb *rand.Rand) (offense, defRating float64) {
	var defWeighted float64
	var totalMinutes int

	for _, p := range t.Roster {
		m := p.Rotation.Minutes
		if m == 0 {
			continue
		}
		variance := 0.8 + amb.Float64()*0.4
		offense += float64(p.Off) * float64(m) / 48 * variance
		defWeighted += float64(p.Def) * float64(m)
		totalMinutes += m
	}

	if totalMinutes == 0 {
		return 0, 75
	}
	return offense * scoreScale, defWeighted / float64(totalMinutes)
}

// simulateGame plays one game between two teams and returns the scores.
// The home side gets the court bump; each side's scoring is discounted by
// the opponent's defensive rating via (def-75)/100. Exact ties are broken
// by repeated small increments to a random side.
func (s *Session) simulateGame(home, away *core.Team) (homeScore, awayScore int) {
	amb := s.rand()

	homeOff, homeDef := teamOutput(home, amb)
	awayOff, awayDef := teamOutput(away, amb)

	h := homeOff * homeCourtBump * (1 - (awayDef-75)/100)
	a := awayOff * (1 - (homeDef-75)/100)

	homeScore = int(math.Round(math.Max(h, 40)))
	awayScore = int(math.Round(math.Max(a, 40)))

	for homeScore == awayScore {
		bump := 1 + amb.Intn(2)
		if amb.Intn(2) == 0 {
			homeScore += bump
		} else {
			awayScore += bump
		}
	}
	return homeScore, awayScore
}

// Position base rates for the box-score model: big men rebound, guards
// distribute.
var (
	reboundBase = map[core.Position]float64{
		core.PG: 3.0, core.SG: 3.5, core.SF: 5.0, core.PF: 7.0, core.C: 8.5,
	}
	assistBase = map[core.Position]float64{
		core.PG: 7.0, core.SG: 4.0, core.SF: 3.5, core.PF: 2.5, core.C: 2.0,
	}
)

// accrueGameStats credits one game of box-score stats to every rotation
// player on the team. Output is driven by the off rating, position base
// rates and minutes-derived usage, with per-player variance.
func (s *Session) accrueGameStats(t *core.Team) {
	amb := s.rand()
	for _, p := range t.Roster {
		m := p.Rotation.Minutes
		if m == 0 {
			continue
		}
		usage := float64(m) / 48

		variance := 0.8 + amb.Float64()*0.4
		pts := float64(p.Off) * 0.45 * usage * variance
		reb := (reboundBase[p.Pos] + float64(p.Off)*0.03) * usage * (0.8 + amb.Float64()*0.4)
		ast := (assistBase[p.Pos] + float64(p.Off)*0.02) * usage * (0.8 + amb.Float64()*0.4)

		p.Stats.Games++
		p.Stats.Points += int(math.Round(pts))
		p.Stats.Rebounds += int(math.Round(reb))
		p.Stats.Assists += int(math.Round(ast))
	}
}

// adjustHappiness shifts every rostered player's happiness by delta,
// clamped to [0, 100].
func adjustHappiness(t *core.Team, delta int) {
	for _, p := range t.Roster {
		p.Happiness = core.Clamp(p.Happiness+delta, 0, 100)
	}
}
