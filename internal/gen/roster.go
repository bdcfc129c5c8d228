package gen

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/rng"
)

// RosterSize is how many players every generated roster holds.
const RosterSize = 15

// archetype splits a player's overall into off/def sub-ratings.
type archetype struct {
	off, def int
}

var archetypes = []archetype{
	{off: +5, def: -5}, // scorer
	{off: -5, def: +5}, // defender
	{off: 0, def: 0},   // balanced
}

// rollAge samples the weighted age mixture shared by roster and free-agent
// generation: 15% young, 55% prime, 20% vet, 10% old.
func rollAge(r *rng.Stream) int {
	x := r.Float64()
	switch {
	case x < 0.15:
		return 19 + r.Intn(3) // 19-21
	case x < 0.70:
		return 22 + r.Intn(8) // 22-29
	case x < 0.90:
		return 30 + r.Intn(5) // 30-34
	default:
		return 35 + r.Intn(5) // 35-39
	}
}

// rollGradeForAge correlates potential inversely with age: the young skew
// toward high grades, veterans toward low ones.
func rollGradeForAge(r *rng.Stream, age int) core.PotentialGrade {
	switch {
	case age < 23:
		return rng.Pick(r, []core.PotentialGrade{
			core.GradeA, core.GradeA, core.GradeB, core.GradeB, core.GradeC, core.GradeD,
		})
	case age > 29:
		return rng.Pick(r, []core.PotentialGrade{
			core.GradeC, core.GradeC, core.GradeD, core.GradeF,
		})
	default:
		return rng.Pick(r, []core.PotentialGrade{
			core.GradeA, core.GradeB, core.GradeC, core.GradeC, core.GradeD,
		})
	}
}

func rollName(r *rng.Stream) string {
	return fmt.Sprintf("%s %s", rng.Pick(r, firstNames), rng.Pick(r, lastNames))
}

// makePlayer rolls one player whose OVR lands in [minOVR, maxOVR], at the
// given position.
func makePlayer(r *rng.Stream, pos core.Position, minOVR, maxOVR float64) *core.Player {
	ovr := core.Clamp(int(minOVR+r.Float64()*(maxOVR-minOVR+1)), 60, 99)
	age := rollAge(r)
	grade := rollGradeForAge(r, age)

	arch := rng.Pick(r, archetypes)
	p := &core.Player{
		ID:             r.ID("pl"),
		Name:           rollName(r),
		Pos:            pos,
		Age:            age,
		Off:            core.Clamp(ovr+arch.off, 40, 99),
		Def:            core.Clamp(ovr+arch.def, 40, 99),
		PotentialGrade: grade,
		Happiness:      70,
		CareerStats:    []core.CareerSeason{},
	}
	p.RecalcOVR()
	p.Contract = &core.Contract{
		Years:  1 + r.Intn(4),
		Salary: Salary(p.OVR, p.Age),
	}
	return p
}

// Roster deterministically builds a 15-man roster for a team. The tier
// structure scales with team rating: stronger teams draw stars and starters
// from higher OVR floors. Two players are generated per position, then five
// reserves at random positions. The result is always payroll-compliant with
// the team cap.
func Roster(teamName string, teamRating, year int, seed string) []*core.Player {
	r := rng.NewFromString(fmt.Sprintf("%s_%s_%d", seed, teamName, year))

	// quality 0.0 = bottom feeder, 1.0 = super team
	quality := core.ClampF(float64(teamRating-60)/35, 0, 1)

	// OVR bands per roster slot, floor-scaled by quality.
	bands := [][2]float64{
		{78 + 16*quality, 85 + 14*quality}, // star
		{75 + 12*quality, 82 + 10*quality}, // second star
		{70 + 10*quality, 76 + 10*quality}, // starters x3
		{70 + 10*quality, 76 + 10*quality},
		{70 + 10*quality, 76 + 10*quality},
		{65 + 9*quality, 72 + 7*quality}, // bench x5
		{65 + 9*quality, 72 + 7*quality},
		{65 + 9*quality, 72 + 7*quality},
		{65 + 9*quality, 72 + 7*quality},
		{65 + 9*quality, 72 + 7*quality},
	}

	roster := make([]*core.Player, 0, RosterSize)

	// Two passes over the five positions cover the ten structured slots.
	for i, band := range bands {
		pos := core.Positions[i%len(core.Positions)]
		roster = append(roster, makePlayer(r, pos, band[0], band[1]))
	}

	// Reserves fill out the roster at scrub level, position unconstrained.
	for i := 0; i < RosterSize-len(bands); i++ {
		pos := rng.Pick(r, core.Positions)
		roster = append(roster, makePlayer(r, pos, 60, 68))
	}

	sort.Slice(roster, func(i, j int) bool { return roster[i].OVR > roster[j].OVR })

	fitPayroll(roster, DefaultCap)
	return roster
}

// fitPayroll scales all salaries down proportionally until the roster fits
// under cap. Capped at three passes; salaries never go below the league
// minimum floor.
func fitPayroll(roster []*core.Player, cap float64) {
	for pass := 0; pass < 3; pass++ {
		total := 0.0
		for _, p := range roster {
			total += p.Contract.Salary
		}
		if total <= cap {
			return
		}
		scale := cap / total
		for _, p := range roster {
			// Round down so the scaled total cannot creep back over cap.
			s := math.Floor(p.Contract.Salary*scale*100) / 100
			if s < LeagueMinimum {
				s = LeagueMinimum
			}
			p.Contract.Salary = s
		}
	}
}
