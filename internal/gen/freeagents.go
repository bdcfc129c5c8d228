package gen

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/rng"
)

// FreeAgents builds the offseason market pool for a year. Asks are fair
// value from the salary model times a greed factor in [0.9, 1.1]. Career
// histories are backfilled with placeholder seasons so every free agent's
// record covers BaseYear to the current year contiguously.
func FreeAgents(year, count int, seed string) []*core.FreeAgent {
	r := rng.NewFromString(fmt.Sprintf("%s_%d", seed, year))

	list := make([]*core.FreeAgent, 0, count)
	for i := 0; i < count; i++ {
		grade := rollGrade(r)
		ovr := core.Clamp(60+r.Intn(26), 60, 90)
		age := rollAge(r)

		arch := rng.Pick(r, archetypes)
		off := core.Clamp(ovr+arch.off, 40, 99)
		def := core.Clamp(ovr+arch.def, 40, 99)

		greed := 0.9 + r.Float64()*0.2
		ask := core.Round2(Salary(ovr, age) * greed)

		fa := &core.FreeAgent{
			ID:             r.ID("fa"),
			Name:           rollName(r),
			Pos:            rng.Pick(r, core.Positions),
			Age:            age,
			Off:            off,
			Def:            def,
			OVR:            ovr,
			PotentialGrade: grade,
			Ask:            ask,
			YearsAsk:       1 + r.Intn(4),
			WantsWinning:   r.Bool(0.5),
			WantsRole:      r.Bool(0.6),
			Ambition:       r.IntBetween(1, 10),
			Loyalty:        r.IntBetween(1, 10),
			Offers:         []core.Offer{},
			CareerStats:    backfillCareer(year),
		}
		list = append(list, fa)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].OVR > list[j].OVR })
	return list
}

// backfillCareer produces "Free Agent" placeholder season lines for every
// year from BaseYear up to (excluding) the given year, so history screens
// never show gaps.
func backfillCareer(year int) []core.CareerSeason {
	out := []core.CareerSeason{}
	for y := BaseYear; y < year; y++ {
		out = append(out, core.CareerSeason{
			Year: y,
			Team: "Free Agent",
		})
	}
	return out
}
