package gen

import (
	"fmt"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/rng"
)

// rollGrade draws from the league-wide prospect grade distribution, heavily
// weighted toward the middle: A+ 2%, A 6%, B 30%, C 37%, D 18%, F 7%.
func rollGrade(r *rng.Stream) core.PotentialGrade {
	x := r.Float64()
	switch {
	case x < 0.02:
		return core.GradeAPlus
	case x < 0.08:
		return core.GradeA
	case x < 0.38:
		return core.GradeB
	case x < 0.75:
		return core.GradeC
	case x < 0.93:
		return core.GradeD
	default:
		return core.GradeF
	}
}

// prospectOVR rolls a current OVR for the pool. Domestic prospects run
// higher and tighter; international ones carry more variance. Top grades
// get a floor so an A-graded prospect is never a total project.
func prospectOVR(r *rng.Stream, pool core.ProspectPool, grade core.PotentialGrade) int {
	var ovr int
	if pool == core.PoolDomestic {
		ovr = 64 + r.Intn(18) // 64-81
		if grade == core.GradeAPlus || grade == core.GradeA {
			floor := 72 + r.Intn(10)
			if floor > ovr {
				ovr = floor
			}
		}
	} else {
		ovr = 58 + r.Intn(22) // 58-79
		if grade == core.GradeAPlus || grade == core.GradeA {
			floor := 70 + r.Intn(10)
			if floor > ovr {
				ovr = floor
			}
		}
	}
	return core.Clamp(ovr, 50, 85)
}

// DomesticProspects builds the college draft pool for a year. Domestic
// prospects are visible and auto-declared; scouting only reveals their true
// ratings to the user.
func DomesticProspects(year, count int, seed string) []*core.Prospect {
	r := rng.NewFromString(fmt.Sprintf("%s_%d", seed, year))

	out := make([]*core.Prospect, 0, count)
	for i := 0; i < count; i++ {
		grade := rollGrade(r)
		out = append(out, &core.Prospect{
			ID:             r.ID("p"),
			Pool:           core.PoolDomestic,
			Name:           rollName(r),
			Pos:            rng.Pick(r, core.Positions),
			Age:            19 + r.Intn(4),
			CurrentOVR:     prospectOVR(r, core.PoolDomestic, grade),
			PotentialGrade: grade,
			College:        rng.Pick(r, colleges),
			Declared:       true,
			Discovered:     true,
		})
	}
	return out
}

// InternationalProspects builds the hidden overseas pool for a year. These
// start undiscovered and undeclared: they only become actionable once found
// by on-site scouting and recruited past the declare threshold.
func InternationalProspects(year, count int, seed string) []*core.Prospect {
	r := rng.NewFromString(fmt.Sprintf("%s_%d", seed, year))

	out := make([]*core.Prospect, 0, count)
	for i := 0; i < count; i++ {
		continent := rng.Pick(r, Continents)
		grade := rollGrade(r)
		out = append(out, &core.Prospect{
			ID:              r.ID("p"),
			Pool:            core.PoolInternational,
			ContinentKey:    continent.Key,
			ContinentName:   continent.Name,
			Name:            rollName(r),
			Pos:             rng.Pick(r, core.Positions),
			Age:             18 + r.Intn(6),
			CurrentOVR:      prospectOVR(r, core.PoolInternational, grade),
			PotentialGrade:  grade,
			Declared:        false,
			Discovered:      false,
			DeclareInterest: 10 + r.Intn(30),
		})
	}
	return out
}
