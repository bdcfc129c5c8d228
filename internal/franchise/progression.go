package franchise

import (
	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// finishSeason runs everything that happens when the champion is crowned:
// awards and the history line (using the user's actual bracket path), full
// league-wide player progression, and entry into free agency.
func (s *Session) finishSeason() {
	champion := s.League.Team(s.Playoffs.ChampionTeamID)
	if champion != nil {
		s.notify("The %s are champions of year %d!", champion.Name, s.Year)
	}

	record := SeasonRecord{
		Year:       s.Year,
		UserFinish: s.userFinish(),
	}
	if champion != nil {
		record.ChampionID = champion.ID
		record.ChampionName = champion.Name
	}
	if user := s.UserTeam(); user != nil {
		record.UserWins = user.Wins
		record.UserLosses = user.Losses
	}
	if mvp, team := s.leagueMVP(); mvp != nil {
		record.MVPName = mvp.Name
		record.MVPTeam = team.Name
	}
	s.History = append(s.History, record)

	expiring := s.runProgression()

	s.Offseason = &Offseason{Expiring: expiring}
	s.enterFreeAgency()
}

// leagueMVP returns the league scoring leader among players with at least
// half a season played.
func (s *Session) leagueMVP() (*core.Player, *core.Team) {
	var best *core.Player
	var bestTeam *core.Team
	minGames := s.Rules.SeasonWeeks // two games a week, so half the season
	for _, t := range s.League.Teams {
		for _, p := range t.Roster {
			if p.Stats.Games < minGames {
				continue
			}
			if best == nil || p.PPG() > best.PPG() {
				best, bestTeam = p, t
			}
		}
	}
	return best, bestTeam
}

// runProgression processes every rostered player league-wide: career
// archival, growth, aging, retirement and contract decay. Returns the
// expiring-contract players converted to free agents, ready for the
// offseason market.
func (s *Session) runProgression() []*core.FreeAgent {
	var expiring []*core.FreeAgent

	for _, t := range s.League.Teams {
		var kept []*core.Player
		for _, p := range t.Roster {
			// 1. Archive the season just played.
			if p.Stats.Games > 0 {
				p.CareerStats = append(p.CareerStats, core.CareerSeason{
					Year:  s.Year,
					Team:  t.Name,
					Stats: p.Stats,
				})
			}

			// 2. Grow or decline.
			s.applyGrowth(p)

			// 3. Age.
			p.Age++

			// 4. Retirement roll.
			if s.rollRetirement(p, t) {
				continue
			}

			// 5. Contract decay.
			if p.Contract == nil {
				p.Contract = &core.Contract{Years: 1, Salary: gen.LeagueMinimum}
			}
			p.Contract.Years--
			if p.Contract.Years <= 0 {
				expiring = append(expiring, s.toExpiringFreeAgent(p))
				continue
			}

			kept = append(kept, p)
		}

		// 6. Rebuild the team around who is left.
		t.Roster = kept
		autoDistributeMinutes(t)
		t.RecalcPayroll()
		t.RecalcRating()
	}

	return expiring
}

// ageGrowthBase is the age-bracket component of the growth delta.
func ageGrowthBase(age int) int {
	switch {
	case age <= 22:
		return 2
	case age <= 25:
		return 1
	case age <= 29:
		return 0
	case age <= 32:
		return -1
	default:
		return -3
	}
}

// gradeGrowthBonus nudges growth by potential: elite grades add, F drags.
func gradeGrowthBonus(g core.PotentialGrade) int {
	switch g {
	case core.GradeAPlus:
		return 2
	case core.GradeA:
		return 1
	case core.GradeF:
		return -1
	default:
		return 0
	}
}

// applyGrowth computes this season's development delta and applies
// independently jittered versions of it to off and def. The potential
// grade's ceiling is a soft cap: at or above it, growth stalls and decline
// steepens. A rare variance roll produces breakouts and busts.
func (s *Session) applyGrowth(p *core.Player) {
	amb := s.rand()

	delta := ageGrowthBase(p.Age) + gradeGrowthBonus(p.PotentialGrade)

	// Minutes shape development for the young: heavy run accelerates it,
	// rotting on the bench stunts it.
	if p.Age < 26 {
		switch {
		case p.Rotation.Minutes >= 30:
			delta++
		case p.Rotation.Minutes < 10:
			delta--
		}
	}

	// Young high scorers get an extra push.
	if p.Age <= 23 && p.PPG() >= 18 {
		delta++
	}

	// Soft cap at the grade ceiling.
	if p.OVR >= p.PotentialGrade.Ceiling() {
		if delta > 0 {
			delta = 0
		} else if delta < 0 {
			delta--
		}
	}

	// Rare breakout / bust.
	switch roll := amb.Float64(); {
	case roll < 0.05:
		delta += 3
	case roll < 0.10:
		delta -= 2
	}

	jitter := func() int { return amb.Intn(3) - 1 } // -1, 0 or +1
	p.Off = core.Clamp(p.Off+delta+jitter(), 40, 99)
	p.Def = core.Clamp(p.Def+delta+jitter(), 40, 99)
	p.RecalcOVR()
}

// rollRetirement decides whether the player hangs it up, moving them to the
// retired list if so. Odds step up with age; nobody under 34 retires.
func (s *Session) rollRetirement(p *core.Player, t *core.Team) bool {
	var odds float64
	switch {
	case p.Age >= 40:
		odds = 0.90
	case p.Age >= 38:
		odds = 0.60
	case p.Age >= 36:
		odds = 0.30
	case p.Age >= 34:
		odds = 0.10
	default:
		return false
	}

	if s.rand().Float64() >= odds {
		return false
	}

	p.Contract = nil
	p.Rotation = core.Rotation{}
	s.Retired = append(s.Retired, core.RetiredPlayer{
		Player:      *p,
		RetiredYear: s.Year,
		LastTeam:    t.Name,
	})
	if p.OVR >= 80 {
		s.notify("%s (%s, %d OVR) has announced their retirement.", p.Name, t.Name, p.OVR)
	}
	return true
}

// toExpiringFreeAgent converts an off-contract player into a market entry
// with a freshly computed fair ask at their new age and rating.
func (s *Session) toExpiringFreeAgent(p *core.Player) *core.FreeAgent {
	amb := s.rand()
	greed := 0.9 + amb.Float64()*0.2
	return &core.FreeAgent{
		ID:             p.ID,
		Name:           p.Name,
		Pos:            p.Pos,
		Age:            p.Age,
		Off:            p.Off,
		Def:            p.Def,
		OVR:            p.OVR,
		PotentialGrade: p.PotentialGrade,
		Ask:            core.Round2(gen.Salary(p.OVR, p.Age) * greed),
		YearsAsk:       1 + amb.Intn(4),
		WantsWinning:   amb.Float64() < 0.5,
		WantsRole:      amb.Float64() < 0.6,
		Ambition:       1 + amb.Intn(10),
		Loyalty:        1 + amb.Intn(10),
		Offers:         []core.Offer{},
		CareerStats:    p.CareerStats,
	}
}
