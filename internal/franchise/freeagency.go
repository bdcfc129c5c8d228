package franchise

import (
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// enterFreeAgency opens the offseason market: a freshly generated pool
// merged with the just-expired contracts, CPU interest pre-computed. Phase
// moves to FREE_AGENCY.
func (s *Session) enterFreeAgency() {
	pool := gen.FreeAgents(s.Year, s.Rules.FreeAgentCount, s.Meta.Seed+"_fa")
	pool = append(pool, s.Offseason.Expiring...)
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].OVR > pool[j].OVR })

	s.Offseason.FreeAgents = pool
	s.Offseason.Expiring = nil

	s.generateCPUOffers()
	s.Phase = PhaseFreeAgency
	s.notify("Free agency is open. %d players are on the market.", len(pool))
}

// positionNeed counts how thin a team is at a position: 2 is fully staffed.
func positionNeed(t *core.Team, pos core.Position) int {
	have := 0
	for _, p := range t.Roster {
		if p.Pos == pos {
			have++
		}
	}
	return core.Clamp(2-have, 0, 2)
}

// generateCPUOffers has CPU teams bid on desirable free agents. Interest is
// weighted by positional need and team quality; bids land in a band around
// the ask and respect cap space.
func (s *Session) generateCPUOffers() {
	amb := s.rand()

	for _, fa := range s.Offseason.FreeAgents {
		if fa.OVR < 65 {
			continue // minimum-salary players wait for the force-fill pass
		}
		for _, t := range s.League.Teams {
			if t.ID == s.UserTeamID || len(t.Roster) >= s.Rules.RosterMax {
				continue
			}

			chance := 0.04 + 0.10*float64(positionNeed(t, fa.Pos)) + 0.002*float64(t.Rating-60)
			if amb.Float64() >= chance {
				continue
			}

			salary := core.Round2(fa.Ask * (0.9 + amb.Float64()*0.25))
			if t.Cap.Payroll+salary > t.Cap.Cap {
				continue
			}
			years := core.Clamp(fa.YearsAsk+amb.Intn(3)-1, 1, 4)

			fa.Offers = append(fa.Offers, core.Offer{
				TeamID: t.ID,
				Salary: salary,
				Years:  years,
			})
		}
	}
}

// findFreeAgent returns the unsigned market entry with the given id.
func (s *Session) findFreeAgent(id string) *core.FreeAgent {
	if s.Offseason == nil {
		return nil
	}
	for _, fa := range s.Offseason.FreeAgents {
		if fa.ID == id && fa.SignedByTeamID == "" {
			return fa
		}
	}
	return nil
}

// SubmitOffer bids for a free agent on behalf of the user. The offer is
// weighed against the player's own ask and the best competing CPU bid; the
// resulting probability is rolled immediately. On a win the player signs
// with the user; on a loss they sign with the best competitor, or stay on
// the market if nobody else bid. Returns whether the user landed the player.
func (s *Session) SubmitOffer(playerID string, salary float64, years int) (bool, error) {
	if s.Phase != PhaseFreeAgency {
		return false, ErrWrongPhase
	}
	fa := s.findFreeAgent(playerID)
	if fa == nil {
		return false, ErrUnknownPlayer
	}
	user := s.UserTeam()
	if user == nil {
		return false, ErrUnknownTeam
	}
	if len(user.Roster) >= s.Rules.RosterMax {
		return false, ErrRosterFull
	}
	if user.Cap.Payroll+salary > user.Cap.Cap {
		return false, ErrCapExceeded
	}

	userScore := salary * float64(core.Clamp(years, 1, 4))
	benchmark := fa.AskScore()
	if best := fa.BestOffer(); best != nil && best.Score() > benchmark {
		benchmark = best.Score()
	}

	// A bid matching the benchmark is a coin flip leaning the user's way;
	// beating it by 25% is near-certain.
	prob := core.ClampF(0.55+(userScore-benchmark)/benchmark*1.8, 0.05, 0.95)

	if s.rand().Float64() < prob {
		s.signFreeAgent(fa, user, salary, core.Clamp(years, 1, 4))
		s.notify("%s signed with your team: %.1fM x %d years.", fa.Name, salary, years)
		return true, nil
	}

	if best := fa.BestOffer(); best != nil {
		if t := s.League.Team(best.TeamID); t != nil {
			s.signFreeAgent(fa, t, best.Salary, best.Years)
			s.notify("%s turned you down and signed with the %s.", fa.Name, t.Name)
			return false, nil
		}
	}
	s.notify("%s turned down your offer and remains unsigned.", fa.Name)
	return false, nil
}

// signFreeAgent moves a market entry onto a roster and rebuilds the team's
// payroll and rotation.
func (s *Session) signFreeAgent(fa *core.FreeAgent, t *core.Team, salary float64, years int) {
	fa.SignedByTeamID = t.ID
	fa.Offers = nil

	p := fa.ToPlayer(years, salary)
	t.Roster = append(t.Roster, p)
	t.RecalcPayroll()
	t.RecalcRating()
	autoDistributeMinutes(t)
}

// FinishFreeAgency closes the market: every remaining free agent with CPU
// offers signs the best one, rosters below the minimum are force-filled
// from the cheapest leftovers under cap, and the phase moves to the draft.
func (s *Session) FinishFreeAgency() error {
	if s.Phase != PhaseFreeAgency {
		return ErrWrongPhase
	}

	// Resolve pending CPU-vs-CPU bids.
	for _, fa := range s.Offseason.FreeAgents {
		if fa.SignedByTeamID != "" {
			continue
		}
		best := fa.BestOffer()
		if best == nil {
			continue
		}
		t := s.League.Team(best.TeamID)
		if t == nil || len(t.Roster) >= s.Rules.RosterMax || t.Cap.Payroll+best.Salary > t.Cap.Cap {
			continue
		}
		s.signFreeAgent(fa, t, best.Salary, best.Years)
	}

	s.forceFillThinRosters()
	s.startDraft()
	return nil
}

// forceFillThinRosters tops up CPU rosters below the minimum from the
// cheapest remaining free agents, respecting cap space.
func (s *Session) forceFillThinRosters() {
	remaining := func() []*core.FreeAgent {
		var out []*core.FreeAgent
		for _, fa := range s.Offseason.FreeAgents {
			if fa.SignedByTeamID == "" {
				out = append(out, fa)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Ask < out[j].Ask })
		return out
	}

	for _, t := range s.League.Teams {
		if t.ID == s.UserTeamID {
			continue
		}
		for len(t.Roster) < s.Rules.RosterMin {
			var picked *core.FreeAgent
			for _, fa := range remaining() {
				if t.Cap.Payroll+fa.Ask <= t.Cap.Cap {
					picked = fa
					break
				}
			}
			if picked == nil {
				break
			}
			s.signFreeAgent(picked, t, picked.Ask, core.Clamp(picked.YearsAsk, 1, 2))
		}
	}
}
