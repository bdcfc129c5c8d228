package franchise

import (
	"math"

	"github.com/vovakirdan/courtside/internal/core"
)

// TradePackage is one side of a trade: player ids and pick ids leaving the
// team.
type TradePackage struct {
	PlayerIDs []string `json:"playerIds"`
	PickIDs   []string `json:"pickIds"`
}

// ExecuteTrade moves the named players and picks between the two teams and
// recomputes both payrolls and rotations. Returns ErrUnknownTeam if either
// id is unresolvable; assets that don't belong to their claimed side are
// skipped rather than invented.
func (s *Session) ExecuteTrade(teamAID, teamBID string, fromA, fromB TradePackage) error {
	a := s.League.Team(teamAID)
	b := s.League.Team(teamBID)
	if a == nil || b == nil {
		return ErrUnknownTeam
	}

	movePlayers(a, b, fromA.PlayerIDs)
	movePlayers(b, a, fromB.PlayerIDs)
	movePicks(a, b, fromA.PickIDs)
	movePicks(b, a, fromB.PickIDs)

	for _, t := range []*core.Team{a, b} {
		t.RecalcPayroll()
		t.RecalcRating()
		autoDistributeMinutes(t)
	}
	return nil
}

// movePlayers transfers ownership of each listed player from one roster to
// the other. Remove-then-add, never a shared reference.
func movePlayers(from, to *core.Team, ids []string) {
	for _, id := range ids {
		if p := from.RemovePlayer(id); p != nil {
			to.Roster = append(to.Roster, p)
		}
	}
}

// movePicks re-homes each listed pick. OriginalOwnerID travels untouched;
// only the holding team changes.
func movePicks(from, to *core.Team, ids []string) {
	for _, id := range ids {
		if pk := from.RemovePick(id); pk != nil {
			to.Assets.Picks = append(to.Assets.Picks, *pk)
		}
	}
}

// tradeValue is the CPU's view of a player: production now, discounted by
// age.
func tradeValue(p *core.Player) float64 {
	return float64(p.OVR) * float64(100-p.Age)
}

// maybeCPUTrade runs the weekly inter-CPU trade check. Two random non-user
// teams propose swapping one random player each; the swap goes through only
// if the value heuristic calls it close (within 15%) and neither payroll
// ends up more than 10 over the cap.
func (s *Session) maybeCPUTrade() {
	amb := s.rand()
	if amb.Float64() > s.Rules.CPUTradeChance {
		return
	}

	cpu := make([]*core.Team, 0, len(s.League.Teams))
	for _, t := range s.League.Teams {
		if t.ID != s.UserTeamID && len(t.Roster) > 0 {
			cpu = append(cpu, t)
		}
	}
	if len(cpu) < 2 {
		return
	}

	a := cpu[amb.Intn(len(cpu))]
	b := cpu[amb.Intn(len(cpu))]
	if a.ID == b.ID {
		return
	}

	pa := a.Roster[amb.Intn(len(a.Roster))]
	pb := b.Roster[amb.Intn(len(b.Roster))]

	va, vb := tradeValue(pa), tradeValue(pb)
	if math.Abs(va-vb) > 0.15*math.Max(va, vb) {
		return
	}

	salA, salB := contractSalary(pa), contractSalary(pb)
	if a.Cap.Payroll-salA+salB > a.Cap.Cap+10 || b.Cap.Payroll-salB+salA > b.Cap.Cap+10 {
		return
	}

	if err := s.ExecuteTrade(a.ID, b.ID,
		TradePackage{PlayerIDs: []string{pa.ID}},
		TradePackage{PlayerIDs: []string{pb.ID}}); err != nil {
		return
	}
	s.notify("Trade: %s sent %s to %s for %s.", a.Name, pa.Name, b.Name, pb.Name)
}

func contractSalary(p *core.Player) float64 {
	if p.Contract == nil {
		return 0
	}
	return p.Contract.Salary
}

// Potential multipliers for the user-facing trade valuation.
var tradePotBonus = map[core.PotentialGrade]float64{
	core.GradeAPlus: 1.5,
	core.GradeA:     1.3,
	core.GradeB:     1.15,
	core.GradeC:     1.0,
	core.GradeD:     0.9,
	core.GradeF:     0.8,
}

// AssetValue is the trade-desk valuation of a player: an exponential curve
// over OVR times a potential multiplier. Tuning, not an invariant.
func AssetValue(p *core.Player) int {
	val := math.Pow(float64(p.OVR-50), 2.5) / 10
	val *= tradePotBonus[p.PotentialGrade]
	return int(math.Round(val))
}

// PickValue flattens picks into the same scale: any first is worth a
// high-70s starter, any second a bench piece.
func PickValue(pk core.DraftPick) int {
	if pk.Round == 1 {
		return 250
	}
	return 50
}

// TradeInterest maps a value delta between the two sides to a 0-100
// interest score: 50 is a dead-even deal.
func (s *Session) TradeInterest(offered, requested TradePackage, partnerID string) (int, error) {
	user := s.UserTeam()
	partner := s.League.Team(partnerID)
	if user == nil || partner == nil {
		return 0, ErrUnknownTeam
	}

	userVal := packageValue(user, offered)
	partnerVal := packageValue(partner, requested)

	interest := 50 + (userVal-partnerVal)/5
	return core.Clamp(interest, 0, 100), nil
}

func packageValue(t *core.Team, pkg TradePackage) int {
	sum := 0
	for _, id := range pkg.PlayerIDs {
		if p := t.FindPlayer(id); p != nil {
			sum += AssetValue(p)
		}
	}
	for _, id := range pkg.PickIDs {
		for _, pk := range t.Assets.Picks {
			if pk.ID == id {
				sum += PickValue(pk)
			}
		}
	}
	return sum
}

// ProposeTrade submits a user offer to a CPU team. High interest is an
// automatic accept, a middle band rolls the dice, low interest is a flat
// rejection. On accept the trade executes immediately.
func (s *Session) ProposeTrade(partnerID string, offered, requested TradePackage) (bool, error) {
	interest, err := s.TradeInterest(offered, requested, partnerID)
	if err != nil {
		return false, err
	}

	accepted := false
	switch {
	case interest >= 60:
		accepted = true
	case interest >= 45:
		accepted = s.rand().Float64() < float64(interest-45)/15
	}
	if !accepted {
		return false, nil
	}

	if err := s.ExecuteTrade(s.UserTeamID, partnerID, offered, requested); err != nil {
		return false, err
	}
	partner := s.League.Team(partnerID)
	s.notify("Trade completed with %s.", partner.Name)
	return true, nil
}
