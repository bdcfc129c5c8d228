package franchise

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
)

// Rookie-scale contracts. First-rounders sign richer, longer deals.
var rookieContracts = map[int]core.Contract{
	1: {Years: 3, Salary: 4.0},
	2: {Years: 2, Salary: 1.5},
}

// pickID builds the stable identifier of a team's original pick.
func pickID(teamID string, year, round int) string {
	return fmt.Sprintf("pick_%s_%d_r%d", teamID, year, round)
}

// DraftSelection is one completed pick on the record.
type DraftSelection struct {
	Overall        int                 `json:"overall"`
	Round          int                 `json:"round"`
	TeamID         string              `json:"teamId"`
	OriginalTeamID string              `json:"originalTeamId"`
	ProspectID     string              `json:"prospectId"`
	Name           string              `json:"name"`
	Pos            core.Position       `json:"pos"`
	OVR            int                 `json:"ovr"`
	Grade          core.PotentialGrade `json:"grade"`
}

// DraftState drives the two-round draft. OrderTeamIDs is the natural
// worst-to-best slot order of original owners; the team actually picking at
// a slot is whoever currently holds that original pick.
type DraftState struct {
	Round        int              `json:"round"`
	PickIndex    int              `json:"pickIndex"`
	OrderTeamIDs []string         `json:"orderTeamIds"`
	Selections   []DraftSelection `json:"selections"`
	Done         bool             `json:"done"`
}

// startDraft seeds the draft order from regular-season records and flips the
// phase. Called from FinishFreeAgency.
func (s *Session) startDraft() {
	teams := make([]*core.Team, len(s.League.Teams))
	copy(teams, s.League.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Wins != teams[j].Wins {
			return teams[i].Wins < teams[j].Wins
		}
		if teams[i].Losses != teams[j].Losses {
			return teams[i].Losses > teams[j].Losses
		}
		return teams[i].Rating < teams[j].Rating
	})

	order := make([]string, len(teams))
	for i, t := range teams {
		order[i] = t.ID
	}

	s.Offseason.Draft = &DraftState{Round: 1, OrderTeamIDs: order}
	s.Phase = PhaseDraft
	s.notify("The draft is underway. %d prospects declared.", len(s.DraftBoard()))
}

// DraftBoard returns the declared, undrafted prospects across both pools,
// best visible OVR first.
func (s *Session) DraftBoard() []*core.Prospect {
	var board []*core.Prospect
	for _, pool := range [][]*core.Prospect{s.Scouting.Domestic, s.Scouting.Intl} {
		for _, p := range pool {
			if p.Declared && !p.Drafted {
				board = append(board, p)
			}
		}
	}
	sort.SliceStable(board, func(i, j int) bool { return board[i].CurrentOVR > board[j].CurrentOVR })
	return board
}

// prospectByID finds a prospect in either pool.
func (s *Session) prospectByID(id string) *core.Prospect {
	for _, pool := range [][]*core.Prospect{s.Scouting.Domestic, s.Scouting.Intl} {
		for _, p := range pool {
			if p.ID == id {
				return p
			}
		}
	}
	return nil
}

// OnClockTeam resolves which team picks at the current slot: the current
// holder of the slot team's original pick for this year and round. Traded
// picks convey; a pick nobody holds falls back to its original owner.
func (s *Session) OnClockTeam() *core.Team {
	d := s.draftState()
	if d == nil || d.Done {
		return nil
	}
	original := d.OrderTeamIDs[d.PickIndex]

	for _, t := range s.League.Teams {
		for _, pk := range t.Assets.Picks {
			if pk.OriginalOwnerID == original && pk.Year == s.Year && pk.Round == d.Round {
				return t
			}
		}
	}
	return s.League.Team(original)
}

func (s *Session) draftState() *DraftState {
	if s.Offseason == nil {
		return nil
	}
	return s.Offseason.Draft
}

// UserOnClock reports whether the user's team is picking right now.
func (s *Session) UserOnClock() bool {
	if s.Phase != PhaseDraft {
		return false
	}
	t := s.OnClockTeam()
	return t != nil && t.ID == s.UserTeamID
}

// MakeUserPick drafts the given prospect for the user's team. Valid only in
// the draft phase with the user on the clock and the prospect declared and
// available.
func (s *Session) MakeUserPick(prospectID string) error {
	if s.Phase != PhaseDraft {
		return ErrWrongPhase
	}
	if !s.UserOnClock() {
		return ErrNotOnClock
	}
	p := s.prospectByID(prospectID)
	if p == nil || !p.Declared || p.Drafted {
		return ErrUnknownProspect
	}
	s.makePick(s.UserTeam(), p)
	return nil
}

// SimCPUPick makes the pick for the CPU team on the clock. The CPU chooses
// weighted-random inside a tier of the best remaining prospects: the window
// widens as the draft deepens, weights favor higher board rank and better
// grades, and international prospects the user has personally scouted are
// off the CPU's radar.
func (s *Session) SimCPUPick() error {
	if s.Phase != PhaseDraft {
		return ErrWrongPhase
	}
	d := s.draftState()
	if d == nil || d.Done {
		return ErrWrongPhase
	}
	if s.UserOnClock() {
		return ErrNotOnClock
	}

	team := s.OnClockTeam()
	if team == nil {
		return ErrUnknownTeam
	}

	board := s.DraftBoard()
	if len(board) == 0 {
		d.Done = true
		return nil
	}

	userScouted := map[string]bool{}
	for _, id := range s.Scouting.ScoutedIntlIDs {
		userScouted[id] = true
	}

	visible := make([]*core.Prospect, 0, len(board))
	for _, p := range board {
		if p.Pool == core.PoolInternational && userScouted[p.ID] {
			continue
		}
		visible = append(visible, p)
	}
	if len(visible) == 0 {
		visible = board // everyone left is user intel; the CPU shrugs and picks anyway
	}

	overall := (d.Round-1)*len(d.OrderTeamIDs) + d.PickIndex + 1
	tier := min(3+overall/8, len(visible))

	s.makePick(team, weightedTierPick(s, visible[:tier]))
	return nil
}

// gradeDraftBump nudges CPU draft weight toward high-potential prospects.
var gradeDraftBump = map[core.PotentialGrade]float64{
	core.GradeAPlus: 1.3,
	core.GradeA:     1.2,
	core.GradeB:     1.1,
}

// weightedTierPick rolls a prospect from the tier window, weighted by
// inverse board rank with a small grade bump.
func weightedTierPick(s *Session, tier []*core.Prospect) *core.Prospect {
	weights := make([]float64, len(tier))
	total := 0.0
	for i, p := range tier {
		w := 1.0 / float64(i+1)
		if bump, ok := gradeDraftBump[p.PotentialGrade]; ok {
			w *= bump
		}
		weights[i] = w
		total += w
	}

	roll := s.rand().Float64() * total
	for i, w := range weights {
		roll -= w
		if roll <= 0 {
			return tier[i]
		}
	}
	return tier[len(tier)-1]
}

// makePick consumes the slot's pick asset, instantiates the prospect as a
// rookie on the drafting team, records the selection and advances the
// cursor.
func (s *Session) makePick(team *core.Team, p *core.Prospect) {
	d := s.draftState()
	original := d.OrderTeamIDs[d.PickIndex]
	overall := (d.Round-1)*len(d.OrderTeamIDs) + d.PickIndex + 1

	team.RemovePick(pickID(original, s.Year, d.Round))

	p.Drafted = true
	team.Roster = append(team.Roster, s.rookieFromProspect(p, d.Round))
	team.RecalcPayroll()
	team.RecalcRating()
	autoDistributeMinutes(team)

	d.Selections = append(d.Selections, DraftSelection{
		Overall:        overall,
		Round:          d.Round,
		TeamID:         team.ID,
		OriginalTeamID: original,
		ProspectID:     p.ID,
		Name:           p.Name,
		Pos:            p.Pos,
		OVR:            p.CurrentOVR,
		Grade:          p.PotentialGrade,
	})

	if team.ID == s.UserTeamID {
		s.notify("You drafted %s (%s, %d OVR) at pick #%d.", p.Name, p.Pos, p.CurrentOVR, overall)
	}

	d.PickIndex++
	if d.PickIndex >= len(d.OrderTeamIDs) {
		d.PickIndex = 0
		d.Round++
	}
	if d.Round > s.Rules.DraftRounds {
		d.Done = true
		s.notify("The draft is complete.")
	}
}

// rookieFromProspect turns a drafted prospect into a rostered player on a
// rookie-scale deal, with an archetype-derived off/def split.
func (s *Session) rookieFromProspect(p *core.Prospect, round int) *core.Player {
	amb := s.rand()

	off, def := p.CurrentOVR, p.CurrentOVR
	switch amb.Intn(3) {
	case 0:
		off, def = off+5, def-5
	case 1:
		off, def = off-5, def+5
	}

	contract := rookieContracts[2]
	if c, ok := rookieContracts[round]; ok {
		contract = c
	}

	rookie := &core.Player{
		ID:             p.ID,
		Name:           p.Name,
		Pos:            p.Pos,
		Age:            p.Age,
		Off:            core.Clamp(off, 40, 99),
		Def:            core.Clamp(def, 40, 99),
		PotentialGrade: p.PotentialGrade,
		Happiness:      70,
		Contract:       &core.Contract{Years: contract.Years, Salary: contract.Salary},
		CareerStats:    []core.CareerSeason{},
		RookieYear:     s.Year,
	}
	rookie.RecalcOVR()
	return rookie
}

// AdvanceYear rolls the franchise into the next season after the draft:
// new scouting pools, pick ledgers extended a year and pruned of expired
// entries, records and stats wiped, a fresh schedule, phase REGULAR week 1.
func (s *Session) AdvanceYear() error {
	if s.Phase != PhaseDraft {
		return ErrWrongPhase
	}
	d := s.draftState()
	if d == nil || !d.Done {
		return ErrWrongPhase
	}

	s.Year++
	s.Week = 1
	s.SeasonDone = false
	s.Hours = Hours{Available: s.Rules.HoursPerWeek, BankMax: s.Rules.HoursBankMax}
	s.Playoffs = nil
	s.Offseason = nil

	for _, t := range s.League.Teams {
		t.Wins, t.Losses = 0, 0
		for _, p := range t.Roster {
			p.Stats = core.SeasonStats{}
		}

		// Extend the ledger with the newly visible future year, drop picks
		// whose year has passed.
		lastYear := s.Year + s.Rules.FuturePickYears - 1
		for round := 1; round <= s.Rules.DraftRounds; round++ {
			t.Assets.Picks = append(t.Assets.Picks, core.DraftPick{
				ID:              pickID(t.ID, lastYear, round),
				OriginalOwnerID: t.ID,
				Year:            lastYear,
				Round:           round,
			})
		}
		kept := t.Assets.Picks[:0]
		for _, pk := range t.Assets.Picks {
			if pk.Year >= s.Year {
				kept = append(kept, pk)
			}
		}
		t.Assets.Picks = kept

		t.RecalcRating()
		autoDistributeMinutes(t)
	}

	s.Schedule = BuildSchedule(s.League, s.Year, s.Meta.Seed, s.Rules.SeasonWeeks)
	s.resetScoutingPools()
	s.Phase = PhaseRegular
	s.notify("Welcome to the %d season.", s.Year)
	return nil
}
