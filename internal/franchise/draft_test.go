package franchise

import (
	"testing"
)

// playToDraft runs a franchise all the way to the draft phase.
func playToDraft(t *testing.T, s *Session) {
	t.Helper()
	playToOffseason(t, s)
	if err := s.FinishFreeAgency(); err != nil {
		t.Fatalf("FinishFreeAgency: %v", err)
	}
}

// runDraft plays the draft out, the user always taking the best available.
func runDraft(t *testing.T, s *Session) {
	t.Helper()
	guard := len(s.League.Teams)*s.Rules.DraftRounds + 5
	for !s.Offseason.Draft.Done {
		if guard--; guard < 0 {
			t.Fatal("draft never completed")
		}
		if s.UserOnClock() {
			board := s.DraftBoard()
			if len(board) == 0 {
				t.Fatal("empty board with the user on the clock")
			}
			if err := s.MakeUserPick(board[0].ID); err != nil {
				t.Fatalf("MakeUserPick: %v", err)
			}
			continue
		}
		if err := s.SimCPUPick(); err != nil {
			t.Fatalf("SimCPUPick: %v", err)
		}
	}
}

func TestDraftRunsToCompletion(t *testing.T) {
	s := newTestSession(t, "draft")
	playToDraft(t, s)
	runDraft(t, s)

	d := s.Offseason.Draft
	wantPicks := len(s.League.Teams) * s.Rules.DraftRounds
	if len(d.Selections) != wantPicks {
		t.Fatalf("selections = %d, want %d", len(d.Selections), wantPicks)
	}

	seen := map[string]bool{}
	for i, sel := range d.Selections {
		if sel.Overall != i+1 {
			t.Errorf("selection %d has overall %d", i, sel.Overall)
		}
		if seen[sel.ProspectID] {
			t.Errorf("prospect %s drafted twice", sel.Name)
		}
		seen[sel.ProspectID] = true

		tm := s.League.Team(sel.TeamID)
		if tm == nil {
			t.Fatalf("selection by unknown team %q", sel.TeamID)
		}
		if tm.FindPlayer(sel.ProspectID) == nil {
			t.Errorf("%s drafted by the %s but not on their roster", sel.Name, tm.Name)
		}
	}

	// Consumed picks are gone from every ledger.
	for _, tm := range s.League.Teams {
		for _, pk := range tm.Assets.Picks {
			if pk.Year == s.Year {
				t.Errorf("%s still holds a consumed %d pick", tm.Name, pk.Year)
			}
		}
	}
}

func TestRookieContractsByRound(t *testing.T) {
	s := newTestSession(t, "rookies")
	playToDraft(t, s)
	runDraft(t, s)

	for _, sel := range s.Offseason.Draft.Selections {
		p := s.League.Team(sel.TeamID).FindPlayer(sel.ProspectID)
		if p == nil {
			continue
		}
		want := rookieContracts[sel.Round]
		if p.Contract.Years != want.Years || p.Contract.Salary != want.Salary {
			t.Errorf("round %d rookie %s signed %.1fM x %d, want %.1fM x %d",
				sel.Round, p.Name, p.Contract.Salary, p.Contract.Years, want.Salary, want.Years)
		}
		if p.RookieYear != s.Year {
			t.Errorf("%s rookie year = %d, want %d", p.Name, p.RookieYear, s.Year)
		}
	}
}

func TestTradedPickConveys(t *testing.T) {
	s := newTestSession(t, "conveyance")

	// Ship the user's current-year first to another team before the season
	// plays out.
	user := s.UserTeam()
	partner := s.League.Teams[5]
	id := pickID(user.ID, s.Year, 1)
	if err := s.ExecuteTrade(user.ID, partner.ID, TradePackage{PickIDs: []string{id}}, TradePackage{}); err != nil {
		t.Fatalf("ExecuteTrade: %v", err)
	}

	playToDraft(t, s)
	runDraft(t, s)

	// Whoever held the pick made the selection at the user's original slot.
	found := false
	for _, sel := range s.Offseason.Draft.Selections {
		if sel.OriginalTeamID == user.ID && sel.Round == 1 {
			found = true
			if sel.TeamID != partner.ID {
				t.Errorf("user's round-1 slot exercised by %s, want %s", sel.TeamID, partner.ID)
			}
		}
	}
	if !found {
		t.Fatal("user's original round-1 slot never came up")
	}
}

func TestAdvanceYearResetsSeason(t *testing.T) {
	s := newTestSession(t, "newyear")
	playToDraft(t, s)

	if err := s.AdvanceYear(); err != ErrWrongPhase {
		t.Fatalf("AdvanceYear mid-draft: err = %v, want ErrWrongPhase", err)
	}

	runDraft(t, s)
	startYear := s.Year
	if err := s.AdvanceYear(); err != nil {
		t.Fatalf("AdvanceYear: %v", err)
	}

	if s.Year != startYear+1 || s.Phase != PhaseRegular || s.Week != 1 {
		t.Fatalf("new season state = year %d phase %s week %d", s.Year, s.Phase, s.Week)
	}
	if s.SeasonDone || s.Playoffs != nil || s.Offseason != nil {
		t.Fatal("old season state leaked into the new year")
	}
	if s.Hours.Available != s.Rules.HoursPerWeek {
		t.Fatalf("hours = %d, want fresh allowance", s.Hours.Available)
	}
	if len(s.Schedule) != s.Rules.SeasonWeeks {
		t.Fatalf("schedule weeks = %d, want %d", len(s.Schedule), s.Rules.SeasonWeeks)
	}

	for _, tm := range s.League.Teams {
		if tm.Wins != 0 || tm.Losses != 0 {
			t.Errorf("%s record not reset: %d-%d", tm.Name, tm.Wins, tm.Losses)
		}
		for _, p := range tm.Roster {
			if p.Stats.Games != 0 {
				t.Errorf("%s season stats not wiped", p.Name)
			}
		}
		for _, pk := range tm.Assets.Picks {
			if pk.Year < s.Year || pk.Year > s.Year+s.Rules.FuturePickYears-1 {
				t.Errorf("%s holds a pick for %d outside the %d-%d window",
					tm.Name, pk.Year, s.Year, s.Year+s.Rules.FuturePickYears-1)
			}
		}
	}

	// Fresh pools, nothing pre-drafted.
	if len(s.Scouting.Domestic) == 0 || len(s.Scouting.Intl) == 0 {
		t.Fatal("scouting pools not regenerated")
	}
	for _, p := range s.Scouting.Domestic {
		if p.Drafted {
			t.Fatal("new year's pool contains drafted prospects")
		}
	}

	// The whole loop still runs a second time.
	if err := s.AdvanceWeek(); err != nil {
		t.Fatalf("AdvanceWeek in season two: %v", err)
	}
}
