package franchise

import (
	"math"
	"testing"
)

func TestProgressionKeepsRatingInvariant(t *testing.T) {
	s := newTestSession(t, "growth")
	playToOffseason(t, s)

	for _, tm := range s.League.Teams {
		for _, p := range tm.Roster {
			want := int(math.Round(float64(p.Off+p.Def) / 2))
			if p.OVR != want {
				t.Errorf("%s: ovr=%d off=%d def=%d, want ovr %d", p.Name, p.OVR, p.Off, p.Def, want)
			}
			if p.Off < 40 || p.Off > 99 || p.Def < 40 || p.Def > 99 {
				t.Errorf("%s: ratings %d/%d outside 40-99", p.Name, p.Off, p.Def)
			}
		}
	}
}

func TestProgressionAgesSurvivors(t *testing.T) {
	s := newTestSession(t, "aging")

	before := map[string]int{}
	for _, tm := range s.League.Teams {
		for _, p := range tm.Roster {
			before[p.ID] = p.Age
		}
	}

	playToOffseason(t, s)

	for _, tm := range s.League.Teams {
		for _, p := range tm.Roster {
			was, ok := before[p.ID]
			if !ok {
				continue
			}
			if p.Age != was+1 {
				t.Errorf("%s: age %d -> %d, want +1", p.Name, was, p.Age)
			}
		}
	}
}

func TestExpiringContractBecomesFreeAgent(t *testing.T) {
	s := newTestSession(t, "expiring")

	// Pin a young starter to a deal that runs out this season. Young so
	// the retirement roll cannot eat them first.
	var target string
	for _, p := range s.UserTeam().Roster {
		if p.Age <= 25 {
			p.Contract.Years = 1
			target = p.ID
			break
		}
	}
	if target == "" {
		t.Fatal("no young player on the user roster")
	}

	playToOffseason(t, s)

	for _, tm := range s.League.Teams {
		if tm.FindPlayer(target) != nil {
			t.Fatalf("expired player still on the %s roster", tm.Name)
		}
	}

	found := false
	for _, fa := range s.Offseason.FreeAgents {
		if fa.ID == target {
			found = true
			if fa.Ask <= 0 || fa.YearsAsk < 1 || fa.YearsAsk > 4 {
				t.Errorf("expiring free agent has no usable ask: %.2f x %d", fa.Ask, fa.YearsAsk)
			}
		}
	}
	if !found {
		t.Fatal("expired player missing from the free-agent market")
	}
}

func TestRetirementIsExclusive(t *testing.T) {
	s := newTestSession(t, "retire")

	// Stack the user roster with ancient players so retirements actually
	// fire this offseason.
	for i, p := range s.UserTeam().Roster {
		if i < 5 {
			p.Age = 40
		}
	}

	playToOffseason(t, s)

	if len(s.Retired) == 0 {
		t.Fatal("no retirements with five 40-year-olds in the league")
	}

	for _, r := range s.Retired {
		if r.RetiredYear == 0 || r.LastTeam == "" {
			t.Errorf("%s: retirement record incomplete", r.Player.Name)
		}
		for _, tm := range s.League.Teams {
			if tm.FindPlayer(r.Player.ID) != nil {
				t.Errorf("retired %s still rostered by the %s", r.Player.Name, tm.Name)
			}
		}
		for _, fa := range s.Offseason.FreeAgents {
			if fa.ID == r.Player.ID {
				t.Errorf("retired %s is on the free-agent market", r.Player.Name)
			}
		}
	}
}

func TestCareerStatsArchived(t *testing.T) {
	s := newTestSession(t, "archive")

	// A starter who survives the offseason must carry an archived line for
	// the season just played.
	var target string
	for _, p := range s.UserTeam().Roster {
		if p.Age <= 25 && p.Rotation.Minutes >= 30 && p.Contract.Years >= 3 {
			target = p.ID
			break
		}
	}
	if target == "" {
		t.Skip("no young starter on a long deal with this seed")
	}

	startYear := s.Year
	playToOffseason(t, s)

	p := s.UserTeam().FindPlayer(target)
	if p == nil {
		t.Fatal("target left the roster")
	}
	if len(p.CareerStats) == 0 {
		t.Fatal("no archived season line")
	}
	last := p.CareerStats[len(p.CareerStats)-1]
	if last.Year != startYear {
		t.Errorf("archived year = %d, want %d", last.Year, startYear)
	}
	if last.Stats.Games == 0 || last.Stats.Points == 0 {
		t.Errorf("archived line is empty: %+v", last.Stats)
	}
	if p.Stats.Games == 0 {
		t.Error("current-season stats wiped before the new year")
	}
}
