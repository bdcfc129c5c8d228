package franchise

import (
	"testing"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

func TestScoutDomestic(t *testing.T) {
	s := newTestSession(t, "scout")
	p := s.Scouting.Domestic[0]

	if err := s.ScoutDomestic(p.ID); err != nil {
		t.Fatalf("ScoutDomestic: %v", err)
	}
	if !p.Scouted {
		t.Error("prospect not marked scouted")
	}
	if s.Hours.Available != s.Rules.HoursPerWeek-1 {
		t.Errorf("hours = %d, want %d", s.Hours.Available, s.Rules.HoursPerWeek-1)
	}
	if len(s.Scouting.ScoutedDomesticIDs) != 1 {
		t.Errorf("scouted ids = %d, want 1", len(s.Scouting.ScoutedDomesticIDs))
	}

	// Scouting again is free and idempotent.
	if err := s.ScoutDomestic(p.ID); err != nil {
		t.Fatal(err)
	}
	if s.Hours.Available != s.Rules.HoursPerWeek-1 {
		t.Error("re-scouting charged hours")
	}

	if err := s.ScoutDomestic("nope"); err != ErrUnknownProspect {
		t.Errorf("unknown prospect: err = %v, want ErrUnknownProspect", err)
	}
}

func TestTravelAndSearch(t *testing.T) {
	s := newTestSession(t, "travel")

	c := gen.Continents[2] // Europe: costs real travel hours
	if err := s.TravelTo(c.Key); err != nil {
		t.Fatalf("TravelTo: %v", err)
	}
	if s.Scouting.IntlLocation != c.Key {
		t.Fatalf("location = %q, want %q", s.Scouting.IntlLocation, c.Key)
	}
	afterTravel := s.Hours.Available
	if afterTravel != s.Rules.HoursPerWeek-c.TravelHours {
		t.Fatalf("hours = %d, want travel cost %d deducted", afterTravel, c.TravelHours)
	}

	// Re-traveling to the same place is free.
	if err := s.TravelTo(c.Key); err != nil {
		t.Fatal(err)
	}
	if s.Hours.Available != afterTravel {
		t.Error("traveling in place charged hours")
	}

	found, err := s.SearchIntl()
	if err != nil {
		t.Fatalf("SearchIntl: %v", err)
	}
	if s.Hours.Available != afterTravel-2 {
		t.Errorf("hours = %d, want search cost 2 deducted", s.Hours.Available)
	}
	if found != len(s.DiscoveredIntl()) {
		t.Errorf("found %d but %d discovered", found, len(s.DiscoveredIntl()))
	}
	for _, p := range s.DiscoveredIntl() {
		if p.ContinentKey != c.Key {
			t.Errorf("%s discovered on %s while searching %s", p.Name, p.ContinentKey, c.Key)
		}
		if !p.Declared {
			if _, ok := s.Scouting.IntlFoundWeek[p.ID]; !ok {
				t.Errorf("%s has no expiry clock", p.Name)
			}
		}
	}

	s.LeaveIntl()
	if s.Scouting.IntlLocation != "" {
		t.Error("LeaveIntl did not clear the location")
	}
	if _, err := s.SearchIntl(); err != ErrUnknownProspect {
		t.Errorf("search with no location: err = %v, want ErrUnknownProspect", err)
	}
}

func TestSearchWithoutHoursFails(t *testing.T) {
	s := newTestSession(t, "broke")
	if err := s.TravelTo(gen.Continents[0].Key); err != nil {
		t.Fatal(err)
	}
	s.Hours = Hours{Available: 1, Banked: 0, BankMax: 60}

	if _, err := s.SearchIntl(); err != ErrNotEnoughHours {
		t.Fatalf("err = %v, want ErrNotEnoughHours", err)
	}
	if s.Hours.Available != 0 {
		t.Error("failed search left hours behind")
	}
}

func TestRecruitIntlToDeclaration(t *testing.T) {
	s := newTestSession(t, "recruit")

	// Hand-discover a prospect so the test does not depend on search rolls.
	var p *core.Prospect
	for _, cand := range s.Scouting.Intl {
		if cand.PotentialGrade == core.GradeC || cand.PotentialGrade == core.GradeD {
			p = cand
			break
		}
	}
	if p == nil {
		t.Fatal("no mid-grade international prospect")
	}
	p.Discovered = true
	s.Scouting.IntlFoundWeek[p.ID] = s.Week

	// Must be scouted before recruiting.
	if _, err := s.RecruitIntl(p.ID); err != ErrUnknownProspect {
		t.Fatalf("recruit unscouted: err = %v, want ErrUnknownProspect", err)
	}
	if err := s.ScoutIntl(p.ID); err != nil {
		t.Fatalf("ScoutIntl: %v", err)
	}

	s.Hours = Hours{Available: 60, Banked: 60, BankMax: 60}

	// Interest only moves up; enough visits always get a mid-grade
	// prospect over the line.
	for visits := 0; !p.Declared; visits++ {
		if visits > 25 {
			t.Fatal("prospect never declared")
		}
		before := p.DeclareInterest
		declared, err := s.RecruitIntl(p.ID)
		if err != nil {
			t.Fatalf("RecruitIntl: %v", err)
		}
		if !declared && p.DeclareInterest <= before {
			t.Fatalf("interest did not rise: %d -> %d", before, p.DeclareInterest)
		}
		s.Hours = Hours{Available: 60, Banked: 60, BankMax: 60}
	}

	if p.DeclareInterest < s.Rules.DeclareThreshold {
		t.Errorf("declared at interest %d, below threshold %d", p.DeclareInterest, s.Rules.DeclareThreshold)
	}
	if _, ok := s.Scouting.IntlFoundWeek[p.ID]; ok {
		t.Error("declared prospect still has an expiry clock")
	}

	// Declared prospects cannot be recruited again.
	if _, err := s.RecruitIntl(p.ID); err != ErrUnknownProspect {
		t.Errorf("recruit declared: err = %v, want ErrUnknownProspect", err)
	}
}

func TestScoutIntlRequiresDiscovery(t *testing.T) {
	s := newTestSession(t, "hidden")
	p := s.Scouting.Intl[0]
	if err := s.ScoutIntl(p.ID); err != ErrUnknownProspect {
		t.Fatalf("scouting a hidden prospect: err = %v, want ErrUnknownProspect", err)
	}
}
