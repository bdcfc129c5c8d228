package franchise

import (
	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// Scouting action costs, in hours.
const (
	costScoutDomestic = 1
	costSearchIntl    = 2
	costScoutIntl     = 2
	costRecruitIntl   = 3
)

// ScoutDomestic spends an hour to reveal a domestic prospect's true rating
// and potential.
func (s *Session) ScoutDomestic(prospectID string) error {
	p := s.prospectByID(prospectID)
	if p == nil || p.Pool != core.PoolDomestic {
		return ErrUnknownProspect
	}
	if p.Scouted {
		return nil
	}
	if err := s.SpendHours(costScoutDomestic); err != nil {
		return err
	}
	p.Scouted = true
	s.Scouting.ScoutedDomesticIDs = append(s.Scouting.ScoutedDomesticIDs, p.ID)
	return nil
}

// TravelTo moves the scouting operation to a continent, paying its travel
// hours. Traveling to the current location is free and does nothing.
func (s *Session) TravelTo(continentKey string) error {
	c := gen.ContinentByKey(continentKey)
	if c == nil {
		return ErrUnknownProspect
	}
	if s.Scouting.IntlLocation == continentKey {
		return nil
	}
	if err := s.SpendHours(c.TravelHours); err != nil {
		return err
	}
	s.Scouting.IntlLocation = continentKey
	return nil
}

// LeaveIntl resets the scouting location, costing nothing.
func (s *Session) LeaveIntl() {
	s.Scouting.IntlLocation = ""
}

// SearchIntl spends two hours searching the current continent for hidden
// prospects. How many turn up depends on the continent's talent density;
// finding nobody is a legitimate outcome. Newly found undeclared prospects
// are stamped with the current week and expire if not converted in time.
func (s *Session) SearchIntl() (int, error) {
	loc := gen.ContinentByKey(s.Scouting.IntlLocation)
	if loc == nil {
		return 0, ErrUnknownProspect
	}
	if err := s.SpendHours(costSearchIntl); err != nil {
		return 0, err
	}

	found := 0
	want := s.rollFoundCount(loc.Density)
	for _, p := range s.Scouting.Intl {
		if found >= want {
			break
		}
		if p.ContinentKey != loc.Key || p.Discovered {
			continue
		}
		p.Discovered = true
		found++
		if !p.Declared {
			if _, ok := s.Scouting.IntlFoundWeek[p.ID]; !ok {
				s.Scouting.IntlFoundWeek[p.ID] = s.Week
			}
		}
	}

	if found > 0 {
		s.notify("Scouting: found %d prospect(s) in %s.", found, loc.Name)
	} else {
		s.notify("Scouting: no new prospects found in %s.", loc.Name)
	}
	return found, nil
}

// rollFoundCount rolls how many prospects a search turns up. Denser regions
// skew toward more finds.
func (s *Session) rollFoundCount(density float64) int {
	x := s.rand().Float64()
	none := 0.45 - 0.20*density
	one := 0.40 + 0.10*density
	two := 0.12 + 0.08*density

	switch {
	case x < none:
		return 0
	case x < none+one:
		return 1
	case x < none+one+two:
		return 2
	default:
		return 3
	}
}

// ScoutIntl spends two hours to reveal a discovered international
// prospect's true rating and potential.
func (s *Session) ScoutIntl(prospectID string) error {
	p := s.prospectByID(prospectID)
	if p == nil || p.Pool != core.PoolInternational || !p.Discovered {
		return ErrUnknownProspect
	}
	if p.Scouted {
		return nil
	}
	if err := s.SpendHours(costScoutIntl); err != nil {
		return err
	}
	p.Scouted = true
	s.Scouting.ScoutedIntlIDs = append(s.Scouting.ScoutedIntlIDs, p.ID)
	return nil
}

// gradeRecruitPenalty: the better the prospect, the harder they are to
// talk into declaring.
func gradeRecruitPenalty(g core.PotentialGrade) int {
	switch g {
	case core.GradeAPlus:
		return 6
	case core.GradeA:
		return 4
	case core.GradeB:
		return 2
	case core.GradeC:
		return 1
	default:
		return 0
	}
}

// RecruitIntl spends three hours pitching a scouted international prospect
// on declaring for the draft. Interest builds by a grade-penalized roll;
// crossing the declare threshold converts them permanently — declared
// prospects never expire.
func (s *Session) RecruitIntl(prospectID string) (declared bool, err error) {
	p := s.prospectByID(prospectID)
	if p == nil || p.Pool != core.PoolInternational || !p.Discovered || !p.Scouted || p.Declared {
		return false, ErrUnknownProspect
	}
	if err := s.SpendHours(costRecruitIntl); err != nil {
		return false, err
	}

	gain := core.Clamp(10-gradeRecruitPenalty(p.PotentialGrade)+s.rand().Intn(6), 4, 14)
	p.DeclareInterest = core.Clamp(p.DeclareInterest+gain, 0, 100)

	if p.DeclareInterest >= s.Rules.DeclareThreshold {
		p.Declared = true
		delete(s.Scouting.IntlFoundWeek, p.ID)
		s.notify("%s (%s) agreed to declare for the draft.", p.Name, p.PotentialGrade)
		return true, nil
	}
	return false, nil
}

// DiscoveredIntl lists the currently visible international prospects.
func (s *Session) DiscoveredIntl() []*core.Prospect {
	var out []*core.Prospect
	for _, p := range s.Scouting.Intl {
		if p.Discovered {
			out = append(out, p)
		}
	}
	return out
}

// IntlExpiresIn returns how many weeks a discovered undeclared prospect has
// left before vanishing, or -1 if no clock is running on them.
func (s *Session) IntlExpiresIn(prospectID string) int {
	found, ok := s.Scouting.IntlFoundWeek[prospectID]
	if !ok {
		return -1
	}
	return core.Clamp(s.Rules.IntlExpiryWeeks-(s.Week-found), 0, s.Rules.IntlExpiryWeeks)
}
