package gen

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/vovakirdan/courtside/internal/core"
)

func TestSalaryCurve(t *testing.T) {
	cases := []struct {
		ovr, age int
		want     float64
	}{
		{99, 26, 48.0}, // supermax at prime age
		{60, 40, 0.35}, // league minimum with decline discount
		{60, 25, 0.5},  // league minimum
		{40, 25, 0.5},  // below 60 still minimum
		{99, 21, 45.6}, // supermax, unproven discount
		{99, 35, 33.6}, // supermax, decline discount
	}
	for _, c := range cases {
		got := Salary(c.ovr, c.age)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Salary(%d, %d) = %v, want %v", c.ovr, c.age, got, c.want)
		}
	}
}

func TestSalaryMonotonicInOVR(t *testing.T) {
	prev := 0.0
	for ovr := 60; ovr <= 99; ovr++ {
		s := Salary(ovr, 25)
		if s < prev {
			t.Fatalf("salary decreased at ovr %d: %v < %v", ovr, s, prev)
		}
		prev = s
	}
}

func TestLeagueShape(t *testing.T) {
	l := League("v1_seed")

	if len(l.Teams) != 32 {
		t.Fatalf("league has %d teams, want 32", len(l.Teams))
	}

	east, west := 0, 0
	for _, tm := range l.Teams {
		switch tm.Conference {
		case core.East:
			east++
		case core.West:
			west++
		default:
			t.Errorf("team %s has no conference", tm.Name)
		}
		if tm.Rating < 60 || tm.Rating > 95 {
			t.Errorf("team %s rating %d out of [60,95]", tm.Name, tm.Rating)
		}
		if tm.Cap.Cap != DefaultCap {
			t.Errorf("team %s cap %v, want %v", tm.Name, tm.Cap.Cap, DefaultCap)
		}
	}
	if east == 0 || west == 0 {
		t.Fatalf("conference split %d/%d: both must be non-empty", east, west)
	}
}

func TestLeagueDeterminism(t *testing.T) {
	a, _ := json.Marshal(League("v1_seed"))
	b, _ := json.Marshal(League("v1_seed"))
	if string(a) != string(b) {
		t.Error("same seed produced different leagues")
	}

	c, _ := json.Marshal(League("other_seed"))
	if string(a) == string(c) {
		t.Error("different seeds produced identical leagues")
	}
}

func TestRosterShape(t *testing.T) {
	for _, rating := range []int{60, 78, 95} {
		roster := Roster("Boston Celtics", rating, BaseYear, "roster")

		if len(roster) != RosterSize {
			t.Fatalf("roster has %d players, want %d", len(roster), RosterSize)
		}

		payroll := 0.0
		for _, p := range roster {
			if p.OVR != int(math.Round(float64(p.Off+p.Def)/2)) {
				t.Errorf("player %s violates ovr invariant: ovr=%d off=%d def=%d", p.Name, p.OVR, p.Off, p.Def)
			}
			if p.Off < 40 || p.Off > 99 || p.Def < 40 || p.Def > 99 {
				t.Errorf("player %s sub-ratings out of range: off=%d def=%d", p.Name, p.Off, p.Def)
			}
			if p.Age < 19 || p.Age > 39 {
				t.Errorf("player %s age %d out of range", p.Name, p.Age)
			}
			if p.Contract == nil {
				t.Fatalf("player %s has no contract", p.Name)
			}
			// Unscaled contracts sit at the age-discounted fair value,
			// which dips below the flat minimum for young or old fringe
			// players; the 0.5 floor only binds when fitPayroll rescales.
			floor := math.Min(LeagueMinimum, Salary(p.OVR, p.Age))
			if p.Contract.Salary < floor-1e-9 {
				t.Errorf("player %s salary %v below floor %v", p.Name, p.Contract.Salary, floor)
			}
			payroll += p.Contract.Salary
		}

		if payroll > DefaultCap+0.001 {
			t.Errorf("rating %d roster payroll %v exceeds cap %v", rating, payroll, DefaultCap)
		}
	}
}

func TestRosterPositionCoverage(t *testing.T) {
	roster := Roster("Chicago Bulls", 80, BaseYear, "roster")

	byPos := map[core.Position]int{}
	for _, p := range roster {
		byPos[p.Pos]++
	}
	for _, pos := range core.Positions {
		if byPos[pos] < 2 {
			t.Errorf("position %s has %d players, want at least 2", pos, byPos[pos])
		}
	}
}

func TestRosterDeterminism(t *testing.T) {
	a, _ := json.Marshal(Roster("Miami Heat", 85, 2021, "roster"))
	b, _ := json.Marshal(Roster("Miami Heat", 85, 2021, "roster"))
	if string(a) != string(b) {
		t.Error("same inputs produced different rosters")
	}

	c, _ := json.Marshal(Roster("Miami Heat", 85, 2022, "roster"))
	if string(a) == string(c) {
		t.Error("different years produced identical rosters")
	}
}

func TestQualityScalesRosterStrength(t *testing.T) {
	weak := Roster("Detroit Pistons", 60, BaseYear, "roster")
	strong := Roster("Denver Nuggets", 95, BaseYear, "roster")

	avg := func(roster []*core.Player) float64 {
		sum := 0
		for _, p := range roster {
			sum += p.OVR
		}
		return float64(sum) / float64(len(roster))
	}

	if avg(strong) <= avg(weak) {
		t.Errorf("95-rated roster (%v avg) not stronger than 60-rated (%v avg)", avg(strong), avg(weak))
	}
}

func TestDomesticProspects(t *testing.T) {
	pool := DomesticProspects(BaseYear, 100, "ncaa")
	if len(pool) != 100 {
		t.Fatalf("pool size %d, want 100", len(pool))
	}
	for _, p := range pool {
		if !p.Declared || !p.Discovered {
			t.Errorf("domestic prospect %s should be declared and visible", p.Name)
		}
		if p.CurrentOVR < 50 || p.CurrentOVR > 85 {
			t.Errorf("prospect %s OVR %d out of range", p.Name, p.CurrentOVR)
		}
		if p.College == "" {
			t.Errorf("domestic prospect %s has no college", p.Name)
		}
	}
}

func TestInternationalProspects(t *testing.T) {
	pool := InternationalProspects(BaseYear, 100, "intl")
	if len(pool) != 100 {
		t.Fatalf("pool size %d, want 100", len(pool))
	}
	for _, p := range pool {
		if p.Declared || p.Discovered {
			t.Errorf("intl prospect %s must start hidden and undeclared", p.Name)
		}
		if ContinentByKey(p.ContinentKey) == nil {
			t.Errorf("intl prospect %s has unknown continent %q", p.Name, p.ContinentKey)
		}
		if p.DeclareInterest < 10 || p.DeclareInterest > 39 {
			t.Errorf("intl prospect %s declare interest %d out of seed range", p.Name, p.DeclareInterest)
		}
	}
}

func TestProspectDeterminism(t *testing.T) {
	a, _ := json.Marshal(DomesticProspects(2023, 50, "ncaa"))
	b, _ := json.Marshal(DomesticProspects(2023, 50, "ncaa"))
	if string(a) != string(b) {
		t.Error("domestic prospect generation not deterministic")
	}

	c, _ := json.Marshal(InternationalProspects(2023, 50, "intl"))
	d, _ := json.Marshal(InternationalProspects(2023, 50, "intl"))
	if string(c) != string(d) {
		t.Error("international prospect generation not deterministic")
	}
}

func TestGradeDistribution(t *testing.T) {
	pool := DomesticProspects(BaseYear, 2000, "dist")
	counts := map[core.PotentialGrade]int{}
	for _, p := range pool {
		counts[p.PotentialGrade]++
	}

	// C and D together dominate; A+ stays rare.
	if counts[core.GradeAPlus] > 120 {
		t.Errorf("too many A+ prospects: %d of 2000", counts[core.GradeAPlus])
	}
	if counts[core.GradeC]+counts[core.GradeD] < 800 {
		t.Errorf("C/D share too small: %d of 2000", counts[core.GradeC]+counts[core.GradeD])
	}
}

func TestFreeAgents(t *testing.T) {
	pool := FreeAgents(2023, 80, "fa")
	if len(pool) != 80 {
		t.Fatalf("pool size %d, want 80", len(pool))
	}

	for _, fa := range pool {
		if fa.OVR < 60 || fa.OVR > 90 {
			t.Errorf("free agent %s OVR %d out of range", fa.Name, fa.OVR)
		}
		fair := Salary(fa.OVR, fa.Age)
		if fa.Ask < fair*0.9-0.01 || fa.Ask > fair*1.1+0.01 {
			t.Errorf("free agent %s ask %v outside greed band of fair %v", fa.Name, fa.Ask, fair)
		}
		if fa.YearsAsk < 1 || fa.YearsAsk > 4 {
			t.Errorf("free agent %s years ask %d out of [1,4]", fa.Name, fa.YearsAsk)
		}

		// Career history must cover BaseYear..year-1 contiguously.
		if len(fa.CareerStats) != 2023-BaseYear {
			t.Fatalf("free agent %s career covers %d seasons, want %d", fa.Name, len(fa.CareerStats), 2023-BaseYear)
		}
		for i, cs := range fa.CareerStats {
			if cs.Year != BaseYear+i {
				t.Errorf("free agent %s career gap at index %d: year %d", fa.Name, i, cs.Year)
			}
		}
	}

	// Sorted best first.
	for i := 1; i < len(pool); i++ {
		if pool[i].OVR > pool[i-1].OVR {
			t.Errorf("pool not sorted by OVR at %d", i)
			break
		}
	}
}

func TestFreeAgentDeterminism(t *testing.T) {
	a, _ := json.Marshal(FreeAgents(2024, 40, "fa"))
	b, _ := json.Marshal(FreeAgents(2024, 40, "fa"))
	if string(a) != string(b) {
		t.Error("free agent generation not deterministic")
	}
}
