package franchise

import (
	"encoding/json"
	"errors"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// ErrNoSave means the blob could not be read as any known save shape.
// Callers treat it as "no save exists", never as a crash.
var ErrNoSave = errors.New("franchise: no usable save")

// Encode serializes the session for the save store. JSON keeps the blob
// human-inspectable and round-trips the whole tree losslessly.
func (s *Session) Encode() ([]byte, error) {
	s.Version = SaveVersion
	return json.Marshal(s)
}

// migration upgrades a decoded save from one schema version to the next.
// Each step is keyed by the version it upgrades FROM and must be pure over
// the raw document.
type migration func(doc map[string]any)

var migrations = map[int]migration{
	// v1 predates franchise history and the retired list.
	1: func(doc map[string]any) {
		if _, ok := doc["history"]; !ok {
			doc["history"] = []any{}
		}
		if _, ok := doc["retiredPlayers"]; !ok {
			doc["retiredPlayers"] = []any{}
		}
	},
	// v2 predates serialized rules; older saves ran the defaults.
	2: func(doc map[string]any) {
		if _, ok := doc["rules"]; !ok {
			rules, _ := json.Marshal(DefaultRules())
			var m map[string]any
			_ = json.Unmarshal(rules, &m)
			doc["rules"] = m
		}
	},
}

// Decode parses a persisted blob, runs it through the version-upgrade
// pipeline and backfills any structurally missing fields. An unparseable
// blob yields ErrNoSave.
func Decode(data []byte) (*Session, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrNoSave
	}

	version := 1
	if v, ok := doc["version"].(float64); ok && int(v) > 0 {
		version = int(v)
	}
	for ; version < SaveVersion; version++ {
		if step, ok := migrations[version]; ok {
			step(doc)
		}
	}
	doc["version"] = SaveVersion

	upgraded, err := json.Marshal(doc)
	if err != nil {
		return nil, ErrNoSave
	}

	var s Session
	if err := json.Unmarshal(upgraded, &s); err != nil {
		return nil, ErrNoSave
	}
	s.ensureShape()
	return &s, nil
}

// ensureShape backfills whatever an older or partial save left missing so
// the state tree is always structurally complete after load. This is a
// compatibility contract: screens and engine ops may assume every required
// sub-object exists.
func (s *Session) ensureShape() {
	if s.Rules.SeasonWeeks == 0 {
		s.Rules = DefaultRules()
	}
	if s.Year == 0 {
		s.Year = gen.BaseYear
	}
	if s.Phase == "" {
		s.Phase = PhaseRegular
	}
	if s.Week == 0 {
		s.Week = 1
	}
	if s.Hours.BankMax == 0 {
		s.Hours.BankMax = s.Rules.HoursBankMax
	}
	if s.Inbox == nil {
		s.Inbox = []Notice{}
	}
	if s.History == nil {
		s.History = []SeasonRecord{}
	}
	if s.Retired == nil {
		s.Retired = []core.RetiredPlayer{}
	}

	if s.Scouting.ScoutedDomesticIDs == nil {
		s.Scouting.ScoutedDomesticIDs = []string{}
	}
	if s.Scouting.ScoutedIntlIDs == nil {
		s.Scouting.ScoutedIntlIDs = []string{}
	}
	if s.Scouting.IntlFoundWeek == nil {
		s.Scouting.IntlFoundWeek = map[string]int{}
	}

	if s.League == nil {
		return
	}
	for _, t := range s.League.Teams {
		if t.Cap.Cap == 0 {
			t.Cap.Cap = s.Rules.SalaryCap
		}
		if t.Roster == nil {
			t.Roster = []*core.Player{}
		}
		if t.Assets.Picks == nil {
			t.Assets.Picks = []core.DraftPick{}
		}

		hadRotation := false
		for _, p := range t.Roster {
			if p.CareerStats == nil {
				p.CareerStats = []core.CareerSeason{}
			}
			if p.Happiness == 0 {
				p.Happiness = 70
			}
			if p.Contract == nil {
				p.Contract = &core.Contract{Years: 1, Salary: gen.LeagueMinimum}
			}
			p.RecalcOVR()
			if p.Rotation.Minutes > 0 {
				hadRotation = true
			}
		}
		if !hadRotation && len(t.Roster) > 0 {
			autoDistributeMinutes(t)
		}
		t.RecalcPayroll()
	}
}
