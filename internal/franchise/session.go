// Package franchise implements the season/league state machine: the weekly
// regular-season simulation, playoffs, end-of-season player progression, free
// agency, the draft and trades. All state hangs off a Session owned by the
// caller; there are no package-level globals, so independent franchises can
// run side by side.
package franchise

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// Phase is the strict season state machine. Engine operations are only valid
// in their own phase; called elsewhere they mutate nothing and return
// ErrWrongPhase, which callers are free to treat as a no-op.
type Phase string

const (
	PhaseRegular    Phase = "REGULAR"
	PhasePlayoffs   Phase = "PLAYOFFS"
	PhaseFreeAgency Phase = "FREE_AGENCY"
	PhaseDraft      Phase = "DRAFT"
)

// allowedNext is the only legal phase progression.
var allowedNext = map[Phase]Phase{
	PhaseRegular:    PhasePlayoffs,
	PhasePlayoffs:   PhaseFreeAgency,
	PhaseFreeAgency: PhaseDraft,
	PhaseDraft:      PhaseRegular,
}

// Engine precondition errors. None of these leave the session mutated,
// except ErrNotEnoughHours which reports the documented best-effort drain.
var (
	ErrWrongPhase      = errors.New("franchise: operation not valid in current phase")
	ErrNotEnoughHours  = errors.New("franchise: not enough hours")
	ErrUnknownTeam     = errors.New("franchise: unknown team")
	ErrUnknownPlayer   = errors.New("franchise: unknown player")
	ErrUnknownProspect = errors.New("franchise: unknown prospect")
	ErrCapExceeded     = errors.New("franchise: salary cap exceeded")
	ErrRosterFull      = errors.New("franchise: roster is full")
	ErrNotOnClock      = errors.New("franchise: user team is not on the clock")
	ErrSeasonNotOver   = errors.New("franchise: regular season still in progress")
)

// Rules are the tunable constants a session runs under. They are serialized
// with the save so old franchises keep the numbers they were started with.
type Rules struct {
	SeasonWeeks      int     `json:"seasonWeeks"`
	HoursPerWeek     int     `json:"hoursPerWeek"`
	HoursBankMax     int     `json:"hoursBankMax"`
	SalaryCap        float64 `json:"salaryCap"`
	RosterMin        int     `json:"rosterMin"`
	RosterMax        int     `json:"rosterMax"`
	DraftRounds      int     `json:"draftRounds"`
	FuturePickYears  int     `json:"futurePickYears"`
	DeclareThreshold int     `json:"declareThreshold"`
	IntlExpiryWeeks  int     `json:"intlExpiryWeeks"`
	ProspectCount    int     `json:"prospectCount"`
	FreeAgentCount   int     `json:"freeAgentCount"`
	CPUTradeChance   float64 `json:"cpuTradeChance"`
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		SeasonWeeks:      20,
		HoursPerWeek:     25,
		HoursBankMax:     60,
		SalaryCap:        gen.DefaultCap,
		RosterMin:        12,
		RosterMax:        15,
		DraftRounds:      2,
		FuturePickYears:  4,
		DeclareThreshold: 75,
		IntlExpiryWeeks:  3,
		ProspectCount:    100,
		FreeAgentCount:   80,
		CPUTradeChance:   0.20,
	}
}

// Hours is the weekly scouting/travel time budget. Unspent available hours
// roll into the bank (clamped) at each week advance.
type Hours struct {
	Available int `json:"available"`
	Banked    int `json:"banked"`
	BankMax   int `json:"bankMax"`
}

// Scouting tracks both prospect pools and the user's scouting progress.
type Scouting struct {
	Domestic           []*core.Prospect `json:"domestic"`
	Intl               []*core.Prospect `json:"intl"`
	ScoutedDomesticIDs []string         `json:"scoutedDomesticIds"`
	ScoutedIntlIDs     []string         `json:"scoutedIntlIds"`
	IntlLocation       string           `json:"intlLocation,omitempty"`
	IntlFoundWeek      map[string]int   `json:"intlFoundWeek"`
}

// Offseason holds the sub-state that only exists between seasons.
type Offseason struct {
	FreeAgents []*core.FreeAgent `json:"freeAgents"`
	Expiring   []*core.FreeAgent `json:"expiring"`
	Draft      *DraftState       `json:"draft,omitempty"`
}

// Notice is one inbox entry. Newest first.
type Notice struct {
	ID   string    `json:"id"`
	Year int       `json:"year"`
	Week int       `json:"week"`
	Msg  string    `json:"msg"`
	At   time.Time `json:"at"`
}

// SeasonRecord is one line of franchise history, written when a champion is
// crowned. Append-only.
type SeasonRecord struct {
	Year         int    `json:"year"`
	ChampionID   string `json:"championId"`
	ChampionName string `json:"championName"`
	UserFinish   string `json:"userFinish"`
	UserWins     int    `json:"userWins"`
	UserLosses   int    `json:"userLosses"`
	MVPName      string `json:"mvpName"`
	MVPTeam      string `json:"mvpTeam"`
}

// Meta identifies a save.
type Meta struct {
	Seed      string    `json:"seed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the root aggregate: one running franchise. All engine
// operations are methods on it and mutate it in place; a failed precondition
// never leaves the structure in an invalid shape.
type Session struct {
	Version    int                  `json:"version"`
	Meta       Meta                 `json:"meta"`
	Rules      Rules                `json:"rules"`
	Year       int                  `json:"year"`
	Phase      Phase                `json:"phase"`
	Week       int                  `json:"week"`
	SeasonDone bool                 `json:"seasonDone"`
	Hours      Hours                `json:"hours"`
	League     *core.League         `json:"league"`
	Schedule   [][]Matchup          `json:"schedule"`
	UserTeamID string               `json:"userTeamId"`
	Scouting   Scouting             `json:"scouting"`
	Playoffs   *Bracket             `json:"playoffs,omitempty"`
	Offseason  *Offseason           `json:"offseason,omitempty"`
	Inbox      []Notice             `json:"inbox"`
	History    []SeasonRecord       `json:"history"`
	Retired    []core.RetiredPlayer `json:"retiredPlayers"`

	// ambient is the non-reproducible randomness source for gameplay flavor:
	// game variance, CPU trade and offer rolls. Seeded generation never goes
	// through it. Injectable for tests; not serialized.
	ambient *rand.Rand
}

// SaveVersion is the current save schema version. Bump it together with a
// new migration step in migrate.go.
const SaveVersion = 3

// New creates a fresh franchise: league, all 32 rosters, four years of
// future picks per team, the weekly schedule, scouting pools and a full hour
// budget, at phase REGULAR week 1.
func New(rules Rules, seed string, userTeamIndex int) *Session {
	s := &Session{
		Version: SaveVersion,
		Meta:    Meta{Seed: seed, CreatedAt: time.Now()},
		Rules:   rules,
		Year:    gen.BaseYear,
		Phase:   PhaseRegular,
		Week:    1,
		Hours: Hours{
			Available: rules.HoursPerWeek,
			BankMax:   rules.HoursBankMax,
		},
		League:  gen.League(seed),
		Inbox:   []Notice{},
		History: []SeasonRecord{},
		Retired: []core.RetiredPlayer{},
	}

	for _, t := range s.League.Teams {
		t.Cap.Cap = rules.SalaryCap
		t.Roster = gen.Roster(t.Name, t.Rating, s.Year, seed)
		t.RecalcPayroll()
		t.RecalcRating()
		s.grantFuturePicks(t)
		autoDistributeMinutes(t)
	}

	if userTeamIndex < 0 || userTeamIndex >= len(s.League.Teams) {
		userTeamIndex = 0
	}
	s.UserTeamID = s.League.Teams[userTeamIndex].ID

	s.Schedule = BuildSchedule(s.League, s.Year, seed, rules.SeasonWeeks)
	s.resetScoutingPools()

	return s
}

// grantFuturePicks seeds a team's pick ledger with its own picks for the
// current year plus the following FuturePickYears-1.
func (s *Session) grantFuturePicks(t *core.Team) {
	for y := s.Year; y < s.Year+s.Rules.FuturePickYears; y++ {
		for round := 1; round <= s.Rules.DraftRounds; round++ {
			t.Assets.Picks = append(t.Assets.Picks, core.DraftPick{
				ID:              pickID(t.ID, y, round),
				OriginalOwnerID: t.ID,
				Year:            y,
				Round:           round,
			})
		}
	}
}

// resetScoutingPools regenerates both prospect pools for the current year.
func (s *Session) resetScoutingPools() {
	seed := s.Meta.Seed
	s.Scouting = Scouting{
		Domestic:           gen.DomesticProspects(s.Year, s.Rules.ProspectCount, seed+"_ncaa"),
		Intl:               gen.InternationalProspects(s.Year, s.Rules.ProspectCount, seed+"_intl"),
		ScoutedDomesticIDs: []string{},
		ScoutedIntlIDs:     []string{},
		IntlFoundWeek:      map[string]int{},
	}
}

// UserTeam returns the user-controlled team.
func (s *Session) UserTeam() *core.Team {
	return s.League.Team(s.UserTeamID)
}

// CanTransition reports whether moving to the given phase is legal from the
// current one.
func (s *Session) CanTransition(next Phase) bool {
	return allowedNext[s.Phase] == next
}

// rand returns the ambient randomness source, lazily seeding it from the
// clock if the caller never injected one.
func (s *Session) rand() *rand.Rand {
	if s.ambient == nil {
		s.ambient = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.ambient
}

// SetAmbient injects the gameplay randomness source. Tests use a fixed seed
// here to make variance reproducible without touching the generation streams.
func (s *Session) SetAmbient(r *rand.Rand) {
	s.ambient = r
}

// SeasonOver reports whether the regular season has played out to its final
// week and the playoffs can start.
func (s *Session) SeasonOver() bool {
	return s.Phase == PhaseRegular && s.SeasonDone
}
