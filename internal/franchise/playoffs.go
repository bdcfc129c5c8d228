package franchise

import (
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
)

// Series is one best-of-7. First to four wins takes it.
type Series struct {
	A      string `json:"a"`
	B      string `json:"b"`
	AWins  int    `json:"aWins"`
	BWins  int    `json:"bWins"`
	Done   bool   `json:"done"`
	Winner string `json:"winner,omitempty"`
}

// BracketRound is one playoff round: per-conference series until the Finals,
// which is a single cross-conference series.
type BracketRound struct {
	Name   string    `json:"name"`
	East   []*Series `json:"east,omitempty"`
	West   []*Series `json:"west,omitempty"`
	Finals *Series   `json:"finals,omitempty"`
}

// Bracket is the playoff state. Rounds are appended as the tournament
// progresses; Round is 1-based and tops out at 4 (the Finals).
type Bracket struct {
	Round          int             `json:"round"`
	Rounds         []*BracketRound `json:"rounds"`
	ChampionTeamID string          `json:"championTeamId,omitempty"`
}

var roundNames = []string{"Round 1", "Conference Semifinals", "Conference Finals", "Finals"}

// homePattern marks which games of a best-of-7 the higher seed hosts
// (2-2-1-1-1: games 1, 2, 5 and 7).
var homePattern = [7]bool{true, true, false, false, true, false, true}

// StartPlayoffs seeds the bracket from final regular-season standings and
// flips the phase. The top 8 per conference qualify, ordered by wins,
// fewest losses, then rating; round 1 pairs 1v8, 4v5, 3v6, 2v7.
func (s *Session) StartPlayoffs() error {
	if s.Phase != PhaseRegular {
		return ErrWrongPhase
	}
	if !s.SeasonDone {
		return ErrSeasonNotOver
	}

	east := s.conferenceSeeds(core.East)
	west := s.conferenceSeeds(core.West)
	if len(east) < 8 || len(west) < 8 {
		return ErrSeasonNotOver
	}

	round1 := &BracketRound{
		Name: roundNames[0],
		East: pairSeeds(east),
		West: pairSeeds(west),
	}

	s.Playoffs = &Bracket{Round: 1, Rounds: []*BracketRound{round1}}
	s.Phase = PhasePlayoffs
	s.notify("The playoffs have begun.")
	return nil
}

// conferenceSeeds returns a conference's team ids in seed order.
func (s *Session) conferenceSeeds(c core.Conference) []string {
	teams := s.League.ConferenceTeams(c)
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Wins != teams[j].Wins {
			return teams[i].Wins > teams[j].Wins
		}
		if teams[i].Losses != teams[j].Losses {
			return teams[i].Losses < teams[j].Losses
		}
		return teams[i].Rating > teams[j].Rating
	})

	n := len(teams)
	if n > 8 {
		n = 8
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = teams[i].ID
	}
	return ids
}

// pairSeeds builds round-1 series in bracket order so adjacent winners meet
// next round: (1,8), (4,5), (3,6), (2,7).
func pairSeeds(seeds []string) []*Series {
	order := [4][2]int{{0, 7}, {3, 4}, {2, 5}, {1, 6}}
	out := make([]*Series, 0, 4)
	for _, pair := range order {
		out = append(out, &Series{A: seeds[pair[0]], B: seeds[pair[1]]})
	}
	return out
}

// SimPlayoffRound simulates every unfinished series in the current round to
// completion, game by game, then builds the next round. When the Finals
// wrap, the champion is recorded, end-of-season processing runs, and the
// phase moves to free agency.
func (s *Session) SimPlayoffRound() error {
	if s.Phase != PhasePlayoffs {
		return ErrWrongPhase
	}
	b := s.Playoffs
	if b == nil || b.ChampionTeamID != "" {
		return ErrWrongPhase
	}

	current := b.Rounds[len(b.Rounds)-1]
	for _, series := range roundSeries(current) {
		s.simSeries(series)
	}

	if current.Finals != nil {
		b.ChampionTeamID = current.Finals.Winner
		s.finishSeason()
		return nil
	}

	s.appendNextRound()
	return nil
}

// roundSeries flattens a round into one series list.
func roundSeries(r *BracketRound) []*Series {
	if r.Finals != nil {
		return []*Series{r.Finals}
	}
	out := make([]*Series, 0, len(r.East)+len(r.West))
	out = append(out, r.East...)
	out = append(out, r.West...)
	return out
}

// simSeries plays a best-of-7 game by game. The series' A side is the
// higher seed and hosts per the 2-2-1-1-1 pattern.
func (s *Session) simSeries(series *Series) {
	if series.Done {
		return
	}
	teamA := s.League.Team(series.A)
	teamB := s.League.Team(series.B)
	if teamA == nil || teamB == nil {
		series.Done = true
		series.Winner = series.A
		return
	}

	for game := series.AWins + series.BWins; series.AWins < 4 && series.BWins < 4; game++ {
		var aScore, bScore int
		if homePattern[game] {
			aScore, bScore = s.simulateGame(teamA, teamB)
		} else {
			bScore, aScore = s.simulateGame(teamB, teamA)
		}
		if aScore > bScore {
			series.AWins++
		} else {
			series.BWins++
		}
	}

	series.Done = true
	if series.AWins == 4 {
		series.Winner = series.A
	} else {
		series.Winner = series.B
	}
}

// appendNextRound pairs adjacent winners of the just-finished round. After
// the conference finals the two champions meet cross-conference.
func (s *Session) appendNextRound() {
	b := s.Playoffs
	prev := b.Rounds[len(b.Rounds)-1]

	if len(prev.East) == 1 && len(prev.West) == 1 {
		b.Round++
		b.Rounds = append(b.Rounds, &BracketRound{
			Name:   roundNames[3],
			Finals: &Series{A: prev.East[0].Winner, B: prev.West[0].Winner},
		})
		return
	}

	next := &BracketRound{Name: roundNames[b.Round]}
	next.East = pairWinners(prev.East)
	next.West = pairWinners(prev.West)
	b.Round++
	b.Rounds = append(b.Rounds, next)
}

func pairWinners(prev []*Series) []*Series {
	out := make([]*Series, 0, len(prev)/2)
	for i := 0; i+1 < len(prev); i += 2 {
		out = append(out, &Series{A: prev[i].Winner, B: prev[i+1].Winner})
	}
	return out
}

// Finish labels for the user's playoff run.
const (
	FinishMissed     = "Didn't Make"
	FinishRound1     = "Round 1"
	FinishSemis      = "Semis"
	FinishConfFinals = "Conf. Finals"
	FinishFinals     = "Finals"
	FinishChampion   = "Champion"
)

// userFinish classifies the user's season by walking their actual bracket
// path.
func (s *Session) userFinish() string {
	b := s.Playoffs
	if b == nil {
		return FinishMissed
	}
	if b.ChampionTeamID == s.UserTeamID {
		return FinishChampion
	}

	finish := FinishMissed
	labels := []string{FinishRound1, FinishSemis, FinishConfFinals, FinishFinals}
	for i, round := range b.Rounds {
		for _, series := range roundSeries(round) {
			if series.A == s.UserTeamID || series.B == s.UserTeamID {
				finish = labels[min(i, len(labels)-1)]
			}
		}
	}
	return finish
}
