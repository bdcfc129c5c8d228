package franchise

import (
	"sort"
	"testing"

	"github.com/vovakirdan/courtside/internal/core"
)

// playToOffseason runs a franchise through the season and playoffs until
// free agency opens.
func playToOffseason(t *testing.T, s *Session) {
	t.Helper()
	playSeason(t, s)
	if err := s.StartPlayoffs(); err != nil {
		t.Fatalf("StartPlayoffs: %v", err)
	}
	for s.Phase == PhasePlayoffs {
		if err := s.SimPlayoffRound(); err != nil {
			t.Fatalf("SimPlayoffRound: %v", err)
		}
	}
}

// expectedSeeds reproduces the seeding order outside the engine.
func expectedSeeds(s *Session, c core.Conference) []string {
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
	ids := make([]string, 8)
	for i := 0; i < 8; i++ {
		ids[i] = teams[i].ID
	}
	return ids
}

func TestStartPlayoffsSeeding(t *testing.T) {
	s := newTestSession(t, "seeding")
	playSeason(t, s)

	if err := s.StartPlayoffs(); err != nil {
		t.Fatalf("StartPlayoffs: %v", err)
	}
	if s.Phase != PhasePlayoffs {
		t.Fatalf("phase = %s, want PLAYOFFS", s.Phase)
	}

	round1 := s.Playoffs.Rounds[0]
	for name, got := range map[string][]*Series{"east": round1.East, "west": round1.West} {
		if len(got) != 4 {
			t.Fatalf("%s round 1 has %d series, want 4", name, len(got))
		}
	}

	// Bracket order: (1,8), (4,5), (3,6), (2,7) so that 1's half meets 4/5.
	for _, tc := range []struct {
		conf   core.Conference
		series []*Series
	}{
		{core.East, round1.East},
		{core.West, round1.West},
	} {
		seeds := expectedSeeds(s, tc.conf)
		want := [4][2]string{
			{seeds[0], seeds[7]},
			{seeds[3], seeds[4]},
			{seeds[2], seeds[5]},
			{seeds[1], seeds[6]},
		}
		for i, sr := range tc.series {
			if sr.A != want[i][0] || sr.B != want[i][1] {
				t.Errorf("%s series %d = (%s,%s), want (%s,%s)",
					tc.conf, i, sr.A, sr.B, want[i][0], want[i][1])
			}
		}
	}
}

func TestSeriesShape(t *testing.T) {
	s := newTestSession(t, "series")
	playSeason(t, s)
	if err := s.StartPlayoffs(); err != nil {
		t.Fatal(err)
	}
	if err := s.SimPlayoffRound(); err != nil {
		t.Fatal(err)
	}

	round1 := s.Playoffs.Rounds[0]
	for _, sr := range roundSeries(round1) {
		if !sr.Done || sr.Winner == "" {
			t.Fatalf("series (%s vs %s) not resolved", sr.A, sr.B)
		}
		winner, loser := sr.AWins, sr.BWins
		if loser > winner {
			winner, loser = loser, winner
		}
		if winner != 4 {
			t.Errorf("series winner took %d games, want 4", winner)
		}
		if loser < 0 || loser > 3 {
			t.Errorf("series loser took %d games, want 0-3", loser)
		}
	}

	if len(s.Playoffs.Rounds) != 2 {
		t.Fatalf("rounds after one sim = %d, want 2", len(s.Playoffs.Rounds))
	}
	semis := s.Playoffs.Rounds[1]
	if len(semis.East) != 2 || len(semis.West) != 2 {
		t.Fatalf("semifinal series = %d/%d, want 2/2", len(semis.East), len(semis.West))
	}
}

func TestPlayoffsCrownChampion(t *testing.T) {
	s := newTestSession(t, "champion")
	playToOffseason(t, s)

	champ := s.Playoffs.ChampionTeamID
	if champ == "" {
		t.Fatal("no champion after the Finals")
	}
	if s.League.Team(champ) == nil {
		t.Fatalf("champion %q is not a league team", champ)
	}
	if got := len(s.Playoffs.Rounds); got != 4 {
		t.Fatalf("bracket rounds = %d, want 4", got)
	}
	if s.Phase != PhaseFreeAgency {
		t.Fatalf("phase = %s, want FREE_AGENCY after the Finals", s.Phase)
	}

	if len(s.History) != 1 {
		t.Fatalf("history entries = %d, want 1", len(s.History))
	}
	rec := s.History[0]
	if rec.ChampionID != champ || rec.ChampionName == "" {
		t.Errorf("history champion = %q/%q, want id %q with a name", rec.ChampionID, rec.ChampionName, champ)
	}
	if rec.UserFinish == "" {
		t.Error("history is missing the user's finish")
	}
	if rec.MVPName == "" {
		t.Error("history is missing the MVP")
	}
}

func TestStartPlayoffsRequiresFinishedSeason(t *testing.T) {
	s := newTestSession(t, "early")
	if err := s.AdvanceWeek(); err != nil {
		t.Fatal(err)
	}
	if err := s.StartPlayoffs(); err != ErrSeasonNotOver {
		t.Fatalf("err = %v, want ErrSeasonNotOver", err)
	}
	if s.Playoffs != nil {
		t.Fatal("rejected StartPlayoffs built a bracket")
	}
}
