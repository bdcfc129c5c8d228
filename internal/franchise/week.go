package franchise

// AdvanceWeek simulates the current week's scheduled games, updates records,
// stats and happiness, rolls the hour budget, runs the weekly CPU trade
// check and prunes expired international prospects. The week counter clamps
// at the season length; the phase never changes here — starting the
// playoffs is an explicit separate action.
func (s *Session) AdvanceWeek() error {
	if s.Phase != PhaseRegular {
		return ErrWrongPhase
	}
	if s.SeasonDone {
		return nil
	}

	s.simulateWeekGames()

	s.rollHours()
	s.maybeCPUTrade()

	if s.Week < s.Rules.SeasonWeeks {
		s.Week++
	} else {
		s.SeasonDone = true
		s.notify("End of regular season. The playoff bracket is ready.")
	}

	// Expiry is measured against the week players wake up in, so the prune
	// runs after the counter moves.
	s.pruneExpiredIntl()
	return nil
}

// simulateWeekGames plays every matchup in the current week bucket.
func (s *Session) simulateWeekGames() {
	idx := s.Week - 1
	if idx < 0 || idx >= len(s.Schedule) {
		return
	}

	for _, m := range s.Schedule[idx] {
		home := s.League.Team(m.HomeID)
		away := s.League.Team(m.AwayID)
		if home == nil || away == nil {
			continue
		}

		homeScore, awayScore := s.simulateGame(home, away)

		s.accrueGameStats(home)
		s.accrueGameStats(away)

		if homeScore > awayScore {
			home.Wins++
			away.Losses++
			adjustHappiness(home, 1)
			adjustHappiness(away, -1)
		} else {
			away.Wins++
			home.Losses++
			adjustHappiness(away, 1)
			adjustHappiness(home, -1)
		}
	}
}

// pruneExpiredIntl removes discovered-but-undeclared international prospects
// whose found-week window has lapsed. Scouting effort decays: a prospect
// nobody converts goes back underground.
func (s *Session) pruneExpiredIntl() {
	for _, p := range s.Scouting.Intl {
		if !p.Discovered || p.Declared {
			continue
		}
		found, ok := s.Scouting.IntlFoundWeek[p.ID]
		if !ok {
			continue
		}
		if s.Week-found >= s.Rules.IntlExpiryWeeks {
			p.Discovered = false
			delete(s.Scouting.IntlFoundWeek, p.ID)
		}
	}
}
