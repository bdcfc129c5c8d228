package franchise

import "github.com/vovakirdan/courtside/internal/core"

// SpendHours deducts n hours, draining Available first and then Banked.
// This is a best-effort drain: if the combined pools cannot cover n, both
// are emptied as far as they go and ErrNotEnoughHours is returned. The
// partial drain on failure is deliberate, matching the game's long-standing
// behavior; neither pool ever goes negative.
func (s *Session) SpendHours(n int) error {
	if n <= 0 {
		return nil
	}

	need := n

	take := min(s.Hours.Available, need)
	s.Hours.Available -= take
	need -= take

	if need > 0 {
		take = min(s.Hours.Banked, need)
		s.Hours.Banked -= take
		need -= take
	}

	if need > 0 {
		return ErrNotEnoughHours
	}
	return nil
}

// TotalHours is the combined spendable budget.
func (s *Session) TotalHours() int {
	return s.Hours.Available + s.Hours.Banked
}

// rollHours performs the weekly reset: leftover available hours bank up to
// the cap, then the weekly allowance refills.
func (s *Session) rollHours() {
	s.Hours.Banked = core.Clamp(s.Hours.Banked+s.Hours.Available, 0, s.Hours.BankMax)
	s.Hours.Available = s.Rules.HoursPerWeek
}
