package franchise

import "testing"

func TestSpendHoursDrainsAvailableFirst(t *testing.T) {
	s := newTestSession(t, "hours")
	s.Hours = Hours{Available: 25, Banked: 10, BankMax: 60}

	if err := s.SpendHours(10); err != nil {
		t.Fatalf("SpendHours(10): %v", err)
	}
	if s.Hours.Available != 15 || s.Hours.Banked != 10 {
		t.Fatalf("after spend 10: available=%d banked=%d, want 15/10", s.Hours.Available, s.Hours.Banked)
	}

	if err := s.SpendHours(20); err != nil {
		t.Fatalf("SpendHours(20): %v", err)
	}
	if s.Hours.Available != 0 || s.Hours.Banked != 5 {
		t.Fatalf("after spend 20: available=%d banked=%d, want 0/5", s.Hours.Available, s.Hours.Banked)
	}
}

func TestSpendHoursPartialDrainOnShortfall(t *testing.T) {
	s := newTestSession(t, "hours")
	s.Hours = Hours{Available: 5, Banked: 3, BankMax: 60}

	if err := s.SpendHours(20); err != ErrNotEnoughHours {
		t.Fatalf("err = %v, want ErrNotEnoughHours", err)
	}
	// A failed spend still drains what was there; pools never go negative.
	if s.Hours.Available != 0 || s.Hours.Banked != 0 {
		t.Fatalf("after failed spend: available=%d banked=%d, want 0/0", s.Hours.Available, s.Hours.Banked)
	}
}

func TestSpendHoursZeroAndNegative(t *testing.T) {
	s := newTestSession(t, "hours")
	s.Hours = Hours{Available: 7, Banked: 2, BankMax: 60}

	if err := s.SpendHours(0); err != nil {
		t.Fatalf("SpendHours(0): %v", err)
	}
	if err := s.SpendHours(-4); err != nil {
		t.Fatalf("SpendHours(-4): %v", err)
	}
	if s.Hours.Available != 7 || s.Hours.Banked != 2 {
		t.Fatal("non-positive spend mutated the budget")
	}
}

func TestRollHoursBanksLeftoverUpToCap(t *testing.T) {
	s := newTestSession(t, "hours")
	s.Hours = Hours{Available: 20, Banked: 50, BankMax: 60}

	s.rollHours()

	if s.Hours.Banked != 60 {
		t.Fatalf("banked = %d, want clamp at 60", s.Hours.Banked)
	}
	if s.Hours.Available != s.Rules.HoursPerWeek {
		t.Fatalf("available = %d, want weekly allowance %d", s.Hours.Available, s.Rules.HoursPerWeek)
	}
}

func TestTotalHours(t *testing.T) {
	s := newTestSession(t, "hours")
	s.Hours = Hours{Available: 12, Banked: 8, BankMax: 60}
	if got := s.TotalHours(); got != 20 {
		t.Fatalf("TotalHours = %d, want 20", got)
	}
}
