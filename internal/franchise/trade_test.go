package franchise

import "testing"

func TestExecuteTradeMovesAssets(t *testing.T) {
	s := newTestSession(t, "swap")

	a := s.League.Teams[0]
	b := s.League.Teams[1]
	pa := a.Roster[0]
	pb := b.Roster[0]
	pickA := a.Assets.Picks[0]

	err := s.ExecuteTrade(a.ID, b.ID,
		TradePackage{PlayerIDs: []string{pa.ID}, PickIDs: []string{pickA.ID}},
		TradePackage{PlayerIDs: []string{pb.ID}})
	if err != nil {
		t.Fatalf("ExecuteTrade: %v", err)
	}

	if a.FindPlayer(pa.ID) != nil || b.FindPlayer(pa.ID) == nil {
		t.Errorf("%s did not move to team B", pa.Name)
	}
	if b.FindPlayer(pb.ID) != nil || a.FindPlayer(pb.ID) == nil {
		t.Errorf("%s did not move to team A", pb.Name)
	}

	moved := false
	for _, pk := range b.Assets.Picks {
		if pk.ID == pickA.ID {
			moved = true
			if pk.OriginalOwnerID != a.ID {
				t.Error("pick lost its original owner in transit")
			}
		}
	}
	if !moved {
		t.Error("pick did not move to team B")
	}
	for _, pk := range a.Assets.Picks {
		if pk.ID == pickA.ID {
			t.Error("pick duplicated on team A")
		}
	}

	// Payroll tracks the new roster.
	wantA := 0.0
	for _, p := range a.Roster {
		if p.Contract != nil {
			wantA += p.Contract.Salary
		}
	}
	if diff := a.Cap.Payroll - wantA; diff > 0.001 || diff < -0.001 {
		t.Errorf("team A payroll %.2f, want %.2f", a.Cap.Payroll, wantA)
	}
}

func TestExecuteTradeUnknownTeam(t *testing.T) {
	s := newTestSession(t, "swap2")
	if err := s.ExecuteTrade("nope", s.League.Teams[0].ID, TradePackage{}, TradePackage{}); err != ErrUnknownTeam {
		t.Fatalf("err = %v, want ErrUnknownTeam", err)
	}
}

func TestExecuteTradeSkipsForeignAssets(t *testing.T) {
	s := newTestSession(t, "swap3")
	a := s.League.Teams[0]
	b := s.League.Teams[1]
	notAs := b.Roster[0] // belongs to B, claimed as leaving A

	sizeA, sizeB := len(a.Roster), len(b.Roster)
	if err := s.ExecuteTrade(a.ID, b.ID, TradePackage{PlayerIDs: []string{notAs.ID}}, TradePackage{}); err != nil {
		t.Fatalf("ExecuteTrade: %v", err)
	}
	if len(a.Roster) != sizeA || len(b.Roster) != sizeB {
		t.Fatal("trade moved a player the sending team never owned")
	}
}

func TestTradeInterestScale(t *testing.T) {
	s := newTestSession(t, "interest")
	user := s.UserTeam()
	partner := s.League.Teams[3]

	// Find the user's best player and a scrub on the partner roster.
	best := user.Roster[0]
	scrub := partner.Roster[len(partner.Roster)-1]

	lopsided, err := s.TradeInterest(
		TradePackage{PlayerIDs: []string{best.ID}},
		TradePackage{PlayerIDs: []string{scrub.ID}},
		partner.ID)
	if err != nil {
		t.Fatal(err)
	}
	even, err := s.TradeInterest(
		TradePackage{PlayerIDs: []string{best.ID}},
		TradePackage{PlayerIDs: []string{partner.Roster[0].ID}},
		partner.ID)
	if err != nil {
		t.Fatal(err)
	}

	if lopsided <= even {
		t.Errorf("interest for a steal (%d) not above a fair deal (%d)", lopsided, even)
	}
	if lopsided < 0 || lopsided > 100 || even < 0 || even > 100 {
		t.Errorf("interest outside 0-100: %d, %d", lopsided, even)
	}

	if _, err := s.TradeInterest(TradePackage{}, TradePackage{}, "nope"); err != ErrUnknownTeam {
		t.Errorf("unknown partner: err = %v, want ErrUnknownTeam", err)
	}
}

func TestProposeTradeGiftAccepted(t *testing.T) {
	s := newTestSession(t, "gift")
	user := s.UserTeam()
	partner := s.League.Teams[7]

	// Giving away the best player for nothing is always a yes.
	best := user.Roster[0]
	accepted, err := s.ProposeTrade(partner.ID, TradePackage{PlayerIDs: []string{best.ID}}, TradePackage{})
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Fatal("partner refused a free star")
	}
	if user.FindPlayer(best.ID) != nil || partner.FindPlayer(best.ID) == nil {
		t.Error("accepted trade did not execute")
	}
}

func TestPickValueRounds(t *testing.T) {
	s := newTestSession(t, "pickval")
	tm := s.League.Teams[0]

	var r1, r2 int
	for _, pk := range tm.Assets.Picks {
		switch pk.Round {
		case 1:
			r1 = PickValue(pk)
		case 2:
			r2 = PickValue(pk)
		}
	}
	if r1 <= r2 {
		t.Errorf("first-round value %d not above second-round %d", r1, r2)
	}
}
