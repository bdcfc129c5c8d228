package core

import "sort"

// Conference splits the league into East and West.
type Conference string

const (
	East Conference = "EAST"
	West Conference = "WEST"
)

// DraftPick is a tradeable future pick. OriginalOwnerID never changes; the
// pick is re-homed between teams' asset lists on trade and consumed or pruned
// at the draft.
type DraftPick struct {
	ID              string `json:"id"`
	OriginalOwnerID string `json:"originalOwnerId"`
	Year            int    `json:"year"`
	Round           int    `json:"round"`
}

// TeamCap is the salary-cap snapshot for a team. Payroll is derived from the
// roster and must be recomputed after any roster or contract change.
type TeamCap struct {
	Cap     float64 `json:"cap"`
	Payroll float64 `json:"payroll"`
}

// TeamAssets holds the non-player assets a team owns.
type TeamAssets struct {
	Picks []DraftPick `json:"picks"`
}

// Team owns its roster exclusively; moving a player between teams is always
// remove-from-one/add-to-other, never a shared reference.
type Team struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Conference Conference `json:"conference"`
	Rating     int        `json:"rating"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	Cap        TeamCap    `json:"cap"`
	Roster     []*Player  `json:"roster"`
	Assets     TeamAssets `json:"assets"`
}

// RecalcPayroll re-derives payroll as the sum of roster salaries.
func (t *Team) RecalcPayroll() {
	total := 0.0
	for _, p := range t.Roster {
		if p.Contract != nil {
			total += p.Contract.Salary
		}
	}
	t.Cap.Payroll = Round2(total)
}

// RecalcRating re-derives the team rating as the mean OVR of the top 8
// roster players.
func (t *Team) RecalcRating() {
	if len(t.Roster) == 0 {
		t.Rating = 0
		return
	}
	ovrs := make([]int, len(t.Roster))
	for i, p := range t.Roster {
		ovrs[i] = p.OVR
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ovrs)))
	n := len(ovrs)
	if n > 8 {
		n = 8
	}
	sum := 0
	for _, v := range ovrs[:n] {
		sum += v
	}
	t.Rating = sum / n
}

// FindPlayer returns the rostered player with the given id, or nil.
func (t *Team) FindPlayer(id string) *Player {
	for _, p := range t.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlayer detaches the player with the given id from the roster and
// returns it, or nil if not rostered.
func (t *Team) RemovePlayer(id string) *Player {
	for i, p := range t.Roster {
		if p.ID == id {
			t.Roster = append(t.Roster[:i], t.Roster[i+1:]...)
			return p
		}
	}
	return nil
}

// RemovePick detaches the pick with the given id and returns it, or nil.
func (t *Team) RemovePick(id string) *DraftPick {
	for i, pk := range t.Assets.Picks {
		if pk.ID == id {
			out := pk
			t.Assets.Picks = append(t.Assets.Picks[:i], t.Assets.Picks[i+1:]...)
			return &out
		}
	}
	return nil
}

// League is the fixed set of 32 teams.
type League struct {
	ID    string  `json:"id"`
	Seed  string  `json:"seed"`
	Teams []*Team `json:"teams"`
}

// Team returns the team with the given id, or nil.
func (l *League) Team(id string) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ConferenceTeams returns all teams in the given conference.
func (l *League) ConferenceTeams(c Conference) []*Team {
	var out []*Team
	for _, t := range l.Teams {
		if t.Conference == c {
			out = append(out, t)
		}
	}
	return out
}
