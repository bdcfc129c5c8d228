package franchise

import (
	"sort"

	"github.com/vovakirdan/courtside/internal/core"
)

// Minute bands for the auto-distributed depth chart. Five starters, three
// bench, two reserves in the rotation; everyone else rides the pine.
const (
	starterMinutes = 32
	benchMinutes   = 18
	reserveMinutes = 12
)

// autoDistributeMinutes rebuilds a team's rotation from scratch: best eight
// to ten players by OVR get minutes, top five start. Run after any roster
// change so simulated output always reflects the current roster.
func autoDistributeMinutes(t *core.Team) {
	sorted := make([]*core.Player, len(t.Roster))
	copy(sorted, t.Roster)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].OVR > sorted[j].OVR })

	for i, p := range sorted {
		switch {
		case i < 5:
			p.Rotation = core.Rotation{Minutes: starterMinutes, IsStarter: true}
		case i < 8:
			p.Rotation = core.Rotation{Minutes: benchMinutes}
		case i < 10:
			p.Rotation = core.Rotation{Minutes: reserveMinutes}
		default:
			p.Rotation = core.Rotation{}
		}
	}
}

// AutoDepthChart redistributes minutes for the given team. Exposed for the
// depth-chart screen's "reset" action.
func (s *Session) AutoDepthChart(teamID string) error {
	t := s.League.Team(teamID)
	if t == nil {
		return ErrUnknownTeam
	}
	autoDistributeMinutes(t)
	return nil
}

// SetMinutes lets the user hand-tune one player's minutes, clamped to
// [0, 48]. Starter status follows whether the player is in the top five
// minute earners afterward.
func (s *Session) SetMinutes(teamID, playerID string, minutes int) error {
	t := s.League.Team(teamID)
	if t == nil {
		return ErrUnknownTeam
	}
	p := t.FindPlayer(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}

	p.Rotation.Minutes = core.Clamp(minutes, 0, 48)

	sorted := make([]*core.Player, len(t.Roster))
	copy(sorted, t.Roster)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rotation.Minutes > sorted[j].Rotation.Minutes
	})
	for i, pl := range sorted {
		pl.Rotation.IsStarter = i < 5 && pl.Rotation.Minutes > 0
	}
	return nil
}
