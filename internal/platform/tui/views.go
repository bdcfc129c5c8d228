package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/franchise"
)

// listLen reports how many rows the active screen's cursor can traverse.
func (m Model) listLen() int {
	s := m.session
	switch m.scr {
	case screenRoster:
		return len(s.UserTeam().Roster)
	case screenScouting:
		return len(s.Scouting.Domestic) + len(s.DiscoveredIntl())
	case screenMarket:
		return len(m.marketList())
	case screenDraft:
		return len(s.DraftBoard())
	case screenInbox:
		return len(s.Inbox)
	default:
		return 0
	}
}

// window returns the [start, end) slice bounds that keep the cursor visible
// inside a fixed-size viewport.
func window(total, cursor, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

// rows per screen before scrolling kicks in.
const viewRows = 14

// chrome wraps a screen body with the shared title bar, tabs, status line
// and help footer.
func (m Model) chrome(body string) string {
	s := m.session
	user := s.UserTeam()

	title := titleStyle.Render(fmt.Sprintf(" COURTSIDE  %s  %d ", user.Name, s.Year))
	clock := dimStyle.Render(fmt.Sprintf("  %s · week %d/%d · %dh (+%d banked) · %d-%d",
		s.Phase, s.Week, s.Rules.SeasonWeeks,
		s.Hours.Available, s.Hours.Banked, user.Wins, user.Losses))

	var tabs []string
	for i, name := range screenNames {
		if screen(i) == m.scr {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}

	var b strings.Builder
	b.WriteString(title + clock + "\n")
	b.WriteString(strings.Join(tabs, "") + "\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewDashboard() string {
	s := m.session
	user := s.UserTeam()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", user.Name, user.Conference)) + "\n")
	b.WriteString(fmt.Sprintf("Rating %d · Record %d-%d · Payroll %.1fM / %.1fM\n\n",
		user.Rating, user.Wins, user.Losses, user.Cap.Payroll, user.Cap.Cap))

	b.WriteString(headerStyle.Render("Next") + "\n")
	switch {
	case s.Phase == franchise.PhaseRegular && s.SeasonOver():
		b.WriteString("Regular season complete. Space starts the playoffs.\n")
	case s.Phase == franchise.PhaseRegular:
		b.WriteString(fmt.Sprintf("Space simulates week %d.\n", s.Week))
	case s.Phase == franchise.PhasePlayoffs:
		b.WriteString("Space simulates the next playoff round.\n")
	case s.Phase == franchise.PhaseFreeAgency:
		b.WriteString("Sign players on the Market screen; space closes free agency.\n")
	case s.Phase == franchise.PhaseDraft:
		if s.Offseason != nil && s.Offseason.Draft != nil && s.Offseason.Draft.Done {
			b.WriteString("Draft complete. Space starts the new season.\n")
		} else if s.UserOnClock() {
			b.WriteString("You are on the clock: pick on the Draft screen.\n")
		} else {
			b.WriteString("Space runs the next CPU pick.\n")
		}
	}

	b.WriteString("\n" + headerStyle.Render("Latest news") + "\n")
	for i, n := range s.Inbox {
		if i >= 5 {
			break
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("y%d w%-2d ", n.Year, n.Week)) + n.Msg + "\n")
	}
	if len(s.Inbox) == 0 {
		b.WriteString(dimStyle.Render("Nothing yet.") + "\n")
	}
	return b.String()
}

func (m Model) viewRoster() string {
	user := m.session.UserTeam()
	cur := m.cursor[m.scr]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %-3s %3s %4s %4s %4s  %5s  %4s %6s", "Player", "Pos", "Age", "OVR", "Off", "Def", "Min", "PPG", "Deal")) + "\n")

	start, end := window(len(user.Roster), cur, viewRows)
	for i := start; i < end; i++ {
		p := user.Roster[i]
		deal := "-"
		if p.Contract != nil {
			deal = fmt.Sprintf("%.1fx%d", p.Contract.Salary, p.Contract.Years)
		}
		starter := " "
		if p.Rotation.IsStarter {
			starter = "*"
		}
		line := fmt.Sprintf("%-22s %-3s %3d %4d %4d %4d  %4d%s  %4.1f %6s",
			p.Name, p.Pos, p.Age, p.OVR, p.Off, p.Def, p.Rotation.Minutes, starter, p.PPG(), deal)
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter: rebuild depth chart around your best eight") + "\n")
	return b.String()
}

func (m Model) viewStandings() string {
	var b strings.Builder
	for _, conf := range []core.Conference{core.East, core.West} {
		teams := m.session.League.ConferenceTeams(conf)
		sort.SliceStable(teams, func(i, j int) bool {
			if teams[i].Wins != teams[j].Wins {
				return teams[i].Wins > teams[j].Wins
			}
			return teams[i].Losses < teams[j].Losses
		})

		b.WriteString(headerStyle.Render(string(conf)) + "\n")
		for i, t := range teams {
			line := fmt.Sprintf("%2d. %-24s %3d-%-3d  rating %d", i+1, t.Name, t.Wins, t.Losses, t.Rating)
			if t.ID == m.session.UserTeamID {
				line = goodStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewPlayoffs() string {
	b := m.session.Playoffs
	if b == nil {
		return dimStyle.Render("No bracket yet. Finish the regular season first.")
	}

	var sb strings.Builder
	for _, round := range b.Rounds {
		sb.WriteString(headerStyle.Render(round.Name) + "\n")
		if round.Finals != nil {
			sb.WriteString(m.seriesLine(round.Finals) + "\n")
			continue
		}
		for _, sr := range round.East {
			sb.WriteString("E  " + m.seriesLine(sr) + "\n")
		}
		for _, sr := range round.West {
			sb.WriteString("W  " + m.seriesLine(sr) + "\n")
		}
		sb.WriteString("\n")
	}
	if b.ChampionTeamID != "" {
		if t := m.session.League.Team(b.ChampionTeamID); t != nil {
			sb.WriteString(goodStyle.Render(fmt.Sprintf("Champions: %s", t.Name)) + "\n")
		}
	}
	return sb.String()
}

func (m Model) seriesLine(sr *franchise.Series) string {
	name := func(id string) string {
		if t := m.session.League.Team(id); t != nil {
			return t.Name
		}
		return id
	}
	line := fmt.Sprintf("%-24s %d - %d %s", name(sr.A), sr.AWins, sr.BWins, name(sr.B))
	if sr.A == m.session.UserTeamID || sr.B == m.session.UserTeamID {
		return goodStyle.Render(line)
	}
	return line
}

func (m Model) viewInbox() string {
	inbox := m.session.Inbox
	if len(inbox) == 0 {
		return dimStyle.Render("Inbox empty.")
	}
	cur := m.cursor[m.scr]

	var b strings.Builder
	start, end := window(len(inbox), cur, viewRows+4)
	for i := start; i < end; i++ {
		n := inbox[i]
		line := fmt.Sprintf("y%d w%-2d  %s", n.Year, n.Week, n.Msg)
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewHistory() string {
	hist := m.session.History
	if len(hist) == 0 {
		return dimStyle.Render("No completed seasons yet.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-24s %-13s %-8s %s", "Year", "Champion", "Your finish", "Record", "MVP")) + "\n")
	for i := len(hist) - 1; i >= 0; i-- {
		r := hist[i]
		b.WriteString(fmt.Sprintf("%-6d %-24s %-13s %3d-%-4d %s (%s)\n",
			r.Year, r.ChampionName, r.UserFinish, r.UserWins, r.UserLosses, r.MVPName, r.MVPTeam))
	}

	if len(m.session.Retired) > 0 {
		b.WriteString("\n" + headerStyle.Render("Recent retirements") + "\n")
		retired := m.session.Retired
		for i := len(retired) - 1; i >= 0 && i >= len(retired)-5; i-- {
			r := retired[i]
			b.WriteString(dimStyle.Render(fmt.Sprintf("%d  %s (%s, %d OVR)", r.RetiredYear, r.Player.Name, r.LastTeam, r.Player.OVR)) + "\n")
		}
	}
	return b.String()
}
