package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/courtside/internal/core"
	"github.com/vovakirdan/courtside/internal/gen"
)

// viewScouting shows the domestic board on top and the discovered
// international prospects below it, with one cursor across both.
func (m Model) viewScouting() string {
	s := m.session
	cur := m.cursor[m.scr]
	domestic := s.Scouting.Domestic
	intl := s.DiscoveredIntl()

	var b strings.Builder
	loc := "home"
	if s.Scouting.IntlLocation != "" {
		if c := gen.ContinentByKey(s.Scouting.IntlLocation); c != nil {
			loc = c.Name
		}
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Location: %s · t travel · s search abroad · f fly home · r recruit · enter: scout", loc)) + "\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("NCAA board (%d)", len(domestic))) + "\n")
	start, end := window(len(domestic), min(cur, len(domestic)-1), viewRows/2+2)
	for i := start; i < end; i++ {
		line := m.prospectLine(domestic[i])
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Discovered abroad (%d)", len(intl))) + "\n")
	if len(intl) == 0 {
		b.WriteString(dimStyle.Render("Nobody yet. Travel somewhere and search.") + "\n")
	}
	icur := cur - len(domestic)
	istart, iend := window(len(intl), max(icur, 0), viewRows/2)
	for i := istart; i < iend; i++ {
		p := intl[i]
		line := m.prospectLine(p)
		switch {
		case p.Declared:
			line += goodStyle.Render("  declared")
		default:
			line += dimStyle.Render(fmt.Sprintf("  interest %d · %dw left", p.DeclareInterest, s.IntlExpiresIn(p.ID)))
		}
		if i == icur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// prospectLine renders one board row. Unscouted prospects show a grade
// instead of a rating.
func (m Model) prospectLine(p *core.Prospect) string {
	rating := "??"
	if p.Scouted {
		rating = fmt.Sprintf("%2d", p.CurrentOVR)
	}
	origin := p.College
	if origin == "" {
		origin = p.ContinentName
	}
	return fmt.Sprintf("%-22s %-3s %3d  ovr %s  pot %-2s  %s", p.Name, p.Pos, p.Age, rating, p.PotentialGrade, origin)
}

// handleScoutingKey handles the scouting screen's extra keys.
func (m *Model) handleScoutingKey(k string) {
	s := m.session
	switch k {
	case "t":
		next := gen.Continents[1].Key
		if s.Scouting.IntlLocation != "" {
			for i := range gen.Continents {
				if gen.Continents[i].Key == s.Scouting.IntlLocation {
					next = gen.Continents[(i+1)%len(gen.Continents)].Key
					break
				}
			}
		}
		c := gen.ContinentByKey(next)
		if err := s.TravelTo(next); err != nil {
			m.status = friendlyError(err)
			return
		}
		m.status = fmt.Sprintf("Scouting from %s.", c.Name)
		m.save()

	case "f":
		s.LeaveIntl()
		m.status = "Back home."
		m.save()

	case "s":
		found, err := s.SearchIntl()
		if err != nil {
			m.status = friendlyError(err)
			return
		}
		if found == 0 {
			m.status = "The gyms were empty this time."
		} else {
			m.status = fmt.Sprintf("Found %d new prospect(s).", found)
		}
		m.save()

	case "r":
		m.recruitHovered()
	}
}

// scoutHovered spends hours to reveal the hovered prospect's true rating.
func (m *Model) scoutHovered() {
	s := m.session
	domestic := s.Scouting.Domestic
	cur := m.cursor[m.scr]

	var err error
	if cur < len(domestic) {
		err = s.ScoutDomestic(domestic[cur].ID)
	} else {
		intl := s.DiscoveredIntl()
		i := cur - len(domestic)
		if i >= len(intl) {
			return
		}
		err = s.ScoutIntl(intl[i].ID)
	}
	if err != nil {
		m.status = friendlyError(err)
		return
	}
	m.status = "Scouting report filed."
	m.save()
}

// recruitHovered pitches the hovered international prospect on declaring.
func (m *Model) recruitHovered() {
	s := m.session
	cur := m.cursor[m.scr] - len(s.Scouting.Domestic)
	intl := s.DiscoveredIntl()
	if cur < 0 || cur >= len(intl) {
		m.status = "Hover an international prospect first."
		return
	}
	p := intl[cur]
	declared, err := s.RecruitIntl(p.ID)
	if err != nil {
		m.status = friendlyError(err)
		return
	}
	if declared {
		m.status = fmt.Sprintf("%s declares for the draft!", p.Name)
	} else {
		m.status = fmt.Sprintf("%s is listening. Interest %d.", p.Name, p.DeclareInterest)
	}
	m.save()
}

// marketList is the unsigned free agents, the order the engine keeps them in.
func (m Model) marketList() []*core.FreeAgent {
	if m.session.Offseason == nil {
		return nil
	}
	var out []*core.FreeAgent
	for _, fa := range m.session.Offseason.FreeAgents {
		if fa.SignedByTeamID == "" {
			out = append(out, fa)
		}
	}
	return out
}

func (m Model) viewMarket() string {
	s := m.session
	list := m.marketList()
	if len(list) == 0 {
		return dimStyle.Render("The market is closed.")
	}
	user := s.UserTeam()
	cur := m.cursor[m.scr]

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("Cap room %.1fM · enter: offer the ask", user.Cap.Cap-user.Cap.Payroll)) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %-3s %3s %4s %4s  %-10s %s", "Free agent", "Pos", "Age", "OVR", "Pot", "Asking", "Bids")) + "\n")

	start, end := window(len(list), cur, viewRows)
	for i := start; i < end; i++ {
		fa := list[i]
		wants := ""
		if fa.WantsWinning {
			wants += " W"
		}
		if fa.WantsRole {
			wants += " R"
		}
		line := fmt.Sprintf("%-22s %-3s %3d %4d %4s  %.1fMx%d   %d%s",
			fa.Name, fa.Pos, fa.Age, fa.OVR, fa.PotentialGrade, fa.Ask, fa.YearsAsk, len(fa.Offers), dimStyle.Render(wants))
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// offerToHovered bids the hovered free agent's own ask.
func (m *Model) offerToHovered() {
	list := m.marketList()
	cur := m.cursor[m.scr]
	if cur >= len(list) {
		return
	}
	fa := list[cur]
	signed, err := m.session.SubmitOffer(fa.ID, fa.Ask, fa.YearsAsk)
	if err != nil {
		m.status = friendlyError(err)
		return
	}
	if signed {
		m.status = fmt.Sprintf("%s signs with you for %.1fM over %d.", fa.Name, fa.Ask, fa.YearsAsk)
	} else {
		m.status = fmt.Sprintf("%s passed on your offer.", fa.Name)
	}
	m.save()
}

func (m Model) viewDraft() string {
	s := m.session
	if s.Offseason == nil || s.Offseason.Draft == nil {
		return dimStyle.Render("The draft starts after free agency.")
	}
	d := s.Offseason.Draft
	board := s.DraftBoard()
	cur := m.cursor[m.scr]

	var b strings.Builder
	switch {
	case d.Done:
		b.WriteString(goodStyle.Render("Draft complete. Space starts the new season.") + "\n\n")
	case s.UserOnClock():
		b.WriteString(goodStyle.Render("You are on the clock. Enter drafts the hovered prospect.") + "\n\n")
	default:
		if t := s.OnClockTeam(); t != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("On the clock: %s (space sims the pick)", t.Name)) + "\n\n")
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Board · round %d", d.Round)) + "\n")
	start, end := window(len(board), cur, viewRows-4)
	for i := start; i < end; i++ {
		line := m.prospectLine(board[i])
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("Recent picks") + "\n")
	sels := d.Selections
	for i := len(sels) - 1; i >= 0 && i >= len(sels)-5; i-- {
		sel := sels[i]
		name := sel.TeamID
		if t := s.League.Team(sel.TeamID); t != nil {
			name = t.Name
		}
		line := fmt.Sprintf("#%-3d %-22s %-3s ovr %2d  %s", sel.Overall, sel.Name, sel.Pos, sel.OVR, name)
		if sel.TeamID == s.UserTeamID {
			line = goodStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// pickHovered drafts the hovered board prospect, when it is our turn.
func (m *Model) pickHovered() {
	board := m.session.DraftBoard()
	cur := m.cursor[m.scr]
	if cur >= len(board) {
		return
	}
	p := board[cur]
	if err := m.session.MakeUserPick(p.ID); err != nil {
		m.status = friendlyError(err)
		return
	}
	m.status = fmt.Sprintf("%s is yours.", p.Name)
	m.save()
}
