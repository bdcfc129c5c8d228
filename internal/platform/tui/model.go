// Package tui provides the Bubble Tea front end for the franchise: a
// tabbed, keyboard-driven set of screens over one running session, with
// autosave into a SQLite slot after every engine action.
package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/courtside/internal/franchise"
	"github.com/vovakirdan/courtside/internal/storage"
)

// screen identifies one tab of the franchise UI.
type screen int

const (
	screenDashboard screen = iota
	screenRoster
	screenStandings
	screenScouting
	screenPlayoffs
	screenMarket
	screenDraft
	screenInbox
	screenHistory
	screenCount
)

var screenNames = [screenCount]string{
	"Dashboard", "Roster", "Standings", "Scouting",
	"Playoffs", "Market", "Draft", "Inbox", "History",
}

// Model is the root Bubble Tea model for a franchise session.
type Model struct {
	session *franchise.Session
	store   *storage.Store
	slot    int

	scr    screen
	cursor map[screen]int
	status string

	width  int
	height int

	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates the root model around a running session. The store may
// be nil, in which case the session lives only as long as the program.
func NewModel(session *franchise.Session, store *storage.Store, slot int) Model {
	return Model{
		session: session,
		store:   store,
		slot:    slot,
		cursor:  make(map[screen]int),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   100,
		height:  30,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: global navigation first, then the
// active screen's own actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.save()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.scr = (m.scr + 1) % screenCount
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.scr = (m.scr + screenCount - 1) % screenCount
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.scr] > 0 {
			m.cursor[m.scr]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.scr] < m.listLen()-1 {
			m.cursor[m.scr]++
		}
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		m.advance()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selectCurrent()
		return m, nil
	}

	if m.scr == screenScouting {
		m.handleScoutingKey(msg.String())
	}
	return m, nil
}

// advance performs the phase's "next step" action: play a week, simulate a
// playoff round, close free agency, run CPU picks, or start the new year.
func (m *Model) advance() {
	s := m.session
	var err error

	switch s.Phase {
	case franchise.PhaseRegular:
		if s.SeasonOver() {
			err = s.StartPlayoffs()
			if err == nil {
				m.scr = screenPlayoffs
				m.status = "Playoffs under way."
			}
		} else {
			err = s.AdvanceWeek()
			if err == nil {
				m.status = fmt.Sprintf("Week %d of %d.", s.Week, s.Rules.SeasonWeeks)
			}
		}

	case franchise.PhasePlayoffs:
		err = s.SimPlayoffRound()
		if err == nil {
			m.status = "Playoff round simulated."
			if s.Phase == franchise.PhaseFreeAgency {
				m.scr = screenMarket
				m.status = "Season over. Free agency is open."
			}
		}

	case franchise.PhaseFreeAgency:
		err = s.FinishFreeAgency()
		if err == nil {
			m.scr = screenDraft
			m.status = "Free agency closed. The draft is on."
		}

	case franchise.PhaseDraft:
		if s.Offseason != nil && s.Offseason.Draft != nil && s.Offseason.Draft.Done {
			err = s.AdvanceYear()
			if err == nil {
				m.scr = screenDashboard
				m.status = fmt.Sprintf("Welcome to the %d season.", s.Year)
			}
			break
		}
		if s.UserOnClock() {
			m.status = "You are on the clock. Pick from the draft board."
			break
		}
		err = s.SimCPUPick()

	default:
		return
	}

	if err != nil {
		m.status = friendlyError(err)
		return
	}
	m.save()
}

// selectCurrent runs the hovered item's action on the active screen.
func (m *Model) selectCurrent() {
	switch m.scr {
	case screenRoster:
		if err := m.session.AutoDepthChart(m.session.UserTeamID); err != nil {
			m.status = friendlyError(err)
			return
		}
		m.status = "Depth chart rebuilt."
		m.save()

	case screenScouting:
		m.scoutHovered()

	case screenMarket:
		m.offerToHovered()

	case screenDraft:
		m.pickHovered()
	}
}

// save writes the session into its slot. Failures surface in the status
// line; play continues either way.
func (m *Model) save() {
	if m.store == nil {
		return
	}
	blob, err := m.session.Encode()
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	info := storage.SaveInfo{
		Slot:     m.slot,
		Seed:     m.session.Meta.Seed,
		TeamName: m.session.UserTeam().Name,
		Year:     m.session.Year,
		Phase:    string(m.session.Phase),
	}
	if err := m.store.Save(info, blob); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	//nolint:errcheck // Best-effort bookkeeping
	m.store.SetActiveSlot(m.slot)
}

// friendlyError maps engine sentinel errors to short player-facing text.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, franchise.ErrWrongPhase):
		return "Not available right now."
	case errors.Is(err, franchise.ErrNotEnoughHours):
		return "Not enough hours left this week."
	case errors.Is(err, franchise.ErrCapExceeded):
		return "That would break the salary cap."
	case errors.Is(err, franchise.ErrRosterFull):
		return "Your roster is full."
	case errors.Is(err, franchise.ErrNotOnClock):
		return "Not your pick."
	case errors.Is(err, franchise.ErrSeasonNotOver):
		return "The season is still going."
	default:
		return err.Error()
	}
}

// View renders the active screen with the shared chrome.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.scr {
	case screenDashboard:
		body = m.viewDashboard()
	case screenRoster:
		body = m.viewRoster()
	case screenStandings:
		body = m.viewStandings()
	case screenScouting:
		body = m.viewScouting()
	case screenPlayoffs:
		body = m.viewPlayoffs()
	case screenMarket:
		body = m.viewMarket()
	case screenDraft:
		body = m.viewDraft()
	case screenInbox:
		body = m.viewInbox()
	case screenHistory:
		body = m.viewHistory()
	}

	return m.chrome(body)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *franchise.Session, store *storage.Store, slot int) error {
	m := NewModel(session, store, slot)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width = w
		m.height = h
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
