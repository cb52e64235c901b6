package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firetower-arcade/lookout/internal/storage"
)

// Max journal entries to load for the report log screen.
const maxJournalEntries = 100

// ReportLogModel is the Bubble Tea model for the fire report journal screen.
type ReportLogModel struct {
	store     *storage.Store
	reports   []storage.ReportEntry
	table     table.Model
	keys      ScoreboardKeyMap // Same navigation bindings as the scoreboard
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReportLogModel creates a new report log model.
func NewReportLogModel(store *storage.Store, width, height int) ReportLogModel {
	m := ReportLogModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadReports()

	return m
}

// createTable creates the journal table.
func (m *ReportLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Azimuth", Width: 9},
		{Title: "Declination", Width: 12},
		{Title: "Weather", Width: 8},
		{Title: "Mode", Width: 16},
		{Title: "Filed", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReports loads the most recent journaled reports.
func (m *ReportLogModel) loadReports() {
	if m.store == nil {
		m.reports = nil
		m.updateTableRows()
		return
	}

	reports, err := m.store.RecentReports(maxJournalEntries)
	if err != nil {
		m.reports = nil
	} else {
		m.reports = reports
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded journal.
func (m *ReportLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.reports))
	for i, r := range m.reports {
		rows[i] = table.Row{
			fmt.Sprintf("%.0f°", r.Azimuth),
			fmt.Sprintf("%.0f°", r.Declination),
			r.Weather,
			r.GameID,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the report log model.
func (m ReportLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report log.
func (m ReportLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the report log.
func (m ReportLogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("FIRE REPORT JOURNAL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.reports) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(
			emptyStyle.Render("No reports filed yet.\nSpot a fire and call it in!")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render("up/down: scroll  |  esc/b: back  |  q: quit"))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReportLogModel) IsGoingBack() bool {
	return m.goingBack
}

// RunReportLog runs the report journal screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunReportLog(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewReportLogModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReportLogModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
