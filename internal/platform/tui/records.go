package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

// maxRecords is how many completions the board loads per level.
const maxRecords = 50

// RecordsKeyMap defines the key bindings for the records board.
type RecordsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLevel, k.NextLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevLevel, k.NextLevel},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel shows the best completions of one level at a time.
type RecordsModel struct {
	entries  []LevelEntry
	cursor   int
	store    *storage.Store
	records  []storage.Completion
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
	back     bool
}

// NewRecordsModel creates a records board starting at levelID. An unknown
// ID starts at the first level.
func NewRecordsModel(store *storage.Store, entries []LevelEntry, levelID string, width, height int) RecordsModel {
	h := help.New()
	h.Width = width

	m := RecordsModel{
		entries: entries,
		store:   store,
		keys:    DefaultRecordsKeyMap(),
		help:    h,
		theme:   CurrentTheme(),
		width:   width,
		height:  height,
	}
	for i, e := range entries {
		if e.Level.ID == levelID {
			m.cursor = i
			break
		}
	}
	m.table = m.createTable()
	m.loadRecords()
	return m
}

func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "Pushes", Width: 7},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[5].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

func (m *RecordsModel) loadRecords() {
	m.records, m.loadErr = nil, nil
	if m.store != nil && len(m.entries) > 0 {
		m.records, m.loadErr = m.store.BestCompletions(m.entries[m.cursor].Level.ID, maxRecords)
	}

	rows := make([]table.Row, len(m.records))
	for i, c := range m.records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", c.Moves),
			fmt.Sprintf("%d", c.Pushes),
			fmt.Sprintf("%d", c.Score),
			formatDuration(c.Duration),
			c.Player,
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records board.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.entries) > 0 {
				m.cursor = (m.cursor + 1) % len(m.entries)
				m.loadRecords()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.entries) > 0 {
				m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
				m.loadRecords()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.loadRecords()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records board.
func (m RecordsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	title := "RECORDS"
	if lvl, ok := m.Level(); ok {
		title = fmt.Sprintf("RECORDS - %s", lvl)
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render(title), m.width))
	b.WriteString("\n")
	if len(m.entries) > 1 {
		pos := fmt.Sprintf("< level %d of %d >", m.cursor+1, len(m.entries))
		b.WriteString(centerText(m.theme.Description.Render(pos), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(m.theme.Border.Render(m.renderTableContent()), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RecordsModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return m.theme.Error.Render("cannot load records: " + m.loadErr.Error())
	case m.store == nil:
		return m.theme.Description.Italic(true).Padding(1, 4).Render("Records are disabled.")
	case len(m.records) == 0:
		return m.theme.Description.Italic(true).Padding(1, 4).Render("No completions yet.\nSolve the level to set a record!")
	}
	return m.table.View()
}

// Level returns the title of the shown level.
func (m RecordsModel) Level() (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	return m.entries[m.cursor].Level.Title(), true
}

// Records returns the completions shown.
func (m RecordsModel) Records() []storage.Completion {
	return m.records
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records board. It returns true if the user went
// back rather than quitting.
func RunRecords(store *storage.Store, entries []LevelEntry, levelID string, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRecordsModel(store, entries, levelID, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
