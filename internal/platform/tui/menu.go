package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

// LevelEntry is one row of the level picker.
type LevelEntry struct {
	Level     levels.Level
	Solved    bool
	BestMoves int
}

// LevelEntries loads every level of loader and joins the best records
// from store. A nil store lists every level as unsolved.
func LevelEntries(loader *levels.Loader, store *storage.Store) ([]LevelEntry, error) {
	all, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	var stats map[string]*storage.LevelStats
	if store != nil {
		if stats, err = store.AllLevelStats(); err != nil {
			return nil, err
		}
	}

	entries := make([]LevelEntry, len(all))
	for i, lvl := range all {
		entries[i] = LevelEntry{Level: lvl}
		if s, ok := stats[lvl.ID]; ok && s.Completions > 0 {
			entries[i].Solved = true
			entries[i].BestMoves = s.BestMoves
		}
	}
	return entries, nil
}

// LevelSelection is what the user picked in the level menu.
type LevelSelection struct {
	LevelID string
	// Records is set when the records board was asked for instead of play.
	Records bool
}

// LevelMenuModel is the level picker.
type LevelMenuModel struct {
	entries      []LevelEntry
	cursor       int
	scrollOffset int
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	theme        Theme
	selection    *LevelSelection
	quitting     bool
	back         bool
}

// NewLevelMenuModel creates a level picker over entries.
func NewLevelMenuModel(entries []LevelEntry, width, height int) LevelMenuModel {
	h := help.New()
	h.Width = width
	return LevelMenuModel{
		entries: entries,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
		theme:   CurrentTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect, MenuActionRecords:
		if len(m.entries) == 0 {
			return m, nil
		}
		m.selection = &LevelSelection{
			LevelID: m.entries[m.cursor].Level.ID,
			Records: m.keys.Action(msg) == MenuActionRecords,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// visibleItems is the number of list rows that fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.back || m.selection != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("B U L B S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Subtitle.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.Description.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.entries))
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderEntry(i), m.width))
		b.WriteString("\n")
	}

	if end < len(m.entries) {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Controls.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m LevelMenuModel) renderEntry(i int) string {
	e := m.entries[i]

	cursor := "  "
	style := m.theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.ItemActive
	}

	name := fmt.Sprintf("%s%2d. %-24s %3dx%-3d", cursor, i+1, truncate(e.Level.Title(), 24), e.Level.Width, e.Level.Height)
	best := m.theme.Description.Render("  unsolved")
	if e.Solved {
		best = m.theme.ItemSolved.Render(fmt.Sprintf("  best %d moves", e.BestMoves))
	}
	return style.Render(name) + best
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	return m.selection
}

// Cursor returns the highlighted row.
func (m LevelMenuModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker and returns the selection, or
// nil when the user left without picking.
func RunLevelSelector(entries []LevelEntry, cfg core.RuntimeConfig) (*LevelSelection, error) {
	p := tea.NewProgram(
		NewLevelMenuModel(entries, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
