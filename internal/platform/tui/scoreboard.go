package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/planetmatch/internal/games/planets"
	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

const maxScores = 100 // rows loaded per view

// ScoreReader is the read side of score storage. *storage.Store satisfies it.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	LevelSummaries() ([]storage.LevelSummary, error)
	LevelResults(levelID string, limit int) ([]storage.LevelResult, error)
}

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewRuns scoreView = iota
	viewLevels
	viewRecent
	viewCount
)

func (v scoreView) String() string {
	switch v {
	case viewRuns:
		return "Best runs"
	case viewLevels:
		return "Levels"
	case viewRecent:
		return "Recent"
	default:
		return "?"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
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

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     ScoreReader
	names     map[string]string // level id -> display name
	view      scoreView
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. campaign supplies level names;
// store may be nil.
func NewScoreboardModel(store ScoreReader, campaign []levels.Level, width, height int) ScoreboardModel {
	names := make(map[string]string, len(campaign))
	for _, l := range campaign {
		names[l.ID] = l.DisplayName()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		names:  names,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) levelName(id string) string {
	if n, ok := m.names[id]; ok {
		return n
	}
	return id
}

func (m *ScoreboardModel) columns() []table.Column {
	switch m.view {
	case viewLevels:
		return []table.Column{
			{Title: "Level", Width: 22},
			{Title: "Played", Width: 7},
			{Title: "Won", Width: 6},
			{Title: "Best", Width: 8},
			{Title: "Last played", Width: 16},
		}
	case viewRecent:
		return []table.Column{
			{Title: "Level", Width: 22},
			{Title: "Score", Width: 12},
			{Title: "Moves", Width: 6},
			{Title: "Result", Width: 7},
			{Title: "When", Width: 16},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "When", Width: 20},
		}
	}
}

// load queries the store for the current view and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.loadErr = nil, nil
	if m.store != nil {
		m.rows, m.loadErr = m.queryRows()
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
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

	m.table = t
}

func (m *ScoreboardModel) queryRows() ([]table.Row, error) {
	switch m.view {
	case viewLevels:
		sums, err := m.store.LevelSummaries()
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(sums))
		for i, s := range sums {
			rows[i] = table.Row{
				m.levelName(s.LevelID),
				humanize.Comma(int64(s.Attempts)),
				fmt.Sprintf("%.0f%%", s.WinRate()*100),
				humanize.Comma(int64(s.BestScore)),
				humanize.Time(s.LastPlayed),
			}
		}
		return rows, nil

	case viewRecent:
		results, err := m.store.LevelResults("", maxScores)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(results))
		for i, r := range results {
			outcome := "lost"
			if r.Won {
				outcome = "won"
			}
			rows[i] = table.Row{
				m.levelName(r.LevelID),
				fmt.Sprintf("%s/%s", humanize.Comma(int64(r.Score)), humanize.Comma(int64(r.TargetScore))),
				fmt.Sprintf("%d", r.MovesUsed),
				outcome,
				humanize.Time(r.CreatedAt),
			}
		}
		return rows, nil

	default:
		scores, err := m.store.TopScores(planets.GameID, maxScores)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(scores))
		for i, s := range scores {
			rows[i] = table.Row{
				humanize.Ordinal(i + 1),
				humanize.Comma(int64(s.Score)),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, viewCount)
	for v := scoreView(0); v < viewCount; v++ {
		if v == m.view {
			tabs[v] = activeTabStyle.Render(v.String())
		} else {
			tabs[v] = tabStyle.Render(v.String())
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Score database unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot load scores:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No scores recorded yet.\nClear a level to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreReader, campaign []levels.Level, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, campaign, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
