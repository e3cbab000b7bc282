package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
)

type browseKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Reload      key.Binding
	Quit        key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
		ExpandAll:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse all")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ExpandAll, k.CollapseAll, k.Reload, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// cardsLoadedMsg carries the result of loading the owner's timecards.
type cardsLoadedMsg struct {
	cards []*domain.Timecard
	err   error
}

// browseModel is an accordion over an employee's timecards: one header row
// per week, expanding in place to show that week's entries.
type browseModel struct {
	owner    *domain.Employee
	load     func() ([]*domain.Timecard, error)
	cards    []*domain.Timecard
	loading  bool
	err      error
	expanded map[string]bool
	cursor   int
	keys     browseKeyMap
	help     help.Model
}

func newBrowseModel(owner *domain.Employee, load func() ([]*domain.Timecard, error)) browseModel {
	return browseModel{
		owner:    owner,
		load:     load,
		loading:  true,
		expanded: make(map[string]bool),
		keys:     defaultBrowseKeyMap(),
		help:     help.New(),
	}
}

func (m browseModel) Init() tea.Cmd { return m.loadCards() }

func (m browseModel) loadCards() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		cards, err := load()
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.cards = msg.cards
		if m.cursor >= len(m.cards) {
			m.cursor = max(len(m.cards)-1, 0)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.loadCards()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.cards) {
				id := m.cards[m.cursor].ID
				m.expanded[id] = !m.expanded[id]
			}
		case key.Matches(msg, m.keys.ExpandAll):
			for _, tc := range m.cards {
				m.expanded[tc.ID] = true
			}
		case key.Matches(msg, m.keys.CollapseAll):
			clear(m.expanded)
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(fmt.Sprintf("Timecards for %s", m.owner.Name)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading timecards..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.cards) == 0:
		b.WriteString(formatter.Dim("No timecards yet."))
		b.WriteString("\n")
	}
	for i, tc := range m.cards {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		marker := "▸"
		if m.expanded[tc.ID] {
			marker = "▾"
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s h  %s\n",
			cursor, marker, formatter.Bold(formatter.WeekLabel(tc.WeekStart)),
			formatter.FormatHours(tc.TotalHours), formatter.StatusPill(tc.Completed)))

		if m.expanded[tc.ID] {
			for _, line := range strings.Split(strings.TrimRight(formatter.FormatEntries(tc), "\n"), "\n") {
				b.WriteString("      " + line + "\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newBrowseCmd(app *App) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse timecards interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; use 'timecard card list' instead")
			}
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			owner, err := resolveOwner(ctx, app, caller, employee)
			if err != nil {
				return err
			}
			load := func() ([]*domain.Timecard, error) {
				return app.Timecards.List(ctx, owner.ID, 0)
			}

			p := tea.NewProgram(newBrowseModel(owner, load),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee ID or email (managers only)")
	return cmd
}
