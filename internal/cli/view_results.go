package cli

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/cli/formatter"
	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// resultTab is one page of the results viewer.
type resultTab struct {
	title string
	body  string
}

type resultsKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
	Quit key.Binding
}

func defaultResultsKeyMap() resultsKeyMap {
	return resultsKeyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
		Jump: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// resultsViewportKeyMap leaves letter keys free for tab navigation.
func resultsViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// resultsModel shows a derived result as four tabs: schedule, workouts,
// study plans and tips. Exactly one tab is visible at a time.
type resultsModel struct {
	tabs   []resultTab
	active int
	keys   resultsKeyMap
	vp     viewport.Model
	ready  bool
	width  int
	help   string
}

// resultsChrome is the number of lines taken by the tab bar and the help footer.
const resultsChrome = 4

func newResultsModel(resp *app.SubmitResponse, areaOf formatter.AreaLookup, tr *i18n.Translator) resultsModel {
	r := resp.Result
	schedule := formatter.FormatSchedule(r.Schedule, tr)
	if d := formatter.FormatDropped(resp.Dropped, tr); d != "" {
		schedule += "\n" + d
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = resultsViewportKeyMap()

	return resultsModel{
		tabs: []resultTab{
			{title: tr.T(i18n.KeyTabSchedule), body: schedule},
			{title: tr.T(i18n.KeyTabWorkouts), body: formatter.FormatWorkoutPlans(r.Workouts, tr)},
			{title: tr.T(i18n.KeyTabStudy), body: formatter.FormatStudyPlans(r.Study, tr)},
			{title: tr.T(i18n.KeyTabTips), body: formatter.FormatTips(r.Tips, areaOf, tr)},
		},
		keys: defaultResultsKeyMap(),
		vp:   vp,
		help: tr.T(i18n.KeyViewerHelp),
	}
}

func (m resultsModel) Init() tea.Cmd { return nil }

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-resultsChrome, 1)
		m.ready = true
		m.vp.SetContent(m.tabs[m.active].body)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectTab((m.active + 1) % len(m.tabs))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectTab((m.active + len(m.tabs) - 1) % len(m.tabs))
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			m.selectTab(int(msg.Runes[0] - '1'))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *resultsModel) selectTab(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	m.active = i
	m.vp.SetContent(m.tabs[i].body)
	m.vp.GotoTop()
}

func (m resultsModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.vp.View())
	} else {
		b.WriteString(m.tabs[m.active].body)
	}
	b.WriteString("\n")
	b.WriteString(formatter.Dim(m.help))
	return b.String()
}

func (m resultsModel) tabBar() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(formatter.ColorHeader).
		Bold(true).
		Underline(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(formatter.ColorDim).
		Padding(0, 1)

	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			parts[i] = activeStyle.Render(t.title)
		} else {
			parts[i] = inactiveStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
