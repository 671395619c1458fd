package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the height of the header (title + separator) plus the
// status bar (separator + hints).
const chromeLines = 4

var viewerKeys = struct {
	Next, Prev, Quit key.Binding
}{
	Next: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "prev tab")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// viewerModel is the root bubbletea Model of the tabbed plan viewer.
type viewerModel struct {
	plan     *contract.GenerateResponse
	tabs     []View
	active   int
	width    int
	height   int
	vp       viewport.Model
	quitting bool
}

// newViewerModel builds the viewer for a generated plan. It opens on the
// calendar tab.
func newViewerModel(resp *contract.GenerateResponse) *viewerModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewerViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := &viewerModel{
		plan: resp,
		tabs: []View{
			&timetableView{timetable: resp.Timetable},
			newProgressView(resp.Progress),
			&calendarView{calendar: resp.Calendar},
		},
		vp: vp,
	}
	m.selectTab(ViewCalendar)
	return m
}

func (m *viewerModel) activeView() View {
	return m.tabs[m.active]
}

func (m *viewerModel) selectTab(id ViewID) {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.active = i
		}
	}
	m.refresh()
	m.vp.GotoTop()
}

func (m *viewerModel) shiftTab(delta int) {
	n := len(m.tabs)
	m.selectTab(m.tabs[((m.active+delta)%n+n)%n].ID())
}

// refresh copies the active tab's rendering into the viewport and keeps the
// progress cursor on screen.
func (m *viewerModel) refresh() {
	m.vp.SetContent(m.activeView().View())
	pv, ok := m.activeView().(*progressView)
	if !ok || m.vp.Height <= 0 {
		return
	}
	line := pv.cursorLine()
	switch {
	case line < m.vp.YOffset:
		m.vp.SetYOffset(line)
	case line >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(line - m.vp.Height + 1)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeLines, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *viewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, viewerKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, viewerKeys.Next):
		m.shiftTab(1)
		return m, nil
	case key.Matches(msg, viewerKeys.Prev):
		m.shiftTab(-1)
		return m, nil
	}

	switch msg.String() {
	case "1":
		m.selectTab(ViewTimetable)
		return m, nil
	case "2":
		m.selectTab(ViewProgress)
		return m, nil
	case "3":
		m.selectTab(ViewCalendar)
		return m, nil
	}

	// The progress tab owns up/down and the check keys; everything else
	// scrolls.
	if m.activeView().ID() == ViewProgress && isProgressKey(msg) {
		updated, cmd := m.activeView().Update(msg)
		m.tabs[m.active] = updated.(View)
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func isProgressKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "down", "k", "j", " ", "x":
		return true
	}
	return false
}

func (m *viewerModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.activeView().View()
	if m.height > 0 {
		content = m.vp.View()
	}

	result := strings.Join([]string{m.renderHeader(), content, m.renderStatusBar()}, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *viewerModel) renderHeader() string {
	title := formatter.StylePurple.Render("studyplan")

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if i == m.active {
			tabs[i] = formatter.StyleHeader.Render("[" + label + "]")
		} else {
			tabs[i] = formatter.Dim(" " + label + " ")
		}
	}

	rangeText := formatter.Dim(fmt.Sprintf("%s → %s",
		m.plan.Start.Format(domain.DateLayout), m.plan.End.Format(domain.DateLayout)))

	header := title + "  " + strings.Join(tabs, " ") + "  " + rangeText
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m *viewerModel) renderStatusBar() string {
	var hints []string

	if m.height > 0 && m.vp.TotalLineCount() > m.vp.Height {
		hints = append(hints, scrollIndicator(m.vp))
	}
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	for _, b := range []key.Binding{viewerKeys.Next, viewerKeys.Quit} {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewerViewportKeyMap leaves letter keys free for tab shortcuts. Up/down
// scroll every tab except Progress, which intercepts them first.
func viewerViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
