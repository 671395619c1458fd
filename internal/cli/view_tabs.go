package cli

import (
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timetableView shows the weekly grid. It has no state of its own.
type timetableView struct {
	timetable domain.Timetable
}

func (v *timetableView) ID() ViewID                          { return ViewTimetable }
func (v *timetableView) Title() string                       { return "Timetable" }
func (v *timetableView) ShortHelp() []key.Binding            { return nil }
func (v *timetableView) Init() tea.Cmd                       { return nil }
func (v *timetableView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *timetableView) View() string                        { return formatter.FormatTimetable(v.timetable) }

// calendarView shows the month grid.
type calendarView struct {
	calendar domain.Calendar
}

func (v *calendarView) ID() ViewID                          { return ViewCalendar }
func (v *calendarView) Title() string                       { return "Calendar" }
func (v *calendarView) ShortHelp() []key.Binding            { return nil }
func (v *calendarView) Init() tea.Cmd                       { return nil }
func (v *calendarView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *calendarView) View() string                        { return formatter.FormatCalendar(v.calendar) }

// progressHeaderLines is the number of lines FormatProgress prints before
// the first day.
const progressHeaderLines = 4

// progressView is the checklist. Check marks live only as long as the viewer.
type progressView struct {
	days    []domain.ProgressDay
	cursor  int
	checked map[int]bool
}

func newProgressView(days []domain.ProgressDay) *progressView {
	return &progressView{days: days, checked: make(map[int]bool)}
}

func (v *progressView) ID() ViewID    { return ViewProgress }
func (v *progressView) Title() string { return "Progress" }

func (v *progressView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "check")),
	}
}

func (v *progressView) Init() tea.Cmd { return nil }

func (v *progressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.days)-1 {
			v.cursor++
		}
	case " ", "x":
		if len(v.days) > 0 {
			v.checked[v.cursor] = !v.checked[v.cursor]
		}
	}
	return v, nil
}

func (v *progressView) View() string {
	return formatter.FormatProgress(v.days, formatter.ChecklistState{
		Checked: v.checked,
		Cursor:  v.cursor,
		Focused: true,
	})
}

// cursorLine is the content line the cursor sits on.
func (v *progressView) cursorLine() int {
	return progressHeaderLines + v.cursor
}
