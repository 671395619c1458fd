package formatter

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// CalendarCellWidth is the column width of the month grid.
const CalendarCellWidth = 16

var calendarWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatCalendar renders the month grid Sunday first, seven cells per row.
// Leading blanks shift the first day into its weekday column.
func FormatCalendar(cal domain.Calendar) string {
	cell := lipgloss.NewStyle().Width(CalendarCellWidth).PaddingRight(1)

	blocks := make([]string, 0, cal.LeadingBlanks+len(cal.Cells))
	for i := 0; i < cal.LeadingBlanks; i++ {
		blocks = append(blocks, cell.Render(""))
	}
	for _, c := range cal.Cells {
		blocks = append(blocks, cell.Render(calendarCellContent(c)))
	}

	heads := make([]string, len(calendarWeekdays))
	for i, d := range calendarWeekdays {
		heads[i] = cell.Render(StyleHeader.Render(d))
	}

	rule := Dim(strings.Repeat("─", CalendarCellWidth*len(calendarWeekdays)))

	var b strings.Builder
	b.WriteString(Header("Calendar"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, heads...))
	b.WriteString("\n")
	for start := 0; start < len(blocks); start += len(calendarWeekdays) {
		end := min(start+len(calendarWeekdays), len(blocks))
		b.WriteString(rule)
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks[start:end]...))
		b.WriteString("\n")
	}
	return b.String()
}

func calendarCellContent(c domain.CalendarCell) string {
	lines := make([]string, 0, len(c.Tags)+1)
	heading := MonthDay(c.Date)
	if c.IsToday {
		lines = append(lines, StyleToday.Render(heading+" today"))
	} else {
		lines = append(lines, Bold(heading))
	}
	for _, tag := range c.Tags {
		lines = append(lines, tag.String())
	}
	return strings.Join(lines, "\n")
}
