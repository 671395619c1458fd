package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatTimetable renders the weekly grid with one row per hour.
func FormatTimetable(tt domain.Timetable) string {
	headers := append([]string{"Time"}, tt.Days...)

	rows := make([][]string, 0, len(tt.Rows))
	for i, slots := range tt.Rows {
		row := make([]string, 0, len(slots)+1)
		row = append(row, Dim(fmt.Sprintf("%02d:00", tt.Hours[i])))
		for _, s := range slots {
			label := s.Label()
			if label == "" {
				label = "-"
			}
			row = append(row, SlotStyle(s.Kind).Render(label))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(Header("Weekly timetable"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
