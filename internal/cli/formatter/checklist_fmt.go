package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ChecklistState carries the viewer's in-memory check marks and cursor.
// The zero value renders a plain list: nothing checked, no cursor.
type ChecklistState struct {
	Checked map[int]bool
	Cursor  int
	Focused bool
}

// FormatProgress renders the day-by-day checklist.
func FormatProgress(days []domain.ProgressDay, state ChecklistState) string {
	var b strings.Builder
	b.WriteString(Header("Progress"))
	b.WriteString("\n")

	done := 0
	for _, d := range days {
		if state.Checked[d.Index] {
			done++
		}
	}
	if len(days) > 0 {
		pct := float64(done) / float64(len(days))
		b.WriteString(RenderProgress(pct, 20))
		b.WriteString(Dim(fmt.Sprintf("  %d/%d days", done, len(days))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, d := range days {
		b.WriteString(formatProgressDay(d, state))
		b.WriteString("\n")
	}
	return b.String()
}

func formatProgressDay(d domain.ProgressDay, state ChecklistState) string {
	pointer := "  "
	if state.Focused && state.Cursor == d.Index {
		pointer = StyleHeader.Render("> ")
	}

	box := "[ ]"
	if state.Checked[d.Index] {
		box = StyleGreen.Render("[x]")
	}

	heading := fmt.Sprintf("Day %2d", d.Index+1)
	date := d.Weekday + " " + d.Date.Format("Jan 2")

	var work string
	if d.FreeTime() {
		work = Dim(domain.FreeTimeLabel)
	} else {
		parts := make([]string, len(d.Entries))
		for i, e := range d.Entries {
			if e.Review {
				parts[i] = StyleBlue.Render(e.String())
			} else {
				parts[i] = e.String()
			}
		}
		work = strings.Join(parts, ", ")
	}

	return fmt.Sprintf("%s%s %s  %s  %s", pointer, box, Bold(heading), Dim(date), work)
}
