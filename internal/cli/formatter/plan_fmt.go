package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatPlanSummary renders the plan's date range and subject list.
func FormatPlanSummary(resp *contract.GenerateResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Plan"), TruncID(resp.PlanID))
	fmt.Fprintf(&b, "%s %s → %s %s\n\n",
		Dim("Range"),
		Bold(resp.Start.Format(domain.DateLayout)),
		Bold(resp.End.Format(domain.DateLayout)),
		Dim(fmt.Sprintf("(%d days)", resp.TotalDays)),
	)

	rows := make([][]string, 0, len(resp.Subjects))
	for _, s := range resp.Subjects {
		rows = append(rows, []string{s.Name, s.Grade.Label(), strconv.Itoa(s.TotalUnits)})
	}
	b.WriteString(RenderTable([]string{"Subject", "Grade", "Chapters"}, rows))
	return RenderBox("Study plan", strings.TrimRight(b.String(), "\n"))
}
