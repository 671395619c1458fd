// Package export renders a generated plan into external calendar formats.
package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/studyplan/internal/contract"
	ics "github.com/arran4/golang-ical"
)

const productID = "-//studyplan//study calendar//EN"

// BuildICS turns the calendar view of a plan into an iCalendar document with
// one all-day event per chapter tag. Days without tags produce no events,
// matching the calendar view.
func BuildICS(resp *contract.GenerateResponse) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("Study plan %s to %s", resp.Start.Format("2006-01-02"), resp.End.Format("2006-01-02")))

	for _, cell := range resp.Calendar.Cells {
		for i, tag := range cell.Tags {
			uid := fmt.Sprintf("%s-%s-%d@studyplan", resp.PlanID, cell.Date.Format("20060102"), i)
			event := cal.AddEvent(uid)
			event.SetDtStampTime(resp.Start)
			event.SetAllDayStartAt(cell.Date)
			event.SetAllDayEndAt(cell.Date.AddDate(0, 0, 1))
			event.SetSummary(tag.String())
			event.SetDescription(fmt.Sprintf("Study %s chapters %s (day %d of %d)", tag.Subject, tag.Interval, cell.Index+1, resp.TotalDays))
		}
	}
	return cal
}

// WriteICS serializes the plan's calendar to w.
func WriteICS(w io.Writer, resp *contract.GenerateResponse) error {
	if _, err := io.WriteString(w, BuildICS(resp).Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
