package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each tab of the plan viewer.
type ViewID int

const (
	ViewTimetable ViewID = iota
	ViewProgress
	ViewCalendar
)

// View is the interface that all viewer tabs implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab label
}
