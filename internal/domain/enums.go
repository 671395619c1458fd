package domain

// Grade tags a subject with the school grade and semester it belongs to,
// written as "<grade>-<semester>".
type Grade string

const (
	Grade1Sem1 Grade = "1-1"
	Grade1Sem2 Grade = "1-2"
	Grade2Sem1 Grade = "2-1"
	Grade2Sem2 Grade = "2-2"
	Grade3Sem1 Grade = "3-1"
	Grade3Sem2 Grade = "3-2"
	Grade4Sem1 Grade = "4-1"
	Grade4Sem2 Grade = "4-2"
	Grade5Sem1 Grade = "5-1"
	Grade5Sem2 Grade = "5-2"
	Grade6Sem1 Grade = "6-1"
	Grade6Sem2 Grade = "6-2"
)

// DefaultGrade is preselected by every input surface.
const DefaultGrade = Grade3Sem1

// Grades lists every accepted grade in display order.
var Grades = []Grade{
	Grade1Sem1, Grade1Sem2,
	Grade2Sem1, Grade2Sem2,
	Grade3Sem1, Grade3Sem2,
	Grade4Sem1, Grade4Sem2,
	Grade5Sem1, Grade5Sem2,
	Grade6Sem1, Grade6Sem2,
}

// ValidGrades is the canonical set of accepted grade strings.
var ValidGrades = func() map[string]bool {
	m := make(map[string]bool, len(Grades))
	for _, g := range Grades {
		m[string(g)] = true
	}
	return m
}()

// Label renders the grade for humans, e.g. "Grade 3, semester 1".
func (g Grade) Label() string {
	if !ValidGrades[string(g)] {
		return string(g)
	}
	return "Grade " + string(g[0]) + ", semester " + string(g[2])
}

type SlotKind string

const (
	SlotStudy       SlotKind = "study"
	SlotLunch       SlotKind = "lunch"
	SlotReadingPlay SlotKind = "reading_play"
	SlotEmpty       SlotKind = "empty"
)

// Fixed labels shown by the timetable and progress views.
const (
	LunchLabel       = "lunch"
	ReadingPlayLabel = "reading/play"
	ReviewLabel      = "complete/review"
	FreeTimeLabel    = "free time or catch-up"
	DefaultSubject   = "study"
)
