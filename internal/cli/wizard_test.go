package cli

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2025-03-02"))
	assert.NoError(t, validateDate(" 2025-03-02 "))
	assert.Error(t, validateDate(""))
	assert.Error(t, validateDate("2025-13-01"))
	assert.Error(t, validateDate("March 2"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("8"))
	assert.Error(t, validatePositiveInt(""))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-3"))
	assert.Error(t, validatePositiveInt("ten"))
}

func TestWizardDefaults(t *testing.T) {
	app, _ := testApp(t)
	app.Config.DefaultUnits = 12
	app.Config.DefaultGrade = domain.Grade2Sem2

	dates := newWizardDates(app)
	assert.Equal(t, "2025-03-02", dates.Start)
	assert.Equal(t, "2025-04-01", dates.End)

	draft := newSubjectDraft(app)
	assert.Empty(t, draft.Name)
	assert.Equal(t, "2-2", draft.Grade)
	assert.Equal(t, "12", draft.Units)
}

func TestWizardRequest_DropsRemovedSubjects(t *testing.T) {
	app, _ := testApp(t)
	drafts := []subjectDraft{
		{Name: "Math", Grade: "3-1", Units: "10"},
		{Name: " Art ", Grade: "1-1", Units: "4"},
		{Name: "", Grade: "3-1", Units: " 6 "},
	}

	req, err := wizardRequest(app, wizardDates{Start: "2025-03-02", End: "2025-03-20"}, drafts, []int{0})
	require.NoError(t, err)

	require.Len(t, req.Subjects, 2)
	assert.Equal(t, domain.Subject{Name: "Art", Grade: domain.Grade1Sem1, TotalUnits: 4}, req.Subjects[0])
	assert.Equal(t, 6, req.Subjects[1].TotalUnits)
	assert.Equal(t, "2025-03-20", req.End.Format(domain.DateLayout))
	require.NotNil(t, req.Today)
}

func TestWizardRequest_AllRemovedLeavesNoSubjects(t *testing.T) {
	app, _ := testApp(t)
	drafts := []subjectDraft{{Name: "Math", Grade: "3-1", Units: "10"}, {Name: "Art", Grade: "3-1", Units: "2"}}

	req, err := wizardRequest(app, newWizardDates(app), drafts, []int{0, 1})
	require.NoError(t, err)
	assert.Empty(t, req.Subjects)
}

func TestWizardRequest_BadDate(t *testing.T) {
	app, _ := testApp(t)
	_, err := wizardRequest(app, wizardDates{Start: "soon", End: "2025-03-20"}, nil, nil)
	assert.ErrorContains(t, err, "start date")
}

func TestDraftLabel(t *testing.T) {
	assert.Equal(t, "study (3-1, 8 chapters)", draftLabel(subjectDraft{Grade: "3-1", Units: "8"}))
	assert.Equal(t, "Math (4-2, 5 chapters)", draftLabel(subjectDraft{Name: "Math", Grade: "4-2", Units: " 5"}))
}

func TestWizardForms_Build(t *testing.T) {
	app, _ := testApp(t)
	dates := newWizardDates(app)
	draft := newSubjectDraft(app)
	another := false
	var remove []int

	assert.NotNil(t, wizardDateForm(&dates))
	assert.NotNil(t, wizardSubjectForm(1, &draft, &another))
	assert.NotNil(t, wizardRemoveForm([]subjectDraft{draft, draft}, &remove))
	assert.Len(t, gradeOptions(), len(domain.Grades))
}
