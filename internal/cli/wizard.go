package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studyplanHuhTheme returns a huh theme using the Gruvbox palette.
func studyplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardDates holds the date inputs as typed.
type wizardDates struct {
	Start string
	End   string
}

// subjectDraft is one subject row as typed into the wizard.
type subjectDraft struct {
	Name  string
	Grade string
	Units string
}

func newWizardDates(app *App) wizardDates {
	today := todayPtr(app)
	return wizardDates{
		Start: today.Format(domain.DateLayout),
		End:   today.AddDate(0, 0, app.Config.DefaultSpanDays).Format(domain.DateLayout),
	}
}

func newSubjectDraft(app *App) subjectDraft {
	grade := app.Config.DefaultGrade
	if grade == "" {
		grade = domain.DefaultGrade
	}
	return subjectDraft{
		Grade: string(grade),
		Units: strconv.Itoa(app.Config.DefaultUnits),
	}
}

// validateDate accepts a YYYY-MM-DD date.
func validateDate(s string) error {
	_, err := domain.ParseDate(strings.TrimSpace(s))
	return err
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func gradeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.Grades))
	for i, g := range domain.Grades {
		opts[i] = huh.NewOption(g.Label(), string(g))
	}
	return opts
}

func wizardDateForm(d *wizardDates) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD").
				Value(&d.Start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Description("YYYY-MM-DD, after the start date").
				Value(&d.End).
				Validate(validateDate),
		),
	).WithTheme(studyplanHuhTheme()).WithShowHelp(false)
}

func wizardSubjectForm(n int, s *subjectDraft, another *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Subject %d", n)).
				Placeholder(domain.DefaultSubject).
				Value(&s.Name),
			huh.NewSelect[string]().
				Title("Grade").
				Options(gradeOptions()...).
				Value(&s.Grade),
			huh.NewInput().
				Title("Chapters").
				Value(&s.Units).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add another subject?").
				Affirmative("Yes").
				Negative("No").
				Value(another),
		),
	).WithTheme(studyplanHuhTheme()).WithShowHelp(false)
}

func wizardRemoveForm(drafts []subjectDraft, remove *[]int) *huh.Form {
	opts := make([]huh.Option[int], len(drafts))
	for i, d := range drafts {
		opts[i] = huh.NewOption(draftLabel(d), i)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Remove any subjects?").
				Description("space to mark, enter to continue").
				Options(opts...).
				Value(remove),
		),
	).WithTheme(studyplanHuhTheme()).WithShowHelp(false)
}

func draftLabel(d subjectDraft) string {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = domain.DefaultSubject
	}
	return fmt.Sprintf("%s (%s, %s chapters)", name, d.Grade, strings.TrimSpace(d.Units))
}

// wizardRequest converts the typed wizard answers into a GenerateRequest,
// dropping the subjects marked for removal.
func wizardRequest(app *App, dates wizardDates, drafts []subjectDraft, remove []int) (contract.GenerateRequest, error) {
	start, err := domain.ParseDate(strings.TrimSpace(dates.Start))
	if err != nil {
		return contract.GenerateRequest{}, fmt.Errorf("start date: %w", err)
	}
	end, err := domain.ParseDate(strings.TrimSpace(dates.End))
	if err != nil {
		return contract.GenerateRequest{}, fmt.Errorf("end date: %w", err)
	}

	removed := make(map[int]bool, len(remove))
	for _, i := range remove {
		removed[i] = true
	}

	subjects := make([]domain.Subject, 0, len(drafts))
	for i, d := range drafts {
		if removed[i] {
			continue
		}
		units, err := strconv.Atoi(strings.TrimSpace(d.Units))
		if err != nil {
			return contract.GenerateRequest{}, fmt.Errorf("subject %d chapters: %w", i+1, err)
		}
		subjects = append(subjects, domain.Subject{
			Name:       strings.TrimSpace(d.Name),
			Grade:      domain.Grade(d.Grade),
			TotalUnits: units,
		})
	}

	req := contract.NewGenerateRequest(subjects, start, end)
	req.Today = todayPtr(app)
	return req, nil
}

// runWizard walks the user through the input forms. It returns nil when the
// user aborts.
func runWizard(app *App) (*contract.GenerateRequest, error) {
	dates := newWizardDates(app)
	if err := wizardDateForm(&dates).Run(); err != nil {
		return nil, wizardErr(err)
	}

	var drafts []subjectDraft
	for {
		draft := newSubjectDraft(app)
		another := false
		if err := wizardSubjectForm(len(drafts)+1, &draft, &another).Run(); err != nil {
			return nil, wizardErr(err)
		}
		drafts = append(drafts, draft)
		if !another {
			break
		}
	}

	var remove []int
	if len(drafts) > 1 {
		if err := wizardRemoveForm(drafts, &remove).Run(); err != nil {
			return nil, wizardErr(err)
		}
	}

	req, err := wizardRequest(app, dates, drafts, remove)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func wizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// runWizardAndGenerate runs the wizard and generates the plan. A nil
// response with a nil error means the user aborted.
func runWizardAndGenerate(ctx context.Context, app *App) (*contract.GenerateResponse, error) {
	req, err := runWizard(app)
	if err != nil || req == nil {
		return nil, err
	}
	return app.Plans.Generate(ctx, *req)
}
