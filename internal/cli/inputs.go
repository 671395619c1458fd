package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// subjectList collects repeated --subject name:units[:grade] flags.
type subjectList []domain.Subject

var _ pflag.Value = (*subjectList)(nil)

func (l *subjectList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = formatSubjectFlag(s)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (l *subjectList) Set(v string) error {
	s, err := parseSubjectFlag(v)
	if err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

func (l *subjectList) Type() string { return "name:units[:grade]" }

func parseSubjectFlag(v string) (domain.Subject, error) {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.Subject{}, fmt.Errorf("invalid subject %q (expected name:units[:grade])", v)
	}
	units, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid subject %q: chapter count must be a number", v)
	}
	s := domain.Subject{Name: strings.TrimSpace(parts[0]), TotalUnits: units}
	if len(parts) == 3 {
		s.Grade = domain.Grade(strings.TrimSpace(parts[2]))
	}
	return s, nil
}

func formatSubjectFlag(s domain.Subject) string {
	out := fmt.Sprintf("%s:%d", s.Name, s.TotalUnits)
	if s.Grade != "" {
		out += ":" + string(s.Grade)
	}
	return out
}

// planInputs are the input flags shared by generate and export.
type planInputs struct {
	subjects subjectList
	grade    string
	start    string
	end      string
	file     string
}

func (in *planInputs) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Var(&in.subjects, "subject", "Subject as name:units[:grade] (repeatable)")
	f.StringVar(&in.grade, "grade", "", "Grade for subjects that do not name one (e.g. 3-1)")
	f.StringVar(&in.start, "start", "", "First day, YYYY-MM-DD (default today)")
	f.StringVar(&in.end, "end", "", "Last day, YYYY-MM-DD (default start plus the configured span)")
	f.StringVar(&in.file, "file", "", "Plan file (.json, .yaml or .yml)")
	cmd.MarkFlagsMutuallyExclusive("file", "subject")
	cmd.MarkFlagsMutuallyExclusive("file", "start")
	cmd.MarkFlagsMutuallyExclusive("file", "end")
}

func (in *planInputs) empty() bool {
	return in.file == "" && len(in.subjects) == 0
}

// request builds a GenerateRequest from the flags, filling dates from the
// configured defaults.
func (in *planInputs) request(app *App) (contract.GenerateRequest, error) {
	today := todayPtr(app)

	start := *today
	if in.start != "" {
		d, err := domain.ParseDate(in.start)
		if err != nil {
			return contract.GenerateRequest{}, fmt.Errorf("--start: %w", err)
		}
		start = d
	}

	end := start.AddDate(0, 0, app.Config.DefaultSpanDays)
	if in.end != "" {
		d, err := domain.ParseDate(in.end)
		if err != nil {
			return contract.GenerateRequest{}, fmt.Errorf("--end: %w", err)
		}
		end = d
	}

	subjects := make([]domain.Subject, len(in.subjects))
	copy(subjects, in.subjects)
	for i := range subjects {
		if subjects[i].Grade == "" && in.grade != "" {
			subjects[i].Grade = domain.Grade(in.grade)
		}
	}

	req := contract.NewGenerateRequest(subjects, start, end)
	req.Today = today
	return req, nil
}

// generate runs the plan service for the flags: the plan file when given,
// otherwise the --subject list. --grade applies to both.
func (in *planInputs) generate(ctx context.Context, app *App) (*contract.GenerateResponse, error) {
	if in.file != "" {
		return app.Plans.GenerateFromFile(ctx, in.file, domain.Grade(in.grade), todayPtr(app))
	}
	req, err := in.request(app)
	if err != nil {
		return nil, err
	}
	return app.Plans.Generate(ctx, req)
}

// todayPtr is the reference date passed to the service for highlighting.
func todayPtr(app *App) *time.Time {
	d := domain.CivilDate(app.now())
	return &d
}
