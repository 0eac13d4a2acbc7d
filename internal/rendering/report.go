package rendering

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/jonathan/cgpa-calculator/internal/types"
)

// Report formats
const (
	FormatText  = "text"
	FormatLaTeX = "latex"
	FormatJSON  = "json"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

var builtinTemplateNames = map[string]string{
	FormatText:  "templates/report.txt.tmpl",
	FormatLaTeX: "templates/report.tex.tmpl",
}

// TemplateData is what report templates are executed against
type TemplateData struct {
	EvaluationID   string
	Student        types.Student
	Terms          []TermSection
	TotalUnits     int
	TotalWeighted  int
	CGPA           string
	CGPADefined    bool
	Classification string
	SkippedTerms   []string
}

// TermSection is one term's table in the report
type TermSection struct {
	Label         string
	Rows          []CourseRow
	TotalUnits    int
	TotalWeighted int
	GPA           string
}

// CourseRow is a single line of a term table. Score is "-" when the course
// was entered by letter grade.
type CourseRow struct {
	Code          string
	Score         string
	Grade         string
	Point         int
	Unit          int
	WeightedPoint int
}

// RenderReport renders a report in the given format. templatePath overrides
// the built-in template for text and latex; it is ignored for json.
func RenderReport(report *types.Report, format, templatePath string) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}
		return string(data) + "\n", nil
	}

	tmpl, err := loadTemplate(format, templatePath)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, BuildTemplateData(report)); err != nil {
		return "", &TemplateError{
			Template: tmpl.Name(),
			Message:  "failed to execute template",
			Cause:    err,
		}
	}
	return out.String(), nil
}

// loadTemplate parses either the custom template file or the built-in one
// for the format. LaTeX templates get a real escape function; text
// templates get the identity so the same templates can call escape freely.
func loadTemplate(format, templatePath string) (*template.Template, error) {
	builtin, ok := builtinTemplateNames[format]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}

	funcs := template.FuncMap{"escape": func(s string) string { return s }}
	if format == FormatLaTeX {
		funcs["escape"] = EscapeLaTeX
	}

	var (
		name    string
		content []byte
		err     error
	)
	if templatePath != "" {
		name = templatePath
		content, err = os.ReadFile(templatePath)
		if err != nil {
			msg := "failed to read template file"
			if os.IsNotExist(err) {
				msg = "template file not found"
			}
			return nil, &TemplateError{Template: name, Message: msg, Cause: err}
		}
	} else {
		name = builtin
		content, err = builtinTemplates.ReadFile(builtin)
		if err != nil {
			return nil, &TemplateError{Template: name, Message: "missing built-in template", Cause: err}
		}
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Template: name, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// BuildTemplateData flattens a report into display strings
func BuildTemplateData(report *types.Report) *TemplateData {
	data := &TemplateData{
		EvaluationID:   report.EvaluationID.String(),
		Student:        report.Student,
		Terms:          make([]TermSection, 0, len(report.Terms)),
		TotalUnits:     report.TotalUnits,
		TotalWeighted:  report.TotalWeighted,
		CGPA:           report.CGPA.String(),
		CGPADefined:    report.CGPA.IsDefined(),
		Classification: string(report.Classification),
		SkippedTerms:   report.SkippedTerms,
	}

	for i, term := range report.Terms {
		section := TermSection{
			Label:         term.Label,
			Rows:          make([]CourseRow, 0, len(term.Courses)),
			TotalUnits:    term.TotalUnits,
			TotalWeighted: term.TotalWeighted,
			GPA:           term.GPA.String(),
		}
		if section.Label == "" {
			section.Label = fmt.Sprintf("Term %d", i+1)
		}
		for _, c := range term.Courses {
			score := "-"
			if c.Score != nil {
				score = strconv.Itoa(*c.Score)
			}
			section.Rows = append(section.Rows, CourseRow{
				Code:          c.Code,
				Score:         score,
				Grade:         string(c.Grade),
				Point:         c.Point,
				Unit:          c.Unit,
				WeightedPoint: c.WeightedPoint,
			})
		}
		data.Terms = append(data.Terms, section)
	}

	return data
}
