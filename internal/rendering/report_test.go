package rendering

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cgpa-calculator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.Report {
	return types.NewReport(
		types.Student{Name: "Ada_Obi", MatricNumber: "CSC/19/001", Department: "Computer Science & Engineering"},
		types.OverallResult{
			Terms: []types.TermResult{
				{
					Label: "100L First",
					Courses: []types.GradedCourse{
						{Code: "MTH101", Score: types.IntPtr(80), Grade: types.LetterA, Point: 5, Unit: 3, WeightedPoint: 15},
						{Code: "PHY101", Grade: types.LetterC, Point: 3, Unit: 2, WeightedPoint: 6},
					},
					TotalUnits:    5,
					TotalWeighted: 21,
					GPA:           types.GPAFromHundredths(420),
				},
				{Courses: []types.GradedCourse{}},
			},
			TotalUnits:     5,
			TotalWeighted:  21,
			CGPA:           types.GPAFromHundredths(420),
			Classification: types.SecondClassUpper,
			SkippedTerms:   []string{"term 2"},
		},
	)
}

func TestBuildTemplateData(t *testing.T) {
	report := sampleReport()
	data := BuildTemplateData(report)

	assert.Equal(t, report.EvaluationID.String(), data.EvaluationID)
	assert.Equal(t, "4.20", data.CGPA)
	assert.True(t, data.CGPADefined)
	assert.Equal(t, "Second Class Upper", data.Classification)

	require.Len(t, data.Terms, 2)
	assert.Equal(t, "100L First", data.Terms[0].Label)
	assert.Equal(t, "Term 2", data.Terms[1].Label)
	assert.Equal(t, "undefined", data.Terms[1].GPA)

	rows := data.Terms[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "80", rows[0].Score)
	assert.Equal(t, "-", rows[1].Score)
	assert.Equal(t, "C", rows[1].Grade)
}

func TestRenderReport_Text(t *testing.T) {
	out, err := RenderReport(sampleReport(), FormatText, "")
	require.NoError(t, err)

	assert.Contains(t, out, "Name:        Ada_Obi")
	assert.Contains(t, out, "Computer Science & Engineering")
	assert.Contains(t, out, "== 100L First ==")
	assert.Contains(t, out, "MTH101")
	assert.Contains(t, out, "GPA: 4.20")
	assert.Contains(t, out, "No courses entered.")
	assert.Contains(t, out, "CGPA: 4.20 / 5.00")
	assert.Contains(t, out, "Classification: Second Class Upper")
	assert.Contains(t, out, "Skipped (no units): term 2")
}

func TestRenderReport_LaTeXEscapesInput(t *testing.T) {
	out, err := RenderReport(sampleReport(), FormatLaTeX, "")
	require.NoError(t, err)

	assert.Contains(t, out, `\documentclass`)
	assert.Contains(t, out, `Ada\_Obi`)
	assert.Contains(t, out, `Computer Science \& Engineering`)
	assert.Contains(t, out, `\subsection*{100L First}`)
	assert.Contains(t, out, `MTH101 & 80 & A & 5 & 3 & 15 \\`)
	assert.Contains(t, out, `PHY101 & - & C & 3 & 2 & 6 \\`)
	assert.Contains(t, out, `\textbf{4.20 / 5.00}`)
	assert.Contains(t, out, `\textbf{Second Class Upper}`)
	assert.Contains(t, out, `\end{document}`)
}

func TestRenderReport_UndefinedCGPA(t *testing.T) {
	report := types.NewReport(types.Student{}, types.OverallResult{Classification: types.ClassificationUndefined})

	out, err := RenderReport(report, FormatText, "")
	require.NoError(t, err)
	assert.Contains(t, out, "CGPA: undefined. Please enter at least one course.")
	assert.NotContains(t, out, "0.00 / 5.00")
}

func TestRenderReport_JSON(t *testing.T) {
	report := sampleReport()
	out, err := RenderReport(report, FormatJSON, "")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 4.2, decoded["cgpa"])
	assert.Equal(t, report.EvaluationID.String(), decoded["evaluation_id"])
}

func TestRenderReport_UnsupportedFormat(t *testing.T) {
	_, err := RenderReport(sampleReport(), "pdf", "")
	require.Error(t, err)
	var formatErr *UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "pdf", formatErr.Format)
}

func TestRenderReport_NilReport(t *testing.T) {
	_, err := RenderReport(nil, FormatText, "")
	assert.Error(t, err)
}

func TestRenderReport_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{.Student.MatricNumber}}: {{.CGPA}} ({{.Classification}})`), 0644))

	out, err := RenderReport(sampleReport(), FormatText, path)
	require.NoError(t, err)
	assert.Equal(t, "CSC/19/001: 4.20 (Second Class Upper)", out)
}

func TestRenderReport_TemplateNotFound(t *testing.T) {
	_, err := RenderReport(sampleReport(), FormatLaTeX, "/nonexistent/template.tex")
	require.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRenderReport_InvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{.InvalidSyntax{{}}`), 0644))

	_, err := RenderReport(sampleReport(), FormatText, path)
	require.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestRenderReport_ExecutionError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_field.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{.NoSuchField}}`), 0644))

	_, err := RenderReport(sampleReport(), FormatText, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}
