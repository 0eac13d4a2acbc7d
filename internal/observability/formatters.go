// Package observability provides structured logging and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cgpa-calculator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCoursesToShow caps the course rows printed per term
	maxCoursesToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTermResult outputs the course table and GPA for one term.
func (p *Printer) PrintTermResult(term *types.TermResult) {
	if term == nil {
		return
	}

	var sb strings.Builder
	if len(term.Courses) == 0 {
		sb.WriteString("No courses entered.\n")
	} else {
		sb.WriteString(fmt.Sprintf("%-10s %5s %5s %5s %4s %5s\n", "Course", "Score", "Grade", "Point", "Unit", "WP"))
		count := min(len(term.Courses), maxCoursesToShow)
		for i := 0; i < count; i++ {
			c := term.Courses[i]
			score := "-"
			if c.Score != nil {
				score = fmt.Sprintf("%d", *c.Score)
			}
			code := c.Code
			if len(code) > 10 {
				code = code[:10]
			}
			sb.WriteString(fmt.Sprintf("%-10s %5s %5s %5d %4d %5d\n", code, score, c.Grade, c.Point, c.Unit, c.WeightedPoint))
		}
		if len(term.Courses) > maxCoursesToShow {
			sb.WriteString(fmt.Sprintf("... and %d more courses\n", len(term.Courses)-maxCoursesToShow))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Units: %d   Weighted: %d   GPA: %s", term.TotalUnits, term.TotalWeighted, term.GPA))

	title := "TERM RESULT"
	if term.Label != "" {
		title = strings.ToUpper(term.Label)
	}
	p.printBox(title, sb.String())
}

// PrintReport outputs the student header, every term, and the CGPA summary.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	s := report.Student
	if s.Name != "" || s.MatricNumber != "" || s.Department != "" {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Name:        %s\n", s.Name))
		sb.WriteString(fmt.Sprintf("Matric No.:  %s\n", s.MatricNumber))
		sb.WriteString(fmt.Sprintf("Department:  %s", s.Department))
		p.printBox("STUDENT", sb.String())
	}

	for i := range report.Terms {
		p.PrintTermResult(&report.Terms[i])
	}

	p.PrintSummary(&report.OverallResult)
}

// PrintSummary outputs the CGPA, classification, and any skipped terms.
func (p *Printer) PrintSummary(result *types.OverallResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total units:    %d\n", result.TotalUnits))
	sb.WriteString(fmt.Sprintf("Total weighted: %d\n", result.TotalWeighted))
	if result.CGPA.IsDefined() {
		sb.WriteString(fmt.Sprintf("CGPA:           %s / 5.00\n", result.CGPA))
	} else {
		sb.WriteString("CGPA:           undefined (no course units entered)\n")
	}
	sb.WriteString(fmt.Sprintf("Class:          %s", result.Classification))

	if len(result.SkippedTerms) > 0 {
		sb.WriteString("\n\nSkipped (no units):\n")
		for _, name := range result.SkippedTerms {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}

	p.printBox("CGPA SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
