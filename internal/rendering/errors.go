// Package rendering renders evaluated transcripts as text, LaTeX, or JSON reports.
package rendering

import "fmt"

// TemplateError represents an error reading, parsing, or executing a report template
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error (%s): %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error (%s): %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for a report format with no renderer
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported report format %q (want text, latex or json)", e.Format)
}
