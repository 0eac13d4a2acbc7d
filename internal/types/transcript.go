// Package types provides type definitions for structured data used throughout the cgpa-calculator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Letter is a letter grade on the 5-point scale (A through F)
type Letter string

// Letter grades, best to worst
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
	LetterF Letter = "F"
)

// Student identifies whose transcript is being evaluated. Display only.
type Student struct {
	Name         string `json:"name,omitempty"`
	MatricNumber string `json:"matric_number,omitempty"`
	Department   string `json:"department,omitempty"`
}

// Course is a single course entry as collected from the operator.
// Score is authoritative when present; otherwise Grade is used.
type Course struct {
	Code  string `json:"code,omitempty"`
	Score *int   `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	Grade string `json:"grade,omitempty" validate:"required_without=Score"`
	Unit  int    `json:"unit" validate:"required,min=1"`
}

// Term is an ordered list of courses taken in one semester or session
type Term struct {
	Label   string   `json:"label,omitempty"`
	Courses []Course `json:"courses" validate:"dive"`
}

// Transcript is the full structured input: a student and their terms in order
type Transcript struct {
	Student Student `json:"student"`
	Terms   []Term  `json:"terms" validate:"dive"`
}

// Validate validates the Transcript using the validator.
func (t *Transcript) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Validate validates the Term using the validator.
func (t *Term) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// IntPtr returns a pointer to v. Handy for building courses with a score.
func IntPtr(v int) *int {
	return &v
}
