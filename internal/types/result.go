//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Classification is a degree-classification band derived from CGPA
type Classification string

// Degree classes, highest first
const (
	FirstClass              Classification = "First Class"
	SecondClassUpper        Classification = "Second Class Upper"
	SecondClassLower        Classification = "Second Class Lower"
	ThirdClass              Classification = "Third Class"
	PassProbation           Classification = "Pass / Probation"
	ClassificationUndefined Classification = "Undefined"
)

// GradedCourse is a course after its grade point has been derived
type GradedCourse struct {
	Code          string `json:"code,omitempty"`
	Score         *int   `json:"score,omitempty"`
	Grade         Letter `json:"grade"`
	Point         int    `json:"point"`
	Unit          int    `json:"unit"`
	WeightedPoint int    `json:"weighted_point"`
}

// TermResult is the evaluated form of a Term. TotalWeighted and TotalUnits
// are kept so the CGPA can be re-aggregated without touching rounded GPAs.
type TermResult struct {
	Label         string         `json:"label,omitempty"`
	Courses       []GradedCourse `json:"courses"`
	TotalUnits    int            `json:"total_units"`
	TotalWeighted int            `json:"total_weighted"`
	GPA           GPA            `json:"gpa"`
}

// OverallResult is the CGPA across every term plus its classification.
// SkippedTerms lists terms that had no units and did not contribute.
type OverallResult struct {
	Terms          []TermResult   `json:"terms"`
	TotalUnits     int            `json:"total_units"`
	TotalWeighted  int            `json:"total_weighted"`
	CGPA           GPA            `json:"cgpa"`
	Classification Classification `json:"classification"`
	SkippedTerms   []string       `json:"skipped_terms,omitempty"`
}

// Report wraps an OverallResult with the student header and an evaluation ID
// for output. OverallResult fields are flattened into the JSON object.
type Report struct {
	EvaluationID uuid.UUID `json:"evaluation_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	Student      Student   `json:"student"`
	OverallResult
}

// NewReport stamps a result with a fresh evaluation ID
func NewReport(student Student, result OverallResult) *Report {
	return &Report{
		EvaluationID:  uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		Student:       student,
		OverallResult: result,
	}
}
