package grading

import (
	"fmt"
	"math"

	"github.com/jonathan/cgpa-calculator/internal/types"
)

// GradeCourse derives the letter, point and weighted point for a course.
// A score takes precedence; a grade given alongside it must agree.
func GradeCourse(c types.Course) (types.GradedCourse, error) {
	if c.Unit < 1 {
		return types.GradedCourse{}, invalidInput("unit", c.Unit, "must be at least 1")
	}

	var (
		letter types.Letter
		point  int
		err    error
	)
	switch {
	case c.Score != nil:
		letter, point, err = ScoreToGrade(*c.Score)
		if err != nil {
			return types.GradedCourse{}, err
		}
		if c.Grade != "" {
			given, err := ParseLetter(c.Grade)
			if err != nil {
				return types.GradedCourse{}, err
			}
			if given != letter {
				return types.GradedCourse{}, invalidInput("grade", c.Grade,
					fmt.Sprintf("conflicts with score %d (grade %s)", *c.Score, letter))
			}
		}
	case c.Grade != "":
		letter, err = ParseLetter(c.Grade)
		if err != nil {
			return types.GradedCourse{}, err
		}
		point = letterPoints[letter]
	default:
		return types.GradedCourse{}, invalidInput("score", nil, "a score or a grade is required")
	}

	return types.GradedCourse{
		Code:          c.Code,
		Score:         c.Score,
		Grade:         letter,
		Point:         point,
		Unit:          c.Unit,
		WeightedPoint: point * c.Unit,
	}, nil
}

// WeightedPoint returns gradePoint * unit for a course
func WeightedPoint(c types.Course) (int, error) {
	graded, err := GradeCourse(c)
	if err != nil {
		return 0, err
	}
	return graded.WeightedPoint, nil
}

// ComputeTermGPA grades every course and averages the weighted points over
// the units. No partial result is returned when any course is invalid.
func ComputeTermGPA(courses []types.Course) (types.TermResult, error) {
	result := types.TermResult{Courses: make([]types.GradedCourse, 0, len(courses))}
	for i, c := range courses {
		graded, err := GradeCourse(c)
		if err != nil {
			return types.TermResult{}, fmt.Errorf("course %d%s: %w", i+1, codeSuffix(c.Code), err)
		}
		result.Courses = append(result.Courses, graded)
		result.TotalUnits += graded.Unit
		result.TotalWeighted += graded.WeightedPoint
	}
	result.GPA = average(result.TotalWeighted, result.TotalUnits)
	return result, nil
}

// EvaluateTerm is ComputeTermGPA carrying the term's label through
func EvaluateTerm(term types.Term) (types.TermResult, error) {
	result, err := ComputeTermGPA(term.Courses)
	if err != nil {
		return types.TermResult{}, err
	}
	result.Label = term.Label
	return result, nil
}

// ComputeOverallCGPA re-aggregates the raw totals of every term. Rounded term
// GPAs are never averaged. Terms with no units are skipped and reported.
func ComputeOverallCGPA(terms []types.TermResult) types.OverallResult {
	overall := types.OverallResult{Terms: terms}
	for i, t := range terms {
		if t.TotalUnits == 0 {
			overall.SkippedTerms = append(overall.SkippedTerms, termName(i, t.Label))
			continue
		}
		overall.TotalUnits += t.TotalUnits
		overall.TotalWeighted += t.TotalWeighted
	}
	overall.CGPA = average(overall.TotalWeighted, overall.TotalUnits)
	overall.Classification = ClassifyGPA(overall.CGPA)
	return overall
}

// Evaluate runs a whole transcript: every term, then the overall CGPA.
func Evaluate(t types.Transcript) (types.OverallResult, error) {
	terms := make([]types.TermResult, 0, len(t.Terms))
	for i, term := range t.Terms {
		result, err := EvaluateTerm(term)
		if err != nil {
			return types.OverallResult{}, fmt.Errorf("%s: %w", termName(i, term.Label), err)
		}
		terms = append(terms, result)
	}
	return ComputeOverallCGPA(terms), nil
}

// Round2 rounds to two decimals, halves away from zero (half-up for the
// non-negative values a GPA can take).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// average divides in integer hundredths with round-half-up so results are
// exact and reproducible.
func average(weighted, units int) types.GPA {
	if units <= 0 {
		return types.UndefinedGPA
	}
	return types.GPAFromHundredths((200*weighted + units) / (2 * units))
}

func termName(index int, label string) string {
	if label != "" {
		return fmt.Sprintf("term %d (%s)", index+1, label)
	}
	return fmt.Sprintf("term %d", index+1)
}

func codeSuffix(code string) string {
	if code == "" {
		return ""
	}
	return " (" + code + ")"
}
