package grading

import (
	"strings"

	"github.com/jonathan/cgpa-calculator/internal/types"
)

const (
	// MinScore and MaxScore bound a raw course score
	MinScore = 0
	MaxScore = 100
	// MaxPoint is the top of the 5-point scale
	MaxPoint = 5
)

// scoreBand maps an inclusive score range to a letter and point
type scoreBand struct {
	low, high int
	letter    types.Letter
	point     int
}

// scoreBands is evaluated top-down. 70-74 is deliberately absent: those
// scores fall through to F, matching the published scale.
var scoreBands = []scoreBand{
	{low: 75, high: MaxScore, letter: types.LetterA, point: 5},
	{low: 60, high: 69, letter: types.LetterB, point: 4},
	{low: 50, high: 59, letter: types.LetterC, point: 3},
	{low: 45, high: 49, letter: types.LetterD, point: 2},
	{low: 40, high: 44, letter: types.LetterE, point: 1},
}

var letterPoints = map[types.Letter]int{
	types.LetterA: 5,
	types.LetterB: 4,
	types.LetterC: 3,
	types.LetterD: 2,
	types.LetterE: 1,
	types.LetterF: 0,
}

// ScoreToGrade converts a raw score in [0,100] to its letter and grade point.
func ScoreToGrade(score int) (types.Letter, int, error) {
	if score < MinScore || score > MaxScore {
		return "", 0, invalidInput("score", score, "must be between 0 and 100")
	}
	for _, b := range scoreBands {
		if score >= b.low && score <= b.high {
			return b.letter, b.point, nil
		}
	}
	return types.LetterF, 0, nil
}

// ParseLetter normalizes a letter grade (case-insensitive, whitespace trimmed)
func ParseLetter(s string) (types.Letter, error) {
	letter := types.Letter(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := letterPoints[letter]; !ok {
		return "", invalidInput("grade", s, "must be one of A, B, C, D, E, F")
	}
	return letter, nil
}

// GradeToPoint converts a letter grade to its grade point
func GradeToPoint(letter string) (int, error) {
	l, err := ParseLetter(letter)
	if err != nil {
		return 0, err
	}
	return letterPoints[l], nil
}
