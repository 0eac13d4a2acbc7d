package grading

import (
	"math"

	"github.com/jonathan/cgpa-calculator/internal/types"
)

// classBand is a lower bound (inclusive, in hundredths) and its class
type classBand struct {
	min   int
	class types.Classification
}

var classBands = []classBand{
	{min: 450, class: types.FirstClass},
	{min: 350, class: types.SecondClassUpper},
	{min: 250, class: types.SecondClassLower},
	{min: 150, class: types.ThirdClass},
}

// Classify maps a CGPA to its degree class. Bands are checked top-down.
func Classify(cgpa float64) types.Classification {
	switch {
	case cgpa >= 4.5:
		return types.FirstClass
	case cgpa >= 3.5:
		return types.SecondClassUpper
	case cgpa >= 2.5:
		return types.SecondClassLower
	case cgpa >= 1.5:
		return types.ThirdClass
	default:
		return types.PassProbation
	}
}

// ClassifyGPA classifies an exact GPA; Undefined stays Undefined.
func ClassifyGPA(g types.GPA) types.Classification {
	if !g.IsDefined() {
		return types.ClassificationUndefined
	}
	for _, b := range classBands {
		if g.Hundredths() >= b.min {
			return b.class
		}
	}
	return types.PassProbation
}

// GPAFromFloat rounds a CGPA half-up to hundredths. The small nudge absorbs
// binary representation error, so 1.495 rounds to 1.50 like its decimal form.
func GPAFromFloat(cgpa float64) types.GPA {
	return types.GPAFromHundredths(int(math.Round(cgpa*100 + 1e-9)))
}

// CheckCGPA rejects values a GPA can never take
func CheckCGPA(cgpa float64) error {
	if math.IsNaN(cgpa) || cgpa < 0 || cgpa > MaxPoint {
		return invalidInput("cgpa", cgpa, "must be between 0.00 and 5.00")
	}
	return nil
}
