package grading

import (
	"math"
	"testing"

	"github.com/jonathan/cgpa-calculator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		cgpa float64
		want types.Classification
	}{
		{5.0, types.FirstClass},
		{4.5, types.FirstClass},
		{4.49, types.SecondClassUpper},
		{4.2, types.SecondClassUpper},
		{3.5, types.SecondClassUpper},
		{3.49, types.SecondClassLower},
		{2.5, types.SecondClassLower},
		{2.49, types.ThirdClass},
		{1.5, types.ThirdClass},
		{1.49, types.PassProbation},
		{0, types.PassProbation},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.cgpa), "cgpa %.2f", tt.cgpa)

		g := types.GPAFromHundredths(int(math.Round(tt.cgpa * 100)))
		assert.Equal(t, tt.want, ClassifyGPA(g), "gpa %s", g)
	}
}

func TestClassifyGPA_Undefined(t *testing.T) {
	assert.Equal(t, types.ClassificationUndefined, ClassifyGPA(types.UndefinedGPA))
}

func TestCheckCGPA(t *testing.T) {
	assert.NoError(t, CheckCGPA(0))
	assert.NoError(t, CheckCGPA(5))
	assert.NoError(t, CheckCGPA(3.75))

	for _, v := range []float64{-0.01, 5.01, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, CheckCGPA(v), ErrInvalidInput, "cgpa %v", v)
	}
}

func TestGPAFromFloat_RoundsBeforeBanding(t *testing.T) {
	tests := []struct {
		cgpa      float64
		wantShown string
		wantClass types.Classification
	}{
		{4.499, "4.50", types.FirstClass},
		{4.494, "4.49", types.SecondClassUpper},
		{1.495, "1.50", types.ThirdClass},
		{1.494, "1.49", types.PassProbation},
		{3.5, "3.50", types.SecondClassUpper},
		{4.9999, "5.00", types.FirstClass},
	}

	for _, tt := range tests {
		g := GPAFromFloat(tt.cgpa)
		assert.Equal(t, tt.wantShown, g.String(), "cgpa %v", tt.cgpa)
		assert.Equal(t, tt.wantClass, ClassifyGPA(g), "cgpa %v", tt.cgpa)
	}
}
