//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_FlattensResult(t *testing.T) {
	result := OverallResult{
		Terms: []TermResult{{
			Label: "100L First",
			Courses: []GradedCourse{
				{Code: "MTH101", Score: IntPtr(80), Grade: LetterA, Point: 5, Unit: 3, WeightedPoint: 15},
			},
			TotalUnits:    3,
			TotalWeighted: 15,
			GPA:           GPAFromHundredths(500),
		}},
		TotalUnits:     3,
		TotalWeighted:  15,
		CGPA:           GPAFromHundredths(500),
		Classification: FirstClass,
	}

	report := NewReport(Student{Name: "Ada"}, result)
	assert.NotEqual(t, uuid.Nil, report.EvaluationID)
	assert.False(t, report.GeneratedAt.IsZero())

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, report.EvaluationID.String(), raw["evaluation_id"])
	assert.Equal(t, 5.0, raw["cgpa"])
	assert.Equal(t, "First Class", raw["classification"])
	assert.NotContains(t, raw, "OverallResult")
	assert.NotContains(t, raw, "skipped_terms")
}

func TestNewReport_UniqueIDs(t *testing.T) {
	a := NewReport(Student{}, OverallResult{})
	b := NewReport(Student{}, OverallResult{})
	assert.NotEqual(t, a.EvaluationID, b.EvaluationID)
}
