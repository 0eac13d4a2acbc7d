package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

func TestRunGrade(t *testing.T) {
	tests := []struct {
		name   string
		score  *int
		letter string
		want   string
	}{
		{"score", types.IntPtr(64), "", "Grade: B\nPoint: 4\n"},
		{"gap score", types.IntPtr(74), "", "Grade: F\nPoint: 0\n"},
		{"letter", nil, "e", "Grade: E\nPoint: 1\n"},
		{"agreeing pair", types.IntPtr(45), "D", "Grade: D\nPoint: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runGrade(&out, tt.score, tt.letter))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunGrade_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runGrade(&out, nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--score or --letter")

	assert.ErrorIs(t, runGrade(&out, types.IntPtr(-1), ""), grading.ErrInvalidInput)
	assert.ErrorIs(t, runGrade(&out, nil, "AB"), grading.ErrInvalidInput)
	assert.ErrorIs(t, runGrade(&out, types.IntPtr(90), "B"), grading.ErrInvalidInput)
	assert.Empty(t, out.String())
}
