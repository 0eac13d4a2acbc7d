package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cgpa-calculator/internal/grading"
)

func TestRunClassify(t *testing.T) {
	tests := []struct {
		cgpa float64
		want string
	}{
		{5, "5.00 / 5.00: First Class\n"},
		{4.5, "4.50 / 5.00: First Class\n"},
		{4.49, "4.49 / 5.00: Second Class Upper\n"},
		{2.5, "2.50 / 5.00: Second Class Lower\n"},
		{1.5, "1.50 / 5.00: Third Class\n"},
		{1.49, "1.49 / 5.00: Pass / Probation\n"},
		{4.499, "4.50 / 5.00: First Class\n"},
		{1.495, "1.50 / 5.00: Third Class\n"},
		{1.494, "1.49 / 5.00: Pass / Probation\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		require.NoError(t, runClassify(&out, tt.cgpa))
		assert.Equal(t, tt.want, out.String())
	}
}

func TestRunClassify_OutOfRange(t *testing.T) {
	var out bytes.Buffer
	for _, v := range []float64{-0.01, 5.01, math.NaN()} {
		assert.ErrorIs(t, runClassify(&out, v), grading.ErrInvalidInput)
	}
	assert.Empty(t, out.String())
}
