package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/rendering"
	"github.com/jonathan/cgpa-calculator/internal/schemas"
)

func TestHTTPStatus(t *testing.T) {
	_, gradeErr := grading.GradeToPoint("Z")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", gradeErr, http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("term 1: %w", gradeErr), http.StatusBadRequest},
		{"validation", &ErrValidation{Field: "cgpa", Message: "required"}, http.StatusBadRequest},
		{"malformed body", &ErrMalformedBody{Cause: errors.New("EOF")}, http.StatusBadRequest},
		{"struct validation", validator.ValidationErrors{}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{}, http.StatusBadRequest},
		{"format", &rendering.UnsupportedFormatError{Format: "docx"}, http.StatusBadRequest},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"template", &rendering.TemplateError{Template: "x", Message: "boom"}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: cgpa - required", (&ErrValidation{Field: "cgpa", Message: "required"}).Error())

	cause := errors.New("unexpected EOF")
	err := &ErrMalformedBody{Cause: cause}
	assert.Equal(t, "malformed request body: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
}
