package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/rendering"
	"github.com/jonathan/cgpa-calculator/internal/schemas"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

var validate = validator.New()

// ConvertRequest is the body of POST /grades/convert
type ConvertRequest struct {
	Score *int   `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	Grade string `json:"grade,omitempty" validate:"required_without=Score"`
}

// ConvertResponse is the letter and point for a score or grade
type ConvertResponse struct {
	Grade types.Letter `json:"grade"`
	Point int          `json:"point"`
}

// ClassifyResponse is the body returned by GET /classify
type ClassifyResponse struct {
	CGPA           types.GPA            `json:"cgpa"`
	Classification types.Classification `json:"classification"`
}

// handleConvertGrade maps a score or a letter to its grade and point
func (s *Server) handleConvertGrade(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	// A unit of 1 lets the course path apply the score/grade agreement rule
	graded, err := grading.GradeCourse(types.Course{Score: req.Score, Grade: req.Grade, Unit: 1})
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ConvertResponse{Grade: graded.Grade, Point: graded.Point})
}

// handleClassify maps ?cgpa= to its degree class
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("cgpa")
	if raw == "" {
		s.errorFromErr(w, &ErrValidation{Field: "cgpa", Message: "query parameter is required"})
		return
	}

	cgpa, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "cgpa", Message: fmt.Sprintf("%q is not a number", raw)})
		return
	}
	if err := grading.CheckCGPA(cgpa); err != nil {
		s.errorFromErr(w, err)
		return
	}

	g := grading.GPAFromFloat(cgpa)
	s.jsonResponse(w, http.StatusOK, ClassifyResponse{
		CGPA:           g,
		Classification: grading.ClassifyGPA(g),
	})
}

// handleTermGPA evaluates a single term
func (s *Server) handleTermGPA(w http.ResponseWriter, r *http.Request) {
	var term types.Term
	if err := decodeJSON(w, r, &term); err != nil {
		s.errorFromErr(w, err)
		return
	}
	if err := term.Validate(); err != nil {
		s.errorFromErr(w, err)
		return
	}

	result, err := grading.EvaluateTerm(term)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCGPA evaluates a full transcript and returns the stamped report
func (s *Server) handleCGPA(w http.ResponseWriter, r *http.Request) {
	report, err := s.evaluateTranscript(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleReport evaluates a transcript and renders it as text, LaTeX or JSON
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.reportFormat
	}

	report, err := s.evaluateTranscript(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	out, err := rendering.RenderReport(report, format, s.template)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

// evaluateTranscript reads, schema-checks, validates and evaluates a transcript body
func (s *Server) evaluateTranscript(w http.ResponseWriter, r *http.Request) (*types.Report, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateTranscript(body); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			// the document itself did not parse
			return nil, &ErrMalformedBody{Cause: loadErr.Cause}
		}
		return nil, err
	}

	var transcript types.Transcript
	if err := json.Unmarshal(body, &transcript); err != nil {
		return nil, &ErrMalformedBody{Cause: err}
	}
	if err := transcript.Validate(); err != nil {
		return nil, err
	}

	result, err := grading.Evaluate(transcript)
	if err != nil {
		return nil, err
	}
	return types.NewReport(transcript.Student, result), nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if HTTPStatus(err) == http.StatusRequestEntityTooLarge {
			return err
		}
		return &ErrMalformedBody{Cause: err}
	}
	return nil
}

func contentType(format string) string {
	switch format {
	case rendering.FormatJSON:
		return "application/json"
	case rendering.FormatLaTeX:
		return "application/x-latex; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
