package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gokitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/config"
	"github.com/jonathan/cgpa-calculator/internal/observability"
	"github.com/jonathan/cgpa-calculator/internal/schemas"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

// loadConfig reads --config when given, validates it, applies --log-format
// and fills the gaps from the built-in defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}

	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// newLogger writes structured logs to stderr so stdout stays clean for results
func newLogger(cfg config.Config) (gokitlog.Logger, error) {
	return observability.NewLogger(os.Stderr, cfg.LogFormat)
}

// readTranscript loads a transcript file, checks it against the transcript
// schema and the struct validation tags.
func readTranscript(path string) (types.Transcript, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("failed to read transcript file: %w", err)
	}
	return parseTranscript(content)
}

func parseTranscript(content []byte) (types.Transcript, error) {
	if err := schemas.ValidateTranscript(content); err != nil {
		return types.Transcript{}, fmt.Errorf("transcript rejected: %w", err)
	}

	var transcript types.Transcript
	if err := json.Unmarshal(content, &transcript); err != nil {
		return types.Transcript{}, fmt.Errorf("failed to unmarshal transcript JSON: %w", err)
	}
	if err := transcript.Validate(); err != nil {
		return types.Transcript{}, fmt.Errorf("transcript rejected: %w", err)
	}
	return transcript, nil
}

// writeOutput writes content to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, content []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(content)
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// marshalReport renders a report as indented JSON with a trailing newline
func marshalReport(report *types.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// warnIfResultInvalid checks generated output against the result schema.
// Failures are reported on stderr and never stop the command.
func warnIfResultInvalid(data []byte, stderr io.Writer) {
	err := schemas.ValidateResult(data)
	if err == nil {
		return
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	switch {
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(stderr, "Warning: Generated result does not validate against schema: %v\n", err)
	case errors.As(err, &schemaLoadErr):
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
	default:
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
}
