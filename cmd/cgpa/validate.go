package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a schema",
	Long: `Validates a transcript or result JSON file against a JSON Schema. Without --schema
the built-in transcript schema is used. Exits non-zero when validation fails.`,
	RunE: runValidateCmd,
}

var (
	validateSchema string
	validateJSON   string
	validateResult bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file (default built-in transcript schema)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")
	validateCmd.Flags().BoolVar(&validateResult, "result", false, "Use the built-in result schema instead of the transcript schema")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	return runValidate(validateSchema, validateJSON, validateResult, cmd.OutOrStdout())
}

func runValidate(schemaPath, jsonPath string, result bool, stdout io.Writer) error {
	var err error
	switch {
	case schemaPath != "":
		err = schemas.ValidateJSON(schemaPath, jsonPath)
	default:
		content, readErr := os.ReadFile(jsonPath)
		if readErr != nil {
			return fmt.Errorf("failed to read JSON file: %w", readErr)
		}
		if result {
			err = schemas.ValidateResult(content)
		} else {
			err = schemas.ValidateTranscript(content)
		}
	}

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprint(stdout, validationErr.Error())
			return fmt.Errorf("%s is not valid (%d error(s))", jsonPath, len(validationErr.Errors))
		}
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Validation passed: %s\n", jsonPath)
	return nil
}
