package main

import (
	"fmt"
	"io"

	gokitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/observability"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute term GPAs and the CGPA for a transcript",
	Long: `Evaluates every term of a transcript JSON file and writes the result JSON:
per-course grades and points, per-term GPA, the cumulative CGPA and its class.`,
	RunE: runCalculateCmd,
}

var (
	calculateInput   string
	calculateOutput  string
	calculateVerbose bool
)

func init() {
	calculateCmd.Flags().StringVarP(&calculateInput, "in", "i", "", "Path to transcript JSON file (required)")
	calculateCmd.Flags().StringVarP(&calculateOutput, "out", "o", "", "Path to output result JSON file (default stdout)")
	calculateCmd.Flags().BoolVarP(&calculateVerbose, "verbose", "v", false, "Print term and overall summaries")

	if err := calculateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(calculateCmd)
}

func runCalculateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = calculateVerbose
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	return runCalculate(logger, calculateInput, calculateOutput, cfg.Verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runCalculate(logger gokitlog.Logger, input, output string, verbose bool, stdout, stderr io.Writer) error {
	transcript, err := readTranscript(input)
	if err != nil {
		return err
	}

	var result types.OverallResult
	err = observability.TimeFunction(logger, "evaluate", func() error {
		var evalErr error
		result, evalErr = grading.Evaluate(transcript)
		return evalErr
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate transcript: %w", err)
	}

	report := types.NewReport(transcript.Student, result)
	data, err := marshalReport(report)
	if err != nil {
		return err
	}
	warnIfResultInvalid(data, stderr)

	// Summaries go to stderr when the JSON itself is going to stdout
	if verbose {
		summaryOut := stdout
		if output == "" {
			summaryOut = stderr
		}
		observability.NewPrinter(summaryOut).PrintReport(report)
	}

	if err := writeOutput(output, data, stdout); err != nil {
		return err
	}
	if output != "" {
		_, _ = fmt.Fprintf(stdout, "CGPA: %s (%s)\nOutput: %s\n", cgpaDisplay(result.CGPA), result.Classification, output)
	}
	return nil
}

// cgpaDisplay formats a CGPA as "X.XX / 5.00"
func cgpaDisplay(g types.GPA) string {
	if !g.IsDefined() {
		return "undefined"
	}
	return g.String() + " / 5.00"
}
