package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/rendering"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a student result report",
	Long: `Evaluates a transcript and renders the student's result report: name, matric number,
department, the course table for each term, term GPAs, the CGPA and its classification.`,
	RunE: runRenderCmd,
}

var (
	renderInput    string
	renderFormat   string
	renderTemplate string
	renderOutput   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to transcript JSON file (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Report format: text, latex or json (default from config)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Custom text/template file overriding the built-in one")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output report file (default stdout)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.ReportFormat = renderFormat
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = renderTemplate
	}

	return runRender(renderInput, cfg.ReportFormat, cfg.Template, renderOutput, cmd.OutOrStdout())
}

func runRender(input, format, templatePath, output string, stdout io.Writer) error {
	transcript, err := readTranscript(input)
	if err != nil {
		return err
	}

	result, err := grading.Evaluate(transcript)
	if err != nil {
		return fmt.Errorf("failed to evaluate transcript: %w", err)
	}

	rendered, err := rendering.RenderReport(types.NewReport(transcript.Student, result), format, templatePath)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := writeOutput(output, []byte(rendered), stdout); err != nil {
		return err
	}
	if output != "" {
		_, _ = fmt.Fprintf(stdout, "Report written to %s\n", output)
	}
	return nil
}
