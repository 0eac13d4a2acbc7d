package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/grading"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Map a CGPA to its degree classification",
	RunE:  runClassifyCmd,
}

var classifyCGPA float64

func init() {
	classifyCmd.Flags().Float64VarP(&classifyCGPA, "cgpa", "c", 0, "CGPA between 0.00 and 5.00 (required)")

	if err := classifyCmd.MarkFlagRequired("cgpa"); err != nil {
		panic(fmt.Sprintf("failed to mark cgpa flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

func runClassifyCmd(cmd *cobra.Command, _ []string) error {
	return runClassify(cmd.OutOrStdout(), classifyCGPA)
}

func runClassify(out io.Writer, cgpa float64) error {
	if err := grading.CheckCGPA(cgpa); err != nil {
		return err
	}
	// The shown value and the band come from the same rounded GPA
	g := grading.GPAFromFloat(cgpa)
	_, _ = fmt.Fprintf(out, "%s / 5.00: %s\n", g, grading.ClassifyGPA(g))
	return nil
}
