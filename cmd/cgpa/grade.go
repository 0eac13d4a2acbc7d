package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Convert a score or a letter grade to its grade point",
	Long: `Converts a raw score (0-100) to its letter and grade point, or a letter (A-F) to its point.
When both are given the score wins and the letter must agree with it.`,
	RunE: runGradeCmd,
}

var (
	gradeScore  int
	gradeLetter string
)

func init() {
	gradeCmd.Flags().IntVarP(&gradeScore, "score", "s", 0, "Raw score between 0 and 100")
	gradeCmd.Flags().StringVarP(&gradeLetter, "letter", "l", "", "Letter grade A-F (case-insensitive)")

	rootCmd.AddCommand(gradeCmd)
}

func runGradeCmd(cmd *cobra.Command, _ []string) error {
	var score *int
	if cmd.Flags().Changed("score") {
		score = types.IntPtr(gradeScore)
	}
	return runGrade(cmd.OutOrStdout(), score, gradeLetter)
}

func runGrade(out io.Writer, score *int, letter string) error {
	if score == nil && letter == "" {
		return fmt.Errorf("either --score or --letter must be provided")
	}

	graded, err := grading.GradeCourse(types.Course{Score: score, Grade: letter, Unit: 1})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Grade: %s\nPoint: %d\n", graded.Grade, graded.Point)
	return nil
}
