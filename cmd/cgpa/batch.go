package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cgpa-calculator/internal/grading"
	"github.com/jonathan/cgpa-calculator/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate every transcript in a directory",
	Long: `Evaluates each *.json transcript in --dir independently and writes <name>.result.json
into --out. A transcript that fails to evaluate does not stop the others; the command
exits non-zero if any failed.`,
	RunE: runBatchCmd,
}

var (
	batchDir     string
	batchOutDir  string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of transcript JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "Output directory for result files (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent evaluations (default from config)")

	if err := batchCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.BatchWorkers = batchWorkers
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	return runBatch(cmd.Context(), logger, batchDir, batchOutDir, cfg.BatchWorkers, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resultSuffix names the files batch writes
const resultSuffix = ".result.json"

// batchOutcome is the result of evaluating one transcript file
type batchOutcome struct {
	Input          string
	Output         string
	CGPA           types.GPA
	Classification types.Classification
	Err            error
}

func runBatch(ctx context.Context, logger gokitlog.Logger, dir, outDir string, workers int, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", workers)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list transcripts: %w", err)
	}
	// Outputs of an earlier run into the same directory are not transcripts
	files := matches[:0]
	for _, f := range matches {
		if !strings.HasSuffix(f, resultSuffix) {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("no *.json transcripts found in %s", dir)
	}

	outcomes := make([]batchOutcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := evaluateFile(file, outDir, stderr)
			outcomes[i] = outcome
			if outcome.Err != nil {
				_ = level.Warn(logger).Log("msg", "transcript failed", "file", file, "err", outcome.Err)
			} else {
				_ = level.Info(logger).Log("msg", "transcript evaluated", "file", file, "cgpa", outcome.CGPA)
			}
			// Only output IO failures abort the batch
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			_, _ = fmt.Fprintf(stdout, "FAIL  %s: %v\n", filepath.Base(o.Input), o.Err)
			continue
		}
		_, _ = fmt.Fprintf(stdout, "OK    %s: %s (%s) -> %s\n",
			filepath.Base(o.Input), cgpaDisplay(o.CGPA), o.Classification, o.Output)
	}
	_, _ = fmt.Fprintf(stdout, "Evaluated %d transcript(s), %d failed\n", len(outcomes), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d transcript(s) failed", failed, len(outcomes))
	}
	return nil
}

// evaluateFile evaluates one transcript. Evaluation problems are recorded on
// the outcome; the returned error is reserved for failures writing output.
func evaluateFile(file, outDir string, stderr io.Writer) (batchOutcome, error) {
	outcome := batchOutcome{Input: file}

	transcript, err := readTranscript(file)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}
	result, err := grading.Evaluate(transcript)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}

	report := types.NewReport(transcript.Student, result)
	data, err := marshalReport(report)
	if err != nil {
		return outcome, err
	}
	warnIfResultInvalid(data, stderr)

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + resultSuffix
	outcome.Output = filepath.Join(outDir, name)
	if err := writeOutput(outcome.Output, data, nil); err != nil {
		return outcome, err
	}

	outcome.CGPA = result.CGPA
	outcome.Classification = result.Classification
	return outcome, nil
}
