package observability

import (
	"fmt"
	"io"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Log formats accepted by NewLogger
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// NewLogger builds a go-kit logger in the given format with timestamp and
// caller keyvals attached.
func NewLogger(w io.Writer, format string) (gokitlog.Logger, error) {
	var logger gokitlog.Logger
	switch format {
	case "", FormatLogfmt:
		logger = gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	case FormatJSON:
		logger = gokitlog.NewJSONLogger(gokitlog.NewSyncWriter(w))
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, FormatLogfmt, FormatJSON)
	}
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
	return logger, nil
}

// NopLogger discards everything; used by tests and quiet CLI runs
func NopLogger() gokitlog.Logger {
	return gokitlog.NewNopLogger()
}

// TimeFunction logs the start and outcome of fn along with its duration.
func TimeFunction(logger gokitlog.Logger, name string, fn func() error) error {
	start := time.Now()
	_ = level.Debug(logger).Log("msg", "starting", "op", name)

	err := fn()

	elapsed := time.Since(start)
	if err != nil {
		_ = level.Error(logger).Log("msg", "failed", "op", name, "err", err, "took", elapsed)
	} else {
		_ = level.Info(logger).Log("msg", "completed", "op", name, "took", elapsed)
	}
	return err
}
