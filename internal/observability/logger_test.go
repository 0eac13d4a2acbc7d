package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, FormatLogfmt)
	require.NoError(t, err)

	require.NoError(t, logger.Log("msg", "hello", "units", 5))
	line := buf.String()

	assert.Contains(t, line, "msg=hello")
	assert.Contains(t, line, "units=5")
	assert.Contains(t, line, "ts=")
	assert.Contains(t, line, "caller=")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, logger.Log("msg", "hello"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Contains(t, entry, "ts")
}

func TestNewLogger_UnknownFormat(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestTimeFunction(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, FormatLogfmt)
	require.NoError(t, err)

	require.NoError(t, TimeFunction(logger, "evaluate", func() error { return nil }))
	assert.Contains(t, buf.String(), "op=evaluate")
	assert.Contains(t, buf.String(), "msg=completed")

	buf.Reset()
	boom := errors.New("boom")
	err = TimeFunction(logger, "evaluate", func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.Contains(buf.String(), "err=boom"))
	assert.Contains(t, buf.String(), "level=error")
}
