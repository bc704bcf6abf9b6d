package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for lvl := TraceLevel; lvl <= FatalLevel; lvl++ {
		parsed, err := ParseLevel(strings.ToLower(LogLevelToString(lvl)))
		require.Nil(t, err)
		require.Equal(t, lvl, parsed)
	}
	_, err := ParseLevel("verbose")
	require.NotNil(t, err)
}

func TestNewLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.Nil(t, err)
	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")
	out := buf.String()
	require.False(t, strings.Contains(out, "hidden"))
	require.True(t, strings.Contains(out, "msg=shown"))
	require.True(t, strings.Contains(out, "level=warn"))
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud")
	require.NotNil(t, err)
}

func TestTraceAllowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "TRACE")
	require.Nil(t, err)
	level.Debug(logger).Log("msg", "shown")
	require.True(t, strings.Contains(buf.String(), "msg=shown"))
}
