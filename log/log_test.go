package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"crit":    LevelCrit,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitLoggerToFiltersLevel(t *testing.T) {
	prev := Root()
	defer SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, "warn", false))

	Info(BenchMonitoring, "hidden")
	Warn(BenchMonitoring, "shown", "sum", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN [")
	assert.Contains(t, out, "module=bench_mod")
	assert.Contains(t, out, "sum=42")
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	assert.Error(t, InitLoggerTo(&bytes.Buffer{}, "chatty", false))
}

func TestDebugRespectsModules(t *testing.T) {
	prev := Root()
	defer SetDefault(prev)
	defer DisableModule(ReportMonitoring)

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, "debug", false))

	Debug(ReportMonitoring, "before enable")
	assert.Empty(t, buf.String())

	EnableModules(" report_mod ,")
	Debug(ReportMonitoring, "after enable")
	assert.Contains(t, buf.String(), "after enable")
}

func TestColoredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(ethlog.NewTerminalHandlerWithLevel(&buf, LevelInfo, true))
	l.Error(CLIMonitoring, "boom")
	assert.Contains(t, buf.String(), "\033[31mERROR\033[0m")
}

func TestDiscardHandler(t *testing.T) {
	l := NewLogger(ethlog.DiscardHandler())
	assert.False(t, l.Enabled(context.Background(), LevelCrit))
	l.Info(BenchMonitoring, "nothing")
}

func TestTraceRespectsModules(t *testing.T) {
	prev := Root()
	defer SetDefault(prev)
	defer DisableModule(BenchMonitoring)

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, "trace", false))

	Trace(BenchMonitoring, "quiet")
	assert.Empty(t, buf.String())

	EnableModule(BenchMonitoring)
	Trace(BenchMonitoring, "loud", "stage", "generate")
	assert.Contains(t, buf.String(), "TRACE")
	assert.Contains(t, buf.String(), "stage=generate")
}
