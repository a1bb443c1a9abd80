package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONSlog(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		lines = append(lines, m)
	}
	return lines
}

func TestSlogLogger_RequestLine(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelDebug)

	log.Debug(context.Background(), "request completed",
		"request_id", "8f0c", "method", "GET", "endpoint", "/markbook", "status", 200)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "request completed", lines[0]["msg"])
	assert.Equal(t, "/markbook", lines[0]["endpoint"])
	assert.EqualValues(t, 200, lines[0]["status"])
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "logged in")
	log.Warn(ctx, "request failed", "error", "request timed out")
	log.Error(ctx, "recovered from panic")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "ERROR", lines[1]["level"])
}

func TestSlogLogger_RedactsSecrets(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelDebug)

	log.With("Authorization", "Bearer session-1").
		Info(context.Background(), "login", "student", "42850012", "password", "hunter2", "refresh_token", "r-1")

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "session-1")
	assert.NotContains(t, out, "r-1")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, Redacted, lines[0]["password"])
	assert.Equal(t, Redacted, lines[0]["Authorization"])
	assert.Equal(t, "42850012", lines[0]["student"])
}

func TestRedact_LeavesArgsAlone(t *testing.T) {
	args := []any{"endpoint", "/markbook", "status", 401}
	assert.Equal(t, args, redact(args))

	odd := []any{"password"}
	assert.Equal(t, odd, redact(odd))

	in := []any{"pin", "1234", 7, "x"}
	out := redact(in)
	assert.Equal(t, []any{"pin", Redacted, 7, "x"}, out)
	assert.Equal(t, "1234", in[1], "input slice must not be modified")
}

func TestNewSlogLogger_NilFallsBackToDefault(t *testing.T) {
	log := NewSlogLogger(nil)
	require.NotNil(t, log.l)
	log.Info(context.TODO(), "ok")
}
