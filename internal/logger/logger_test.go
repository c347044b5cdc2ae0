package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"codeberg.org/mutker/errcode/errcode/syscode"
	"codeberg.org/mutker/errcode/internal/errors"
	"codeberg.org/mutker/errcode/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)

	err := errors.New().Wrap(errors.ErrRecordJournal, fmt.Errorf("database is locked"))
	log.ErrorWithCode(err).Msg("record failed")

	out := decode(t, &buf)
	assert.Equal(t, "error", out["level"])
	assert.Equal(t, "record_journal_failed", out["error_code"])
	assert.Equal(t, "Failed to record error code: database is locked", out["error_message"])
	assert.Equal(t, "database is locked", out["error"])
	assert.Equal(t, "record failed", out["message"])
}

func TestWithCode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf)

	log.WithCode(syscode.FromEnumWithMessage(syscode.TimedOut, "dial journal")).Send()

	out := decode(t, &buf)
	code, ok := out["code"].(map[string]any)
	require.True(t, ok, "code is an object: %v", out)
	assert.Equal(t, "generic", code["category"])
	assert.EqualValues(t, int(syscode.TimedOut), code["value"])
	assert.Equal(t, "dial journal", code["message"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want logger.LogLevel
		ok   bool
	}{
		{"debug", logger.DebugLevel, true},
		{"info", logger.InfoLevel, true},
		{"warning", logger.WarnLevel, true},
		{"warn", logger.WarnLevel, true},
		{"error", logger.ErrorLevel, true},
		{"loud", logger.WarnLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDefaultBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Default().Info().Msg("discarded")
	})
}
