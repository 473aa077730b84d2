package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitSetsGlobalLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	log := Logger().Output(&buf)
	log.Info().Str("component", "search").Msg("cache invalidated")

	logged := buf.String()
	assert.Contains(t, logged, `"level":"info"`)
	assert.Contains(t, logged, `"component":"search"`)
	assert.Contains(t, logged, `"message":"cache invalidated"`)
}
