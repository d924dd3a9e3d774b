package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level                      Level
		info, debug, warn, errored bool
	}{
		{LevelQuiet, false, false, false, true},
		{LevelNormal, true, false, true, true},
		{LevelVerbose, true, true, true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := New(&buf, tt.level, false)

		log.Info("info %d", 1)
		log.Debug("debug %d", 2)
		log.Warn("warn %d", 3)
		log.Error("boom %d", 4)

		out := buf.String()
		assert.Equal(t, tt.info, strings.Contains(out, "info 1"), "level %d info", tt.level)
		assert.Equal(t, tt.debug, strings.Contains(out, "debug 2"), "level %d debug", tt.level)
		assert.Equal(t, tt.warn, strings.Contains(out, "warning: warn 3"), "level %d warn", tt.level)
		assert.Equal(t, tt.errored, strings.Contains(out, "error: boom 4"), "level %d error", tt.level)
	}
}

func TestLogger_Data(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelVerbose, true).Data("Fetched groups:", []string{"ПЗ-11"})
	assert.Contains(t, buf.String(), "Fetched groups:")
	assert.Contains(t, buf.String(), "[\n  \"ПЗ-11\"\n]")

	buf.Reset()
	New(&buf, LevelVerbose, false).Data("Fetched groups:", []string{"ПЗ-11"})
	assert.Contains(t, buf.String(), `["ПЗ-11"]`)

	buf.Reset()
	New(&buf, LevelNormal, true).Data("Fetched groups:", []string{"ПЗ-11"})
	assert.Empty(t, buf.String())
}
