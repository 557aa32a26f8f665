// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger.Info("query executed", slog.String(QueryTypeKey, "token"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "query executed", entry["msg"])
	assert.Equal(t, "token", entry["query_type"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatText, Output: &buf})

	logger.Info("should be dropped")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestFromEnv_Debug(t *testing.T) {
	t.Setenv("DATALINK_DEBUG", "1")

	cfg := FromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.AddSource)
}

func TestFromEnv_LevelPrecedence(t *testing.T) {
	t.Setenv("DATALINK_DEBUG", "")
	t.Setenv("DATALINK_LOG_LEVEL", "error")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := FromEnv()
	assert.Equal(t, "error", cfg.Level)
}

func TestSanitizeAPIKey(t *testing.T) {
	assert.Equal(t, "...6789", SanitizeAPIKey("123456789"))
	assert.Equal(t, "[REDACTED]", SanitizeAPIKey("abc"))
	assert.Equal(t, "[REDACTED]", SanitizeAPIKey(""))
}
