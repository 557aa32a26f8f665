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

package errors

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with field",
			err:  &ValidationError{Field: "sql", Message: "missing required parameter"},
			want: "validation failed on sql: missing required parameter",
		},
		{
			name: "without field",
			err:  &ValidationError{Message: "bad input"},
			want: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "message only",
			err:  &APIError{Code: CodeAPIError, Message: "Invalid SQL query length"},
			want: "api error: Invalid SQL query length",
		},
		{
			name: "with http status",
			err:  &APIError{Code: CodeAPIError, StatusCode: 500, Message: "upstream failure"},
			want: "api error [HTTP 500]: upstream failure",
		},
		{
			name: "with request id",
			err:  &APIError{Code: CodeAPIError, Message: "bad query", RequestID: "req-1"},
			want: "api error: bad query (request-id: req-1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	cause := New("file missing")
	err := &ConfigError{Key: "chain", Reason: "required field", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error",
			err:  NewAPIError("boom"),
			want: CodeAPIError,
		},
		{
			name: "api error with custom code preserved",
			err:  &APIError{Code: "RATE_LIMITED", Message: "slow down"},
			want: "RATE_LIMITED",
		},
		{
			name: "config error",
			err:  &ConfigError{Key: "chain", Reason: "missing"},
			want: CodeConfigurationError,
		},
		{
			name: "wrapped api error",
			err:  Wrap(NewAPIError("boom"), "executing query"),
			want: CodeAPIError,
		},
		{
			name: "plain error",
			err:  New("something broke"),
			want: CodeExecutionError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
