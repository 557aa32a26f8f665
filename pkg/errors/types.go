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

import "fmt"

// ValidationError represents user input validation failures.
// Use this for invalid action parameters, malformed data, or constraint violations.
type ValidationError struct {
	// Field identifies which input field failed validation
	Field string

	// Message is the human-readable error description
	Message string

	// Suggestion provides actionable guidance for fixing the error
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError represents a resource not found error.
// Use this when a requested resource does not exist.
type NotFoundError struct {
	// Resource is the type of resource (e.g., "action", "connection")
	Resource string

	// ID is the identifier that was not found
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConfigError represents configuration problems.
// Use this for missing configuration fields, absent credentials, or invalid values.
type ConfigError struct {
	// Key is the configuration key that has the problem (e.g., "chain", "DATA_AUTH_TOKEN")
	Key string

	// Reason explains what's wrong with the configuration
	Reason string

	// Cause is the underlying error (e.g., file read error, parse error)
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error at %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config error: %s", e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// APIError represents upstream data API failures: bad query length, non-200
// HTTP responses, non-zero application status codes, and transport errors.
type APIError struct {
	// Code is the stable machine-readable error code (e.g., "API_ERROR")
	Code string

	// StatusCode is the HTTP status code (if applicable)
	StatusCode int

	// Message is the human-readable error message
	Message string

	// Suggestion provides actionable guidance for resolution
	Suggestion string

	// RequestID correlates this error with upstream logs
	RequestID string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := "api error"

	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s [HTTP %d]", msg, e.StatusCode)
	}

	msg = fmt.Sprintf("%s: %s", msg, e.Message)

	if e.RequestID != "" {
		msg = fmt.Sprintf("%s (request-id: %s)", msg, e.RequestID)
	}

	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *APIError) Unwrap() error {
	return e.Cause
}
