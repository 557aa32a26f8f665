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
	"fmt"
)

// Stable error codes attached to APIError and reported in query results.
const (
	// CodeAPIError covers upstream failures: bad query length, non-200 HTTP
	// responses, non-zero application status codes, transport errors.
	CodeAPIError = "API_ERROR"

	// CodeConfigurationError covers missing configuration or credentials.
	CodeConfigurationError = "CONFIGURATION_ERROR"

	// CodeExecutionError is the fallback for untyped failures.
	CodeExecutionError = "EXECUTION_ERROR"
)

// NewAPIError creates an APIError with the default API_ERROR code.
func NewAPIError(message string) *APIError {
	return &APIError{
		Code:    CodeAPIError,
		Message: message,
	}
}

// Wrap creates a new error that wraps the given error with additional context.
// If err is nil, returns nil.
//
// Usage:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "doing something")
//	}
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf creates a new error that wraps the given error with formatted context.
// If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target type,
// and if one is found, sets target to that error value and returns true.
// This is a convenience wrapper around errors.As from the standard library.
//
// Usage:
//
//	var configErr *ConfigError
//	if errors.As(err, &configErr) {
//	    log.Printf("Config error at key: %s", configErr.Key)
//	}
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err,
// if err's type contains an Unwrap method returning error.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New from the standard library.
func New(message string) error {
	return errors.New(message)
}

// ErrorCode extracts the stable code from an error for structured reporting.
// Typed errors map to their taxonomy code; everything else is EXECUTION_ERROR.
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code != "" {
			return apiErr.Code
		}
		return CodeAPIError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return CodeConfigurationError
	}

	return CodeExecutionError
}
