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

package shared

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for the datalink CLI
const (
	ExitSuccess      = 0
	ExitQueryFailed  = 1
	ExitInvalidInput = 2
	ExitConfigError  = 3
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewQueryError creates an error for failed query executions
func NewQueryError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitQueryFailed,
		Message: msg,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an error for unusable SQL input
func NewInvalidInputError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInvalidInput,
		Message: msg,
		Cause:   cause,
	}
}

// NewConfigError creates an error for configuration failures
func NewConfigError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConfigError,
		Message: msg,
		Cause:   cause,
	}
}

// HandleExitError checks if an error is an ExitError and exits with the appropriate code
func HandleExitError(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err.Error())

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	os.Exit(ExitQueryFailed)
}
