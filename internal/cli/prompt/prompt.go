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

// Package prompt provides interactive terminal prompts for configuration.
package prompt

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// SurveyPrompter implements interactive prompts using the survey library.
type SurveyPrompter struct {
	interactive bool
}

// NewSurveyPrompter creates a new survey-based prompter.
func NewSurveyPrompter(interactive bool) *SurveyPrompter {
	return &SurveyPrompter{
		interactive: interactive,
	}
}

// NewAutoPrompter creates a prompter that is interactive when stdin is a
// terminal.
func NewAutoPrompter() *SurveyPrompter {
	return NewSurveyPrompter(term.IsTerminal(int(os.Stdin.Fd())))
}

// IsInteractive returns whether the prompter can display interactive prompts.
func (sp *SurveyPrompter) IsInteractive() bool {
	return sp.interactive
}

// Confirm asks a yes/no question using survey.Confirm.
func (sp *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	if !sp.interactive {
		return false, fmt.Errorf("cannot prompt in non-interactive mode")
	}

	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}

	err := survey.AskOne(prompt, &result)
	return result, err
}

// Input collects a free-text value using survey.Input.
func (sp *SurveyPrompter) Input(message string) (string, error) {
	if !sp.interactive {
		return "", fmt.Errorf("cannot prompt in non-interactive mode")
	}

	var result string
	prompt := &survey.Input{
		Message: message,
	}

	err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required))
	return result, err
}

// Password collects a value without echoing it using survey.Password.
func (sp *SurveyPrompter) Password(message string) (string, error) {
	if !sp.interactive {
		return "", fmt.Errorf("cannot prompt in non-interactive mode")
	}

	var result string
	prompt := &survey.Password{
		Message: message,
	}

	err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required))
	return result, err
}
