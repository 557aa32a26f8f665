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

package prompt

import "testing"

func TestSurveyPrompter_NonInteractive(t *testing.T) {
	sp := NewSurveyPrompter(false)

	if sp.IsInteractive() {
		t.Error("IsInteractive() = true, want false")
	}

	if _, err := sp.Confirm("continue?", false); err == nil {
		t.Error("Confirm() should fail in non-interactive mode")
	}
	if _, err := sp.Input("url"); err == nil {
		t.Error("Input() should fail in non-interactive mode")
	}
	if _, err := sp.Password("token"); err == nil {
		t.Error("Password() should fail in non-interactive mode")
	}
}

func TestSurveyPrompter_Interactive(t *testing.T) {
	sp := NewSurveyPrompter(true)
	if !sp.IsInteractive() {
		t.Error("IsInteractive() = false, want true")
	}
}
