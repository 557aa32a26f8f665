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

package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tombee/datalink/internal/commands/shared"
)

func TestVersionCommand(t *testing.T) {
	shared.SetVersion("1.2.3", "abc123", "2026-01-01")

	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "datalink version 1.2.3") {
		t.Errorf("output missing version line: %q", got)
	}
	if !strings.Contains(got, "abc123") {
		t.Errorf("output missing commit: %q", got)
	}
}
