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

package reference

import (
	"bytes"
	"strings"
	"testing"
)

func TestSchemaCommand(t *testing.T) {
	cmd := NewSchemaCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("schema command failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "CREATE EXTERNAL TABLE transactions") {
		t.Errorf("output missing transactions DDL: %q", got)
	}
	if !strings.Contains(got, "CREATE EXTERNAL TABLE token_transfers") {
		t.Errorf("output missing token_transfers DDL: %q", got)
	}
}

func TestExamplesCommand(t *testing.T) {
	cmd := NewExamplesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("examples command failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "Common Query Examples") {
		t.Errorf("output missing examples header: %q", got)
	}
}
