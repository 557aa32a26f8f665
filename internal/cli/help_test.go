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

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
)

func TestHelpCommandJSON(t *testing.T) {
	rootCmd := NewRootCommand()
	rootCmd.AddCommand(&cobra.Command{
		Use:   "query",
		Short: "Execute a SQL query",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	})

	helpCmd := NewHelpCommand(rootCmd)
	var out bytes.Buffer
	helpCmd.SetOut(&out)
	helpCmd.SetArgs([]string{"--json"})

	if err := helpCmd.Execute(); err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	var resp HelpResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("help output is not valid JSON: %v", err)
	}

	if !resp.Success {
		t.Error("help response success = false")
	}

	found := false
	for _, c := range resp.Commands {
		if c.Name == "query" {
			found = true
		}
	}
	if !found {
		t.Error("help response missing query command")
	}

	if len(resp.GlobalFlags) == 0 {
		t.Error("help response missing global flags")
	}
}

func TestHelpCommandUnknown(t *testing.T) {
	rootCmd := NewRootCommand()
	rootCmd.AddCommand(&cobra.Command{Use: "query", Short: "Execute a SQL query"})

	helpCmd := NewHelpCommand(rootCmd)
	helpCmd.SetArgs([]string{"nonexistent"})
	helpCmd.SetOut(new(bytes.Buffer))
	helpCmd.SetErr(new(bytes.Buffer))

	if err := helpCmd.Execute(); err == nil {
		t.Error("help for unknown command should fail")
	}
}
