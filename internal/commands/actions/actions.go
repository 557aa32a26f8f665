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

// Package actions implements the actions listing command.
package actions

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tombee/datalink/internal/commands/shared"
	"github.com/tombee/datalink/pkg/connection"
)

// NewCommand creates the actions command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List available connection actions",
		Long: `List every registered connection and the actions it exposes, with
parameter names and types. Agent frameworks invoke these actions by
"connection.action" reference, e.g. data.execute-query.`,
		RunE: runActions,
	}
}

func runActions(cmd *cobra.Command, args []string) error {
	conn, err := shared.NewConnection(shared.NewStore(), shared.NewLogger())
	if err != nil {
		return err
	}

	registry := connection.NewRegistry()
	if err := registry.Register(conn); err != nil {
		return fmt.Errorf("registering connection: %w", err)
	}

	if shared.GetJSON() {
		listing := make(map[string]map[string]connection.Action)
		for _, name := range registry.List() {
			c, err := registry.Get(name)
			if err != nil {
				return err
			}
			listing[name] = c.Actions()
		}
		out, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding actions: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	for _, name := range registry.List() {
		c, err := registry.Get(name)
		if err != nil {
			return err
		}

		configured := "not configured"
		if c.IsConfigured(cmd.Context(), shared.GetVerbose()) {
			configured = "configured"
		}
		cmd.Printf("%s (%s)\n", name, configured)

		actions := c.Actions()
		actionNames := make([]string, 0, len(actions))
		for actionName := range actions {
			actionNames = append(actionNames, actionName)
		}
		sort.Strings(actionNames)

		for _, actionName := range actionNames {
			action := actions[actionName]
			cmd.Printf("  %s.%s - %s\n", name, actionName, action.Description)
			for _, param := range action.Parameters {
				required := "optional"
				if param.Required {
					required = "required"
				}
				cmd.Printf("    %s (%s, %s): %s\n", param.Name, param.Type, required, param.Description)
			}
		}
	}

	return nil
}
