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

// Package reference implements the schema and examples commands.
package reference

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/datalink/internal/commands/shared"
	"github.com/tombee/datalink/pkg/data"
)

// NewSchemaCommand creates the schema command
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the queryable database schema",
		Long:  `Display the table definitions (DDL) for the queryable blockchain tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReference(cmd, "schema", data.DatabaseSchema())
		},
	}
}

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show example SQL queries",
		Long:  `Display example queries demonstrating common blockchain data analysis patterns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReference(cmd, "examples", data.QueryExamples())
		},
	}
}

func printReference(cmd *cobra.Command, kind, text string) error {
	if shared.GetJSON() {
		out, err := json.MarshalIndent(map[string]string{kind: text}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kind, err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Println(text)
	return nil
}
