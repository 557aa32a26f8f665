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

package query

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombee/datalink/internal/commands/shared"
	"github.com/tombee/datalink/pkg/data"
)

// NewCommand creates the query command
func NewCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "query [sql]",
		Short: "Execute a SQL query against the data API",
		Long: `Execute a read-only SQL query (SELECT or WITH) against the blockchain
data API and print the result rows as JSON.

The query is read from the argument, or from stdin when no argument is given.
Input may also be a JSON document containing the query under a "query" or
"sql" key; the statement is extracted automatically. Use --raw to send the
input unmodified, skipping extraction and the read-only check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Send input as-is without SQL extraction")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, raw bool) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return shared.NewInvalidInputError("reading query input", err)
	}

	sql := input
	if !raw {
		sql = data.ExtractSQLQuery(input)
		if sql == "" {
			return shared.NewInvalidInputError("no valid read-only SQL query found in input", nil)
		}
	}

	conn, err := shared.NewConnection(shared.NewStore(), shared.NewLogger())
	if err != nil {
		return err
	}

	result := conn.ExecuteQuery(cmd.Context(), sql)

	if shared.GetJSON() {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		cmd.Println(string(out))
	} else if result.Success {
		out, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		cmd.Println(string(out))
		if !shared.GetQuiet() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d row(s), query type %s\n", result.Metadata.Total, result.Metadata.QueryType)
		}
	}

	if !result.Success {
		return shared.NewQueryError(fmt.Sprintf("[%s] %s", result.Error.Code, result.Error.Message), nil)
	}
	return nil
}

// readInput returns the SQL (or JSON payload) from the argument or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
