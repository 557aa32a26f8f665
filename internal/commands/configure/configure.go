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

package configure

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/datalink/internal/cli/prompt"
	"github.com/tombee/datalink/internal/commands/shared"
	"github.com/tombee/datalink/pkg/secrets"
)

// NewCommand creates the configure command
func NewCommand() *cobra.Command {
	var storeName string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Set up data API credentials interactively",
		Long: `Set up the data API endpoint URL and auth token.

Credentials are saved to the system keychain by default. Use --store file
to write them to ~/.config/datalink/credentials instead (useful on headless
machines without a keychain).

Environment variables DATA_API_KEY and DATA_AUTH_TOKEN always take
precedence over saved credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd, storeName)
		},
	}

	cmd.Flags().StringVar(&storeName, "store", "keychain", "Credential store to write to (keychain, file)")

	return cmd
}

func runConfigure(cmd *cobra.Command, storeName string) error {
	var store secrets.Store
	switch storeName {
	case "keychain":
		store = secrets.NewKeychainStore(secrets.DefaultKeychainService)
	case "file":
		store = secrets.NewFileStore(shared.DefaultCredentialsPath())
	default:
		return shared.NewInvalidInputError(fmt.Sprintf("unknown store %q (must be keychain or file)", storeName), nil)
	}

	prompter := prompt.NewAutoPrompter()
	if !prompter.IsInteractive() {
		return shared.NewConfigError("configure requires an interactive terminal; set DATA_API_KEY and DATA_AUTH_TOKEN instead", nil)
	}

	conn, err := shared.NewConnection(store, shared.NewLogger())
	if err != nil {
		return err
	}

	if err := conn.Configure(cmd.Context(), prompter); err != nil {
		return shared.NewConfigError("configuration failed", err)
	}

	if !shared.GetQuiet() {
		cmd.Printf("Credentials saved to %s store.\n", store.Name())
	}
	return nil
}
