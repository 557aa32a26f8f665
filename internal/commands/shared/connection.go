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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tombee/datalink/internal/log"
	"github.com/tombee/datalink/pkg/data"
	"github.com/tombee/datalink/pkg/secrets"
)

// DefaultCredentialsPath returns the on-disk credential file location,
// ~/.config/datalink/credentials.
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "datalink", "credentials")
}

// NewLogger builds the CLI logger from the environment, with --verbose
// forcing debug level.
func NewLogger() *slog.Logger {
	cfg := log.FromEnv()
	if GetVerbose() {
		cfg.Level = "debug"
	}
	if GetQuiet() {
		cfg.Level = "error"
	}
	return log.New(cfg)
}

// NewStore builds the default credential store chain: environment variables
// first, then the credential file, then the system keychain.
func NewStore() secrets.Store {
	return secrets.NewFallbackStore(
		secrets.NewEnvStore(),
		secrets.NewFileStore(DefaultCredentialsPath()),
		secrets.NewKeychainStore(secrets.DefaultKeychainService),
	)
}

// NewConnection builds the data connector used by CLI commands, honoring the
// global --config flag. The config file is optional; when absent the
// connector runs with defaults.
func NewConnection(store secrets.Store, logger *slog.Logger) (*data.Connection, error) {
	cfg, err := data.LoadConfigFile(GetConfigPath())
	if err != nil {
		return nil, NewConfigError("loading config", err)
	}

	if GetConfigPath() != "" {
		if cfg, err = data.ValidateConfig(cfg); err != nil {
			return nil, NewConfigError("invalid config", err)
		}
	}

	conn, err := data.New(cfg, store, data.WithLogger(logger))
	if err != nil {
		return nil, NewConfigError("creating data connection", err)
	}
	return conn, nil
}
