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

package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileStore persists credentials to a .env-style key/value file.
//
// Load never mutates the process environment: the file is parsed into a map
// rather than exported. Save rewrites the file with 0600 permissions,
// preserving unrelated keys already present.
type FileStore struct {
	path string
}

// NewFileStore creates a credential store backed by the .env file at path.
// The file does not need to exist until the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Name returns the store identifier.
func (s *FileStore) Name() string {
	return "env-file"
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load parses the .env file and extracts both credential keys.
func (s *FileStore) Load(ctx context.Context) (*Credentials, error) {
	values, err := godotenv.Read(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("reading credential file %s: %w", s.path, err)
	}

	endpoint := values[EndpointKey]
	token := values[TokenKey]
	if endpoint == "" || token == "" {
		return nil, ErrNotConfigured
	}

	return &Credentials{Endpoint: endpoint, Token: token}, nil
}

// Save writes both credential keys to the .env file, creating it (and its
// parent directory) if absent. Keys other than the credential pair survive
// the rewrite.
func (s *FileStore) Save(ctx context.Context, creds *Credentials) error {
	if creds == nil || creds.Endpoint == "" || creds.Token == "" {
		return fmt.Errorf("refusing to save incomplete credentials")
	}

	values, err := godotenv.Read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading credential file %s: %w", s.path, err)
		}
		values = map[string]string{}
	}

	values[EndpointKey] = creds.Endpoint
	values[TokenKey] = creds.Token

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating credential directory %s: %w", dir, err)
		}
	}

	if err := godotenv.Write(values, s.path); err != nil {
		return fmt.Errorf("writing credential file %s: %w", s.path, err)
	}

	// godotenv.Write uses default permissions; tighten them
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("restricting credential file permissions: %w", err)
	}

	return nil
}
