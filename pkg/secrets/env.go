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
	"os"
)

// EnvStore reads credentials from the process environment.
// It is read-only: interactive configuration must target a writable store.
type EnvStore struct{}

// NewEnvStore creates an environment-variable credential store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Name returns the store identifier.
func (s *EnvStore) Name() string {
	return "env"
}

// Load reads DATA_API_KEY and DATA_AUTH_TOKEN from the environment.
func (s *EnvStore) Load(ctx context.Context) (*Credentials, error) {
	endpoint := os.Getenv(EndpointKey)
	token := os.Getenv(TokenKey)

	if endpoint == "" || token == "" {
		return nil, ErrNotConfigured
	}

	return &Credentials{Endpoint: endpoint, Token: token}, nil
}

// Save is unsupported; the process environment is not a persistence target.
func (s *EnvStore) Save(ctx context.Context, creds *Credentials) error {
	return ErrReadOnly
}
