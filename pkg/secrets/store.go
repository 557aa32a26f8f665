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

// Package secrets provides credential storage for the data API connector.
//
// Credentials are two named values: the query endpoint URL (DATA_API_KEY) and
// the authorization token (DATA_AUTH_TOKEN). Stores abstract where they live:
// process environment, a .env-style file, or the system keychain. Connectors
// receive a Store instead of reading the environment directly, so credential
// resolution stays explicit and testable.
package secrets

import (
	"context"
	"errors"
)

// Credential key names shared by all stores.
const (
	// EndpointKey names the credential holding the query endpoint URL.
	EndpointKey = "DATA_API_KEY"

	// TokenKey names the credential holding the authorization token.
	TokenKey = "DATA_AUTH_TOKEN"
)

// ErrNotConfigured is returned by Load when one or both credentials are absent.
var ErrNotConfigured = errors.New("data API credentials not configured")

// ErrReadOnly is returned by Save on stores that cannot persist credentials.
var ErrReadOnly = errors.New("credential store is read-only")

// Credentials holds the two values needed to reach the data API.
type Credentials struct {
	// Endpoint is the query endpoint URL.
	Endpoint string

	// Token is the raw Authorization header value.
	Token string
}

// Store loads and persists data API credentials.
type Store interface {
	// Name returns a short identifier for the store ("env", "env-file", "keychain").
	Name() string

	// Load retrieves credentials. Returns ErrNotConfigured when either value
	// is missing or empty.
	Load(ctx context.Context) (*Credentials, error)

	// Save persists credentials. Returns ErrReadOnly when the store cannot
	// write. Nothing is persisted on failure.
	Save(ctx context.Context, creds *Credentials) error
}
