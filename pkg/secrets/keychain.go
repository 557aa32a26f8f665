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
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultKeychainService is the keychain service name used for all entries.
const DefaultKeychainService = "datalink"

// KeychainStore persists credentials in the system keychain.
//
// Supported platforms:
//   - macOS: Keychain Access
//   - Linux: Secret Service API (GNOME Keyring, KWallet)
//   - Windows: Credential Manager
type KeychainStore struct {
	service string
}

// NewKeychainStore creates a keychain-backed credential store.
// An empty service falls back to DefaultKeychainService.
func NewKeychainStore(service string) *KeychainStore {
	if service == "" {
		service = DefaultKeychainService
	}
	return &KeychainStore{service: service}
}

// Name returns the store identifier.
func (s *KeychainStore) Name() string {
	return "keychain"
}

// Load retrieves both credential entries from the keychain.
func (s *KeychainStore) Load(ctx context.Context) (*Credentials, error) {
	endpoint, err := s.get(EndpointKey)
	if err != nil {
		return nil, err
	}

	token, err := s.get(TokenKey)
	if err != nil {
		return nil, err
	}

	return &Credentials{Endpoint: endpoint, Token: token}, nil
}

// Save writes both credential entries to the keychain.
func (s *KeychainStore) Save(ctx context.Context, creds *Credentials) error {
	if creds == nil || creds.Endpoint == "" || creds.Token == "" {
		return fmt.Errorf("refusing to save incomplete credentials")
	}

	if err := keyring.Set(s.service, EndpointKey, creds.Endpoint); err != nil {
		return fmt.Errorf("saving %s to keychain: %w", EndpointKey, err)
	}

	if err := keyring.Set(s.service, TokenKey, creds.Token); err != nil {
		return fmt.Errorf("saving %s to keychain: %w", TokenKey, err)
	}

	return nil
}

func (s *KeychainStore) get(key string) (string, error) {
	value, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotConfigured
		}
		return "", fmt.Errorf("reading %s from keychain: %w", key, err)
	}
	if value == "" {
		return "", ErrNotConfigured
	}
	return value, nil
}
