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
)

// FallbackStore chains multiple stores: Load returns the first hit in order,
// Save targets the first store that accepts a write.
//
// The default chain is process env first (mirroring dotenv semantics where
// exported variables win), then the .env file.
type FallbackStore struct {
	stores []Store
}

// NewFallbackStore creates an ordered credential store chain.
func NewFallbackStore(stores ...Store) *FallbackStore {
	return &FallbackStore{stores: stores}
}

// Name returns the store identifier.
func (s *FallbackStore) Name() string {
	return "fallback"
}

// Load tries each store in order and returns the first set of credentials.
// Returns ErrNotConfigured only when every store comes up empty; other
// errors abort the chain immediately.
func (s *FallbackStore) Load(ctx context.Context) (*Credentials, error) {
	for _, store := range s.stores {
		creds, err := store.Load(ctx)
		if err == nil {
			return creds, nil
		}
		if errors.Is(err, ErrNotConfigured) {
			continue
		}
		return nil, fmt.Errorf("loading credentials from %s: %w", store.Name(), err)
	}
	return nil, ErrNotConfigured
}

// Save writes to the first store that is not read-only.
func (s *FallbackStore) Save(ctx context.Context, creds *Credentials) error {
	for _, store := range s.stores {
		err := store.Save(ctx, creds)
		if errors.Is(err, ErrReadOnly) {
			continue
		}
		if err != nil {
			return fmt.Errorf("saving credentials to %s: %w", store.Name(), err)
		}
		return nil
	}
	return ErrReadOnly
}
