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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvStore_Load(t *testing.T) {
	t.Run("both values present", func(t *testing.T) {
		t.Setenv(EndpointKey, "https://api.example.com/sql")
		t.Setenv(TokenKey, "tok-123")

		creds, err := NewEnvStore().Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/sql", creds.Endpoint)
		assert.Equal(t, "tok-123", creds.Token)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(EndpointKey, "https://api.example.com/sql")
		t.Setenv(TokenKey, "")

		_, err := NewEnvStore().Load(context.Background())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Setenv(EndpointKey, "")
		t.Setenv(TokenKey, "tok-123")

		_, err := NewEnvStore().Load(context.Background())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestEnvStore_SaveIsReadOnly(t *testing.T) {
	err := NewEnvStore().Save(context.Background(), &Credentials{Endpoint: "e", Token: "t"})
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", ".env")
	store := NewFileStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured, "missing file reports not configured")

	creds := &Credentials{Endpoint: "https://api.example.com/sql", Token: "tok-456"}
	require.NoError(t, store.Save(ctx, creds))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_PreservesUnrelatedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER_KEY=keep-me\n"), 0o600))

	store := NewFileStore(path)
	require.NoError(t, store.Save(context.Background(), &Credentials{
		Endpoint: "https://api.example.com/sql",
		Token:    "tok",
	}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "keep-me")
	assert.Contains(t, string(contents), EndpointKey)
}

func TestFileStore_RejectsIncompleteCredentials(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), ".env"))

	err := store.Save(context.Background(), &Credentials{Endpoint: "only-endpoint"})
	require.Error(t, err)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "nothing persisted on failure")
}

// fakeStore is a scripted Store for fallback-order tests.
type fakeStore struct {
	name    string
	creds   *Credentials
	loadErr error
	saveErr error
	saved   *Credentials
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) Load(ctx context.Context) (*Credentials, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.creds, nil
}

func (f *fakeStore) Save(ctx context.Context, creds *Credentials) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = creds
	return nil
}

func TestFallbackStore_LoadOrder(t *testing.T) {
	first := &fakeStore{name: "first", loadErr: ErrNotConfigured}
	second := &fakeStore{name: "second", creds: &Credentials{Endpoint: "e", Token: "t"}}

	creds, err := NewFallbackStore(first, second).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e", creds.Endpoint)
}

func TestFallbackStore_LoadPrefersFirstHit(t *testing.T) {
	first := &fakeStore{name: "first", creds: &Credentials{Endpoint: "env", Token: "t1"}}
	second := &fakeStore{name: "second", creds: &Credentials{Endpoint: "file", Token: "t2"}}

	creds, err := NewFallbackStore(first, second).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env", creds.Endpoint)
}

func TestFallbackStore_LoadPropagatesHardErrors(t *testing.T) {
	boom := errors.New("keychain locked")
	first := &fakeStore{name: "first", loadErr: boom}
	second := &fakeStore{name: "second", creds: &Credentials{Endpoint: "e", Token: "t"}}

	_, err := NewFallbackStore(first, second).Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFallbackStore_SaveSkipsReadOnly(t *testing.T) {
	first := &fakeStore{name: "env", saveErr: ErrReadOnly}
	second := &fakeStore{name: "file"}
	creds := &Credentials{Endpoint: "e", Token: "t"}

	require.NoError(t, NewFallbackStore(first, second).Save(context.Background(), creds))
	assert.Equal(t, creds, second.saved)
}

func TestFallbackStore_SaveAllReadOnly(t *testing.T) {
	first := &fakeStore{name: "env", saveErr: ErrReadOnly}

	err := NewFallbackStore(first).Save(context.Background(), &Credentials{Endpoint: "e", Token: "t"})
	assert.ErrorIs(t, err, ErrReadOnly)
}
