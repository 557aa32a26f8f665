package connection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/datalink/pkg/errors"
)

// stubConnection is a minimal Connection for registry tests.
type stubConnection struct {
	name   string
	result interface{}
	called string
}

func (s *stubConnection) Name() string              { return s.name }
func (s *stubConnection) IsLLMProvider() bool       { return false }
func (s *stubConnection) Actions() map[string]Action { return nil }

func (s *stubConnection) PerformAction(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	s.called = name
	return s.result, nil
}

func (s *stubConnection) IsConfigured(ctx context.Context, verbose bool) bool { return true }

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	conn := &stubConnection{name: "data"}

	require.NoError(t, registry.Register(conn))

	got, err := registry.Get("data")
	require.NoError(t, err)
	assert.Same(t, conn, got)
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("missing")
	var notFound *errors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "connection", notFound.Resource)
	assert.Equal(t, "missing", notFound.ID)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	registry := NewRegistry()

	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(&stubConnection{name: ""}))
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubConnection{name: "zeta"}))
	require.NoError(t, registry.Register(&stubConnection{name: "data"}))

	assert.Equal(t, []string{"data", "zeta"}, registry.List())
}

func TestRegistry_Execute(t *testing.T) {
	registry := NewRegistry()
	conn := &stubConnection{name: "data", result: "ok"}
	require.NoError(t, registry.Register(conn))

	result, err := registry.Execute(context.Background(), "data.execute-query", map[string]interface{}{"sql": "SELECT 1"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "execute-query", conn.called)
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		wantConn  string
		wantOp    string
		wantErr   bool
	}{
		{"valid", "data.execute-query", "data", "execute-query", false},
		{"action with dots keeps remainder", "data.get.schema", "data", "get.schema", false},
		{"no dot", "data", "", "", true},
		{"empty connection", ".execute-query", "", "", true},
		{"empty action", "data.", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, op, err := parseReference(tt.reference)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantConn, conn)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}
