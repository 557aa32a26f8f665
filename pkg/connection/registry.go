package connection

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tombee/datalink/pkg/errors"
)

// Registry manages a collection of connections for a host.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]Connection
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[string]Connection),
	}
}

// Register adds a connection under its own name.
// Registering the same name twice replaces the earlier connection.
func (r *Registry) Register(conn Connection) error {
	if conn == nil {
		return fmt.Errorf("cannot register nil connection")
	}
	if conn.Name() == "" {
		return fmt.Errorf("cannot register connection with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[conn.Name()] = conn
	return nil
}

// Get retrieves a connection by name.
func (r *Registry) Get(name string) (Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, exists := r.connections[name]
	if !exists {
		return nil, &errors.NotFoundError{Resource: "connection", ID: name}
	}

	return conn, nil
}

// List returns the names of all registered connections, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.connections))
	for name := range r.connections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Execute runs a connection action.
// The reference should be in format "connection_name.action-name".
func (r *Registry) Execute(ctx context.Context, reference string, params map[string]interface{}) (interface{}, error) {
	connName, actionName, err := parseReference(reference)
	if err != nil {
		return nil, err
	}

	conn, err := r.Get(connName)
	if err != nil {
		return nil, err
	}

	return conn.PerformAction(ctx, actionName, params)
}

// parseReference splits a reference into connection and action names.
// Expected format: "connection_name.action-name".
func parseReference(reference string) (string, string, error) {
	connName, actionName, found := strings.Cut(reference, ".")
	if !found {
		return "", "", &errors.ValidationError{
			Field:      "reference",
			Message:    fmt.Sprintf("invalid reference %q: must be in format 'connection_name.action-name'", reference),
			Suggestion: "use the actions command to list available connections and actions",
		}
	}

	if connName == "" || actionName == "" {
		return "", "", &errors.ValidationError{
			Field:   "reference",
			Message: fmt.Sprintf("invalid reference %q: connection and action names cannot be empty", reference),
		}
	}

	return connName, actionName, nil
}
