package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tombee/datalink/internal/log"
	"github.com/tombee/datalink/pkg/connection"
	"github.com/tombee/datalink/pkg/errors"
	"github.com/tombee/datalink/pkg/secrets"
)

// ConnectionName is the identifier the connector registers under.
const ConnectionName = "data"

// actionHandler executes one validated action invocation.
type actionHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Connection is the data API connector.
// Configuration is set once at construction and read-only thereafter; the
// only state shared across invocations is the credential store reference.
type Connection struct {
	chain   string
	store   secrets.Store
	client  *apiClient
	logger  *slog.Logger
	metrics *Metrics

	actions  map[string]connection.Action
	handlers map[string]actionHandler
}

// Option customizes a Connection.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	timeout time.Duration
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables Prometheus query metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// New creates the data connector. An empty chain falls back to DefaultChain;
// use ValidateConfig to enforce presence when the config comes from a host.
func New(cfg Config, store secrets.Store, opts ...Option) (*Connection, error) {
	if store == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	o := &options{
		logger:  slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	chain := cfg.Chain
	if chain == "" {
		chain = DefaultChain
	}

	client, err := newAPIClient(o.timeout, o.logger)
	if err != nil {
		return nil, err
	}

	c := &Connection{
		chain:   chain,
		store:   store,
		client:  client,
		logger:  log.WithConnection(o.logger, ConnectionName),
		metrics: o.metrics,
	}
	c.registerActions()

	return c, nil
}

// Name returns the connection identifier.
func (c *Connection) Name() string {
	return ConnectionName
}

// Chain returns the configured chain identifier.
func (c *Connection) Chain() string {
	return c.chain
}

// IsLLMProvider reports false: this connector provides data access, not inference.
func (c *Connection) IsLLMProvider() bool {
	return false
}

// registerActions populates the fixed action metadata and the matching
// name-to-handler dispatch map. Dispatch is an explicit lookup, never
// reflection.
func (c *Connection) registerActions() {
	c.actions = map[string]connection.Action{
		"execute-query": {
			Name: "execute-query",
			Parameters: []connection.ActionParameter{
				{Name: "sql", Required: true, Type: connection.TypeString, Description: "SQL query to execute"},
			},
			Description: "Execute a SQL query on the blockchain data",
		},
		"get-schema": {
			Name:        "get-schema",
			Description: "Get the database schema",
		},
		"get-examples": {
			Name:        "get-examples",
			Description: "Get query examples",
		},
	}

	c.handlers = map[string]actionHandler{
		"execute-query": func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
			sql, _ := params["sql"].(string)
			return c.ExecuteQuery(ctx, sql), nil
		},
		"get-schema": func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
			return DatabaseSchema(), nil
		},
		"get-examples": func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
			return QueryExamples(), nil
		},
	}
}

// Actions returns the declarative metadata for all registered actions.
func (c *Connection) Actions() map[string]connection.Action {
	out := make(map[string]connection.Action, len(c.actions))
	for name, action := range c.actions {
		out[name] = action
	}
	return out
}

// PerformAction validates parameters against the action spec and dispatches.
// Unknown actions and invalid parameters propagate as errors to the host;
// no handler runs (and no network call is made) until validation passes.
func (c *Connection) PerformAction(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	action, ok := c.actions[name]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "action", ID: name}
	}

	if err := action.ValidateParams(params); err != nil {
		return nil, err
	}

	c.logger.Debug("performing action", slog.String(log.ActionKey, name))
	return c.handlers[name](ctx, params)
}

// IsConfigured reports whether both endpoint and token are present in the
// credential store. It never returns an error: store failures are logged
// (when verbose) and reported as not configured.
func (c *Connection) IsConfigured(ctx context.Context, verbose bool) bool {
	_, err := c.store.Load(ctx)
	if err != nil {
		if verbose {
			if errors.Is(err, secrets.ErrNotConfigured) {
				c.logger.Info("data API credentials not found")
			} else {
				c.logger.Debug("configuration check failed", log.Error(err))
			}
		}
		return false
	}
	return true
}

// Prompter collects interactive configuration input.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)

	// Input collects a free-text value.
	Input(message string) (string, error)

	// Password collects a value without echoing it.
	Password(message string) (string, error)
}

// Configure runs the interactive credential setup flow: reconfirm when
// already configured, prompt for endpoint and token, persist both to the
// store. Nothing is persisted on failure.
func (c *Connection) Configure(ctx context.Context, prompter Prompter) error {
	if c.IsConfigured(ctx, false) {
		reconfigure, err := prompter.Confirm("Data API is already configured. Reconfigure?", false)
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !reconfigure {
			return nil
		}
	}

	endpoint, err := prompter.Input("Enter your Data API URL")
	if err != nil {
		return fmt.Errorf("reading endpoint: %w", err)
	}

	token, err := prompter.Password("Enter your Data Auth Token")
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}

	creds := &secrets.Credentials{Endpoint: endpoint, Token: token}
	if err := c.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	// The endpoint doubles as an access credential; never log it whole
	c.logger.Info("data API configuration saved",
		slog.String("endpoint", log.SanitizeAPIKey(endpoint)),
		slog.String("store", c.store.Name()),
	)
	return nil
}
