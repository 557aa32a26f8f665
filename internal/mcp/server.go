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

// Package mcp implements an MCP server that exposes data API queries as tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tombee/datalink/internal/log"
	"github.com/tombee/datalink/pkg/data"
)

// Default per-minute rate limits. Queries are capped harder than metadata
// calls because each one costs an upstream API request.
const (
	defaultQueriesPerMinute = 30
	defaultCallsPerMinute   = 100
)

// Server wraps the MCP server and exposes the data connector as tools
type Server struct {
	mcpServer   *server.MCPServer
	conn        *data.Connection
	name        string
	version     string
	rateLimiter *RateLimiter
	logger      *slog.Logger
}

// ServerConfig configures the MCP server
type ServerConfig struct {
	// Name is the server name (default: "datalink")
	Name string

	// Version is the datalink version
	Version string

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string

	// Connection is the data connector to expose. Required.
	Connection *data.Connection

	// QueriesPerMinute caps data_execute_query calls (default: 30)
	QueriesPerMinute int

	// CallsPerMinute caps total tool calls (default: 100)
	CallsPerMinute int
}

// createLogger creates a logger with the specified log level.
// Writes to stderr to avoid interfering with MCP stdio protocol.
func createLogger(levelStr string) (*slog.Logger, error) {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), nil
}

// NewServer creates a new MCP server instance
func NewServer(config ServerConfig) (*Server, error) {
	if config.Connection == nil {
		return nil, fmt.Errorf("data connection is required")
	}
	if config.Name == "" {
		config.Name = "datalink"
	}
	if config.Version == "" {
		config.Version = "dev"
	}
	if config.QueriesPerMinute <= 0 {
		config.QueriesPerMinute = defaultQueriesPerMinute
	}
	if config.CallsPerMinute <= 0 {
		config.CallsPerMinute = defaultCallsPerMinute
	}

	logger, err := createLogger(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger = log.WithComponent(logger, "mcp")

	mcpServer := server.NewMCPServer(config.Name, config.Version)

	rateLimiter := NewRateLimiter(config.QueriesPerMinute, config.CallsPerMinute)

	s := &Server{
		mcpServer:   mcpServer,
		conn:        config.Connection,
		name:        config.Name,
		version:     config.Version,
		rateLimiter: rateLimiter,
		logger:      logger,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all data tools with the MCP server
func (s *Server) registerTools() {
	// Tool: data_execute_query
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "data_execute_query",
		Description: "Execute a read-only SQL query (SELECT or WITH) against the blockchain data API. Returns rows as JSON records keyed by column name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"sql": map[string]interface{}{
					"type":        "string",
					"description": "The SQL query to execute (max 5000 characters)",
				},
			},
			Required: []string{"sql"},
		},
	}, s.handleExecuteQuery)

	// Tool: data_get_schema
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "data_get_schema",
		Description: "Return the database schema (table DDL) for the queryable blockchain tables. Use this for accurate query generation.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGetSchema)

	// Tool: data_get_examples
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "data_get_examples",
		Description: "Return example SQL queries demonstrating common blockchain data analysis patterns.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGetExamples)
}

// Run starts the MCP server using stdio transport
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting datalink MCP server", slog.String("version", s.version))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down datalink MCP server")
	// The mcp-go server doesn't have an explicit shutdown method
	// Returning from ServeStdio() is sufficient
	return nil
}

// Helper function to create error response
func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// Helper function to create success response
func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}
