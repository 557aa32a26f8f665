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

package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tombee/datalink/internal/commands/shared"
	"github.com/tombee/datalink/internal/mcp"
	"github.com/tombee/datalink/pkg/data"
)

// NewCommand creates the mcp-server command
func NewCommand() *cobra.Command {
	var (
		logLevel     string
		metricsAddr  string
		queriesLimit int
		callsLimit   int
	)

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Start the datalink MCP server",
		Long: `Start the datalink MCP (Model Context Protocol) server.

The MCP server exposes blockchain data queries as tools that AI assistants
(Claude Code, Cursor, Gemini CLI) can use via their MCP configuration.

The server runs in stdio mode.

Configuration example for Claude Code (~/.config/claude/config.json):
  {
    "mcpServers": {
      "datalink": {
        "command": "datalink",
        "args": ["mcp-server"]
      }
    }
  }

The server exposes these tools:
  - data_execute_query: Execute a read-only SQL query
  - data_get_schema: Get the database schema
  - data_get_examples: Get example queries

Only SELECT and WITH statements are accepted; statements containing
mutating keywords are rejected before reaching the API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCPServer(cmd, logLevel, metricsAddr, queriesLimit, callsLimit)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Logging verbosity (debug, info, warn, error)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on (e.g. :9090, empty to disable)")
	cmd.Flags().IntVar(&queriesLimit, "queries-per-minute", 0, "Max query executions per minute (0 for default)")
	cmd.Flags().IntVar(&callsLimit, "calls-per-minute", 0, "Max tool calls per minute (0 for default)")

	return cmd
}

func runMCPServer(cmd *cobra.Command, logLevel, metricsAddr string, queriesLimit, callsLimit int) error {
	versionStr, _, _ := shared.GetVersion()

	logger := shared.NewLogger()

	var metrics *data.Metrics
	if metricsAddr != "" {
		metrics = data.NewMetrics(prometheus.DefaultRegisterer)
	}

	cfg, err := data.LoadConfigFile(shared.GetConfigPath())
	if err != nil {
		return shared.NewConfigError("loading config", err)
	}

	conn, err := data.New(cfg, shared.NewStore(),
		data.WithLogger(logger),
		data.WithMetrics(metrics),
	)
	if err != nil {
		return shared.NewConfigError("creating data connection", err)
	}

	srv, err := mcp.NewServer(mcp.ServerConfig{
		Name:             "datalink",
		Version:          versionStr,
		LogLevel:         logLevel,
		Connection:       conn,
		QueriesPerMinute: queriesLimit,
		CallsPerMinute:   callsLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Optional metrics endpoint; stdio stays reserved for the MCP protocol
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv := &http.Server{Addr: metricsAddr, Handler: mux}

		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer shutdownCancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived shutdown signal, shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}

		cancel()
	}()

	// Run the server (blocks until shutdown)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
