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

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tombee/datalink/pkg/data"
)

// handleExecuteQuery implements the data_execute_query tool.
// Query failures come back as tool errors carrying the structured result,
// never as protocol errors: the calling model should see what went wrong.
func (s *Server) handleExecuteQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() || !s.rateLimiter.AllowQuery() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	sql, err := request.RequireString("sql")
	if err != nil {
		return errorResponse("Missing or invalid 'sql' argument"), nil
	}

	result := s.conn.ExecuteQuery(ctx, sql)

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errorResponse(fmt.Sprintf("Failed to encode query result: %v", err)), nil
	}

	if !result.Success {
		s.logger.Warn("query tool call failed",
			slog.String("code", result.Error.Code),
		)
		return errorResponse(string(resultJSON)), nil
	}

	return textResponse(string(resultJSON)), nil
}

// handleGetSchema implements the data_get_schema tool
func (s *Server) handleGetSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	return textResponse(data.DatabaseSchema()), nil
}

// handleGetExamples implements the data_get_examples tool
func (s *Server) handleGetExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	return textResponse(data.QueryExamples()), nil
}
