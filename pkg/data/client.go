package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tombee/datalink/internal/log"
	"github.com/tombee/datalink/pkg/errors"
	"github.com/tombee/datalink/pkg/httpclient"
)

// defaultTimeout bounds each query POST. The upstream API offers no
// streaming; a hung connection would otherwise block the calling task
// indefinitely.
const defaultTimeout = 30 * time.Second

// queryRequest is the upstream wire format for query submission.
type queryRequest struct {
	SQLContent string `json:"sql_content"`
}

// apiClient issues query POSTs to the data API.
// One outstanding request per call; queries are never retried.
type apiClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// newAPIClient builds the HTTP client used for query submission.
func newAPIClient(timeout time.Duration, logger *slog.Logger) (*apiClient, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cfg := httpclient.DefaultConfig()
	cfg.Timeout = timeout
	cfg.UserAgent = "datalink/1.0"

	client, err := httpclient.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("building http client: %w", err)
	}

	return &apiClient{
		httpClient: client,
		logger:     logger,
	}, nil
}

// sendQuery POSTs the SQL to the endpoint and decodes the envelope.
// Non-200 responses, transport failures, and timeouts all surface as
// APIError; the application-level code field is checked by the caller.
func (c *apiClient) sendQuery(ctx context.Context, endpoint, token, sql string) (*apiResponse, error) {
	body, err := json.Marshal(queryRequest{SQLContent: sql})
	if err != nil {
		return nil, fmt.Errorf("encoding query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &errors.APIError{
			Code:    errors.CodeAPIError,
			Message: fmt.Sprintf("building request: %v", err),
			Cause:   err,
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("sending query to data API failed",
			slog.String(log.RequestIDKey, requestID),
			log.Error(err),
		)
		return nil, &errors.APIError{
			Code:      errors.CodeAPIError,
			Message:   fmt.Sprintf("request failed: %v", err),
			RequestID: requestID,
			Cause:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &errors.APIError{
			Code:       errors.CodeAPIError,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
			RequestID:  requestID,
		}
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &errors.APIError{
			Code:      errors.CodeAPIError,
			Message:   fmt.Sprintf("decoding response: %v", err),
			RequestID: requestID,
			Cause:     err,
		}
	}

	return &parsed, nil
}
