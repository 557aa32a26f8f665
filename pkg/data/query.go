package data

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tombee/datalink/internal/log"
	"github.com/tombee/datalink/pkg/errors"
)

// maxQueryLength caps accepted SQL. This is the only validation applied
// here; keyword filtering belongs to ExtractSQLQuery and is the caller's
// responsibility.
const maxQueryLength = 5000

// ExecuteQuery runs one SQL query through the full pipeline: length check,
// classification, POST, application status check, and columnar-to-row
// transform.
//
// It never returns a Go error. Every failure is folded into a QueryResult
// with Success false, empty Data, queryType unknown, and a structured Error.
func (c *Connection) ExecuteQuery(ctx context.Context, sql string) *QueryResult {
	start := time.Now()

	result, queryType, err := c.executeQuery(ctx, sql)
	if err != nil {
		c.logger.Error("query execution failed",
			slog.String(log.QueryTypeKey, string(queryType)),
			log.Error(err),
		)
		c.metrics.RecordQuery(QueryTypeUnknown, false, time.Since(start))
		return failedResult(err)
	}

	c.logger.Debug("query executed",
		slog.String(log.QueryTypeKey, string(queryType)),
		slog.Int("rows", result.Metadata.Total),
		log.Duration("duration", time.Since(start).Milliseconds()),
	)
	c.metrics.RecordQuery(queryType, true, time.Since(start))
	return result
}

// executeQuery is the fallible core of ExecuteQuery.
func (c *Connection) executeQuery(ctx context.Context, sql string) (*QueryResult, QueryType, error) {
	if sql == "" || len(sql) > maxQueryLength {
		return nil, QueryTypeUnknown, errors.NewAPIError("Invalid SQL query length")
	}

	queryType := classifyQuery(sql)

	creds, err := c.store.Load(ctx)
	if err != nil {
		return nil, queryType, &errors.ConfigError{
			Key:    "credentials",
			Reason: "data API credentials not available",
			Cause:  err,
		}
	}

	resp, err := c.client.sendQuery(ctx, creds.Endpoint, creds.Token, sql)
	if err != nil {
		return nil, queryType, err
	}

	if resp.Code != 0 {
		return nil, queryType, errors.NewAPIError(fmt.Sprintf("API Error: %s", resp.Msg))
	}

	records, err := transformResponse(resp)
	if err != nil {
		return nil, queryType, err
	}

	return &QueryResult{
		Success: true,
		Data:    records,
		Metadata: Metadata{
			Total:         len(records),
			QueryTime:     time.Now(),
			QueryType:     queryType,
			ExecutionTime: 0,
			Cached:        false,
		},
	}, queryType, nil
}

// classifyQuery tags the query by case-insensitive substring search.
// The token check runs first so a token_transfers query containing "count"
// still classifies as token.
func classifyQuery(sql string) QueryType {
	lower := strings.ToLower(sql)
	switch {
	case strings.Contains(lower, "token_transfers"):
		return QueryTypeToken
	case strings.Contains(lower, "count"):
		return QueryTypeAggregate
	default:
		return QueryTypeTransaction
	}
}

// transformResponse zips each row's items positionally against the column
// names. A row whose item count differs from the column count fails the
// whole query rather than silently truncating or padding.
func transformResponse(resp *apiResponse) ([]Record, error) {
	columns := resp.Data.ColumnInfos
	rows := resp.Data.Rows

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row.Items) != len(columns) {
			return nil, errors.NewAPIError(fmt.Sprintf(
				"malformed response: row %d has %d items, expected %d columns",
				i, len(row.Items), len(columns),
			))
		}

		record := make(Record, len(columns))
		for j, value := range row.Items {
			record[columns[j]] = value
		}
		records = append(records, record)
	}

	return records, nil
}

// failedResult builds the structured failure shape from any error.
func failedResult(err error) *QueryResult {
	return &QueryResult{
		Success: false,
		Data:    []Record{},
		Metadata: Metadata{
			Total:         0,
			QueryTime:     time.Now(),
			QueryType:     QueryTypeUnknown,
			ExecutionTime: 0,
			Cached:        false,
		},
		Error: &QueryError{
			Code:    errors.ErrorCode(err),
			Message: err.Error(),
			Details: err.Error(),
		},
	}
}
