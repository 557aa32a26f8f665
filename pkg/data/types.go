package data

import "time"

// QueryType tags a query with a coarse category derived from its text.
// Classification is a substring heuristic, not query analysis: a query
// selecting a column literally named "count" classifies as aggregate.
type QueryType string

const (
	// QueryTypeToken marks queries touching the token_transfers table.
	QueryTypeToken QueryType = "token"
	// QueryTypeAggregate marks counting/aggregation queries.
	QueryTypeAggregate QueryType = "aggregate"
	// QueryTypeTransaction is the default for everything else.
	QueryTypeTransaction QueryType = "transaction"
	// QueryTypeUnknown is reported on failed queries.
	QueryTypeUnknown QueryType = "unknown"
)

// Record is one result row keyed by column name.
type Record map[string]interface{}

// Metadata describes a query execution.
//
// ExecutionTime is always 0 and Cached always false: they are compatibility
// placeholders consumed by existing hosts, not real instrumentation. Actual
// timing is recorded through Metrics.
type Metadata struct {
	Total         int       `json:"total"`
	QueryTime     time.Time `json:"queryTime"`
	QueryType     QueryType `json:"queryType"`
	ExecutionTime int       `json:"executionTime"`
	Cached        bool      `json:"cached"`
}

// QueryError is the structured error reported inside a QueryResult.
type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// QueryResult is the normalized outcome of execute-query.
//
// Invariants: Error is non-nil iff Success is false; Data is empty iff
// Success is false.
type QueryResult struct {
	Success  bool        `json:"success"`
	Data     []Record    `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *QueryError `json:"error"`
}

// apiResponse is the upstream data API envelope. Column names and row values
// arrive in parallel arrays; transformResponse zips them into Records.
type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		ColumnInfos []string `json:"column_infos"`
		Rows        []apiRow `json:"rows"`
	} `json:"data"`
}

type apiRow struct {
	Items []interface{} `json:"items"`
}
