package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQLQuery(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{
			name:  "plain select string",
			input: "SELECT * FROM transactions",
			want:  "SELECT * FROM transactions",
		},
		{
			name:  "with cte",
			input: "WITH recent AS (SELECT 1) SELECT * FROM recent",
			want:  "WITH recent AS (SELECT 1) SELECT * FROM recent",
		},
		{
			name:  "leading whitespace trimmed",
			input: "   SELECT 1  ",
			want:  "SELECT 1",
		},
		{
			name:  "lowercase keyword",
			input: "select hash from transactions",
			want:  "select hash from transactions",
		},
		{
			name:  "json string input parsed first",
			input: `{"sql": "SELECT 1"}`,
			want:  "SELECT 1",
		},
		{
			name:  "unparseable string searched raw",
			input: "not json but SELECT works? no: prefix required",
			want:  "",
		},
		{
			name:  "nested map under query key",
			input: map[string]interface{}{"sql": map[string]interface{}{"query": "SELECT * FROM t"}},
			want:  "SELECT * FROM t",
		},
		{
			name:  "unsafe statement rejected",
			input: map[string]interface{}{"sql": map[string]interface{}{"query": "DROP TABLE x"}},
			want:  "",
		},
		{
			name:  "unsafe keyword inside select rejected",
			input: "SELECT * FROM t; DELETE FROM t",
			want:  "",
		},
		{
			name:  "list searched in order",
			input: []interface{}{"noise", "SELECT 1", "SELECT 2"},
			want:  "SELECT 1",
		},
		{
			name: "query key wins over sql key",
			input: map[string]interface{}{
				"query": "SELECT from_query",
				"sql":   "SELECT from_sql",
			},
			want: "SELECT from_query",
		},
		{
			name:  "empty map",
			input: map[string]interface{}{},
			want:  "",
		},
		{
			name:  "nil input",
			input: nil,
			want:  "",
		},
		{
			name:  "non-string scalar",
			input: 42,
			want:  "",
		},
		{
			name:  "select keyword alone",
			input: "SELECT",
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSQLQuery(tt.input))
		})
	}
}

func TestExtractSQLQueryDepthGuard(t *testing.T) {
	// Build a chain deeper than the traversal bound with a valid query at the
	// bottom; the walk must give up cleanly instead of finding it.
	value := interface{}("SELECT 1")
	for i := 0; i < maxExtractDepth+5; i++ {
		value = map[string]interface{}{"nested": value}
	}

	assert.Equal(t, "", ExtractSQLQuery(value))
}
