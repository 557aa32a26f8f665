package data

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

// maxExtractDepth bounds the recursive traversal. Upstream responses are
// shallow in practice; pathological nesting yields "no match" instead of a
// blown stack.
const maxExtractDepth = 32

// sqlPrefixPattern accepts strings starting (after optional whitespace) with
// SELECT or WITH followed by at least one more character, up to the first
// semicolon or end of string. A prefix check, not a SQL parser: malformed SQL
// after the keyword is deliberately tolerated.
var sqlPrefixPattern = regexp.MustCompile(`(?i)^\s*(?:SELECT|WITH)\s+[\s\S]+?(?:;|$)`)

// unsafeKeywords reject any statement that could mutate data, matched as
// substrings of the lowercased candidate.
var unsafeKeywords = []string{"drop", "delete", "update", "insert", "alter", "create"}

// ExtractSQLQuery recursively searches a JSON-like value for the first string
// that looks like a safe, read-only SQL statement.
//
// String input is parsed as JSON first; if parsing fails the raw string
// itself is searched. Lists are searched in order; maps prioritize the value
// under "query" when both "query" and "sql" keys are present, then fall back
// to every value. Anything else (numbers, booleans, nil, empty containers)
// yields no match. Failures never propagate: the function logs and returns
// the empty string.
func ExtractSQLQuery(input interface{}) (result string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("sql extraction panicked", "panic", r)
			result = ""
		}
	}()

	value := input
	if raw, ok := input.(string); ok {
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			value = parsed
		}
		// Parse failure: search the raw string itself
	}

	result = findSQLQuery(value, 0)
	if result == "" {
		slog.Warn("no valid SQL query found in input")
	}
	return result
}

// findSQLQuery walks the value tree depth-first and returns the first match.
func findSQLQuery(value interface{}, depth int) string {
	if value == nil || depth > maxExtractDepth {
		return ""
	}

	switch v := value.(type) {
	case string:
		return matchSQLString(v)

	case []interface{}:
		for _, item := range v {
			if result := findSQLQuery(item, depth+1); result != "" {
				return result
			}
		}
		return ""

	case map[string]interface{}:
		// A map carrying both query and sql keys nests the statement under
		// query; check it before anything else.
		_, hasQuery := v["query"]
		_, hasSQL := v["sql"]
		if hasQuery && hasSQL {
			if result := findSQLQuery(v["query"], depth+1); result != "" {
				return result
			}
		}

		for _, item := range v {
			if result := findSQLQuery(item, depth+1); result != "" {
				return result
			}
		}
		return ""

	default:
		return ""
	}
}

// matchSQLString validates a single candidate string.
func matchSQLString(s string) string {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return ""
	}

	lower := strings.ToLower(clean)
	for _, keyword := range unsafeKeywords {
		if strings.Contains(lower, keyword) {
			return ""
		}
	}

	if sqlPrefixPattern.MatchString(clean) {
		return clean
	}
	return ""
}
