package httpclient

import (
	"net/url"
	"strings"
)

// sensitiveParams contains query parameter names that should be redacted from logs.
// These are matched case-insensitively and by substring, so "API_KEY" and
// "auth_token" both match.
var sensitiveParams = []string{
	"api_key",
	"apikey",
	"token",
	"password",
	"auth",
	"secret",
	"key",
	"credential",
}

// sanitizeURL removes sensitive query parameters from URLs before logging.
// This prevents leaking API keys, tokens, and other secrets in logs.
func sanitizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()

	for param := range q {
		if isSensitiveParam(param) {
			q.Set(param, "[REDACTED]")
		}
	}

	safe := *u
	safe.RawQuery = q.Encode()
	return safe.String()
}

// isSensitiveParam checks if a parameter name matches the sensitive list.
func isSensitiveParam(param string) bool {
	lower := strings.ToLower(param)
	for _, sensitive := range sensitiveParams {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
