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
	"sync"
	"time"
)

// RateLimiter implements token bucket rate limiting for MCP tool calls
type RateLimiter struct {
	queryBucket *tokenBucket
	callBucket  *tokenBucket
}

// tokenBucket implements a simple token bucket algorithm
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter with specified limits
// queriesPerMinute: max data_execute_query calls per minute
// callsPerMinute: max total tool calls per minute
func NewRateLimiter(queriesPerMinute, callsPerMinute int) *RateLimiter {
	return &RateLimiter{
		queryBucket: &tokenBucket{
			tokens:     float64(queriesPerMinute),
			maxTokens:  float64(queriesPerMinute),
			refillRate: float64(queriesPerMinute) / 60.0,
			lastRefill: time.Now(),
		},
		callBucket: &tokenBucket{
			tokens:     float64(callsPerMinute),
			maxTokens:  float64(callsPerMinute),
			refillRate: float64(callsPerMinute) / 60.0,
			lastRefill: time.Now(),
		},
	}
}

// AllowQuery checks if a data_execute_query call is allowed
func (rl *RateLimiter) AllowQuery() bool {
	return rl.queryBucket.take(1)
}

// AllowCall checks if any tool call is allowed
func (rl *RateLimiter) AllowCall() bool {
	return rl.callBucket.take(1)
}

// take attempts to take n tokens from the bucket
func (tb *tokenBucket) take(n float64) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(tb.maxTokens, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= n {
		tb.tokens -= n
		return true
	}

	return false
}
