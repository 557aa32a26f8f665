// Package data implements the blockchain data query connector.
//
// The connector exposes three actions to agent hosts: execute-query runs a
// SQL statement against the configured data API and normalizes the columnar
// response into row-oriented records; get-schema and get-examples return
// static reference text describing the queryable tables and example queries.
//
// Credentials (endpoint URL and authorization token) come from an injected
// secrets.Store rather than ambient environment reads. Query failures never
// escape ExecuteQuery as Go errors: every failure is folded into the
// structured QueryResult error shape so hosts always receive a well-formed
// result. Action dispatch errors (unknown action, invalid parameters) do
// propagate, matching what hosts expect from a capability surface.
package data
