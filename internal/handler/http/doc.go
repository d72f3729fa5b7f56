// SPDX-License-Identifier: Apache-2.0

// Package http exposes the notes REST API and the two health probes over
// chi, and serves the embedded browser client for every non-API path.
//
// Error taxonomy (see errors_mapper.go): validation failures map to 400,
// unknown note ids to 404, dependency failures to a generic 500 whose
// detail is only echoed in development. Unmatched API routes return a 404
// payload distinct from the entity-level one.
package http
