// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// NotesListResponse wraps the full note collection returned by the list
// endpoint. Notes are ordered by CreatedAt descending (newest first).
type NotesListResponse struct {
	Notes []Note `json:"notes"`
}

// DeleteResponse is the confirmation payload returned by a successful
// delete. The deleted entity itself is not echoed back.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HealthResponse is returned by the liveness endpoint. It reports process
// status only and is produced without touching the database.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// DBHealthResponse is returned by the readiness endpoint after pinging the
// database. Error carries the underlying failure detail when Status is
// "error".
type DBHealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse is the uniform error payload for all failing API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
