// SPDX-License-Identifier: Apache-2.0

package models

// NoteRequest is the request body accepted by the create and update
// endpoints. Both fields are required; values consisting only of whitespace
// are rejected before anything reaches the database.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
