// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Note is the single persisted entity of the application: a title/content
// pair with a server-assigned identifier and timestamps.
//
// ID is a random UUID token generated on creation and never reused, even
// after the note is deleted. CreatedAt is set once at insertion; UpdatedAt
// is refreshed on every successful update, so CreatedAt <= UpdatedAt holds
// for every stored note.
type Note struct {
	// ID is the unique note identifier. Immutable, assigned server-side.
	ID string `json:"id"`

	// Title is the note heading. Never empty or whitespace-only once
	// accepted by the API.
	Title string `json:"title"`

	// Content is the note body. Same non-blank guarantee as Title.
	Content string `json:"content"`

	// CreatedAt is the insertion timestamp. Never modified.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}
