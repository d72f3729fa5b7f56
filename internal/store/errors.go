// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrNoteNotFound is returned when a lookup, update, or delete targets
	// a note id that does not exist in the database. A repeated delete of
	// the same id reports this as well.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when an INSERT collides with an
	// existing primary key. With random UUID identifiers this is not
	// expected to happen in practice.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails before it ever reaches the database.
	ErrBuildingSQLQuery = errors.New("error building SQL query")
)
