// SPDX-License-Identifier: Apache-2.0

package store

import (
	"github.com/SeKiZo0/NotesApp/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	NoteRepository NoteRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		NoteRepository: NewNoteRepository(db, logger),
	}
}
