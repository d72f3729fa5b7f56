// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/SeKiZo0/NotesApp/models"
)

// NoteRepository is the persistence boundary for notes. The PostgreSQL
// implementation is the only production one; tests substitute fakes.
type NoteRepository interface {
	// CreateNote inserts a new note with a server-assigned id and
	// timestamps and returns the stored representation.
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)

	// FindNoteByID returns the note with the given id, or
	// [ErrNoteNotFound].
	FindNoteByID(ctx context.Context, id string) (models.Note, error)

	// FindAllNotes returns every note ordered by creation time, newest
	// first.
	FindAllNotes(ctx context.Context) ([]models.Note, error)

	// UpdateNote replaces title and content of the note with the given id,
	// refreshes updated_at, and returns the stored representation, or
	// [ErrNoteNotFound].
	UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error)

	// DeleteNote removes the note with the given id permanently, or
	// returns [ErrNoteNotFound].
	DeleteNote(ctx context.Context, id string) error
}

// Pinger is the minimal dependency of the readiness probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}
