// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/SeKiZo0/NotesApp/models"
)

// NotesService implements the note lifecycle on top of the repository:
// validation, creation, wholesale replacement, and hard deletion.
type NotesService interface {
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
