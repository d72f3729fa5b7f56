// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/store"
	"github.com/SeKiZo0/NotesApp/models"
)

// notesService validates incoming note requests and delegates persistence
// to the repository. Validation happens before any store call, so a
// rejected request never touches the database.
type notesService struct {
	repository store.NoteRepository

	logger *logger.Logger
}

// NewNotesService constructs a [NotesService] backed by the given
// repository.
func NewNotesService(repository store.NoteRepository, logger *logger.Logger) NotesService {
	logger.Debug().Msg("creating notes service")
	return &notesService{
		repository: repository,
		logger:     logger,
	}
}

// validateNoteRequest trims both fields and rejects the request when either
// ends up empty. The trimmed values are what gets persisted.
func validateNoteRequest(req models.NoteRequest) (models.NoteRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return models.NoteRequest{}, ErrEmptyTitle
	}
	if req.Content == "" {
		return models.NoteRequest{}, ErrEmptyContent
	}

	return req, nil
}

func (s *notesService) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	validated, err := validateNoteRequest(req)
	if err != nil {
		log.Debug().Err(err).Str("func", "*notesService.CreateNote").Msg("rejected note creation")
		return models.Note{}, err
	}

	return s.repository.CreateNote(ctx, validated)
}

func (s *notesService) GetNote(ctx context.Context, id string) (models.Note, error) {
	if strings.TrimSpace(id) == "" {
		return models.Note{}, ErrEmptyID
	}

	return s.repository.FindNoteByID(ctx, id)
}

func (s *notesService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.repository.FindAllNotes(ctx)
}

func (s *notesService) UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return models.Note{}, ErrEmptyID
	}

	validated, err := validateNoteRequest(req)
	if err != nil {
		log.Debug().Err(err).Str("func", "*notesService.UpdateNote").Msg("rejected note update")
		return models.Note{}, err
	}

	return s.repository.UpdateNote(ctx, id, validated)
}

func (s *notesService) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}

	return s.repository.DeleteNote(ctx, id)
}
