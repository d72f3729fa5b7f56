// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. It operates on the "notes" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote inserts a new row with a freshly generated UUID identifier.
// created_at and updated_at are assigned by the database defaults, so both
// carry the same value on insert; the RETURNING clause hands the canonical
// stored representation back to the caller.
func (r *noteRepository) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertNoteQuery(uuid.NewString(), req.Title, req.Content)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: building insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning inserted note")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Note{}, ErrNoteAlreadyExists
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return note, nil
}

// FindNoteByID retrieves a single note, mapping an empty result set to
// [ErrNoteNotFound].
func (r *noteRepository) FindNoteByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: building select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: scanning found note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// FindAllNotes returns every stored note ordered by created_at descending.
// An empty table yields an empty (non-nil) slice.
func (r *noteRepository) FindAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindAllNotes").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindAllNotes").Msg("error: querying all notes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindAllNotes").Msg("error: scanning note row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.FindAllNotes").Msg("error: iterating note rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return notes, nil
}

// UpdateNote replaces title and content wholesale and refreshes updated_at
// with NOW(). created_at is deliberately left out of the SET list, which
// preserves the created_at <= updated_at invariant.
func (r *noteRepository) UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateNoteQuery(id, req.Title, req.Content)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: building update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning updated note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// DeleteNote removes a row permanently. Zero affected rows means the id was
// unknown (or already deleted) and is reported as [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
