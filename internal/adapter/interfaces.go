// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer used by the terminal client
// to communicate with the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client UI
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/SeKiZo0/NotesApp/models"
)

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// ListNotes fetches every note, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by id.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// CreateNote submits a new note and returns the stored representation
	// with the server-assigned id and timestamps.
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)

	// UpdateNote replaces title and content of the note with the given id
	// and returns the stored representation.
	UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id string) error

	// Health fetches the server's liveness report.
	Health(ctx context.Context) (models.HealthResponse, error)
}
