package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &noteRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"})
	for _, n := range notes {
		rows.AddRow(n.ID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	stored := models.Note{
		ID:        "9e3a2f1c-0000-4000-8000-000000000001",
		Title:     "groceries",
		Content:   "milk, eggs",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(sqlmock.AnyArg(), stored.Title, stored.Content).
		WillReturnRows(noteRows(stored))

	created, err := repo.CreateNote(context.Background(), models.NoteRequest{
		Title:   stored.Title,
		Content: stored.Content,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != stored.ID {
		t.Errorf("expected id %s, got %s", stored.ID, created.ID)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("expected created_at == updated_at on insert, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
}

// idRecorder is a sqlmock argument matcher that accepts any string id and
// records it for later inspection.
type idRecorder struct {
	ids *[]string
}

func (r idRecorder) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	*r.ids = append(*r.ids, s)
	return true
}

func TestCreateNote_GeneratesDistinctIDs(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	var ids []string
	recorder := idRecorder{ids: &ids}

	const creates = 20
	for i := 0; i < creates; i++ {
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs(recorder, "title", "content").
			WillReturnRows(noteRows(models.Note{ID: "stored", Title: "title", Content: "content"}))
	}

	for i := 0; i < creates; i++ {
		if _, err := repo.CreateNote(context.Background(), models.NoteRequest{Title: "title", Content: "content"}); err != nil {
			t.Fatalf("create %d: unexpected error: %v", i, err)
		}
	}

	if len(ids) != creates {
		t.Fatalf("expected %d recorded ids, got %d", creates, len(ids))
	}

	seen := make(map[string]struct{}, creates)
	for _, id := range ids {
		if id == "" {
			t.Error("generated id is empty")
		}
		if err := uuid.Validate(id); err != nil {
			t.Errorf("generated id %q is not a valid UUID: %v", id, err)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != creates {
		t.Errorf("expected %d distinct ids, got %d", creates, len(seen))
	}
}

func TestCreateNote_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateNote(context.Background(), models.NoteRequest{Title: "a", Content: "b"})
	if !errors.Is(err, ErrNoteAlreadyExists) {
		t.Fatalf("expected ErrNoteAlreadyExists, got %v", err)
	}
}

func TestCreateNote_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateNote(context.Background(), models.NoteRequest{Title: "a", Content: "b"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindNoteByID_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	stored := models.Note{
		ID:        "abc",
		Title:     "t",
		Content:   "c",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes").
		WithArgs(stored.ID).
		WillReturnRows(noteRows(stored))

	found, err := repo.FindNoteByID(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != stored.Title || found.Content != stored.Content {
		t.Errorf("expected %+v, got %+v", stored, found)
	}
}

func TestFindNoteByID_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindNoteByID(context.Background(), "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestFindAllNotes_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	newer := models.Note{ID: "n2", Title: "new", Content: "c", CreatedAt: now, UpdatedAt: now}
	older := models.Note{ID: "n1", Title: "old", Content: "c", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)}

	mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes ORDER BY created_at DESC").
		WillReturnRows(noteRows(newer, older))

	notes, err := repo.FindAllNotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "n2" || notes[1].ID != "n1" {
		t.Errorf("expected newest-first order, got %s, %s", notes[0].ID, notes[1].ID)
	}
}

func TestFindAllNotes_EmptyTable(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes").
		WillReturnRows(noteRows())

	notes, err := repo.FindAllNotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(notes) != 0 {
		t.Errorf("expected 0 notes, got %d", len(notes))
	}
}

func TestUpdateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	created := time.Now().Add(-time.Hour)
	updated := time.Now()
	stored := models.Note{
		ID:        "abc",
		Title:     "new title",
		Content:   "new content",
		CreatedAt: created,
		UpdatedAt: updated,
	}

	mock.ExpectQuery("UPDATE notes SET").
		WithArgs(stored.Title, stored.Content, stored.ID).
		WillReturnRows(noteRows(stored))

	got, err := repo.UpdateNote(context.Background(), stored.ID, models.NoteRequest{
		Title:   stored.Title,
		Content: stored.Content,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("expected created_at untouched, got %v", got.CreatedAt)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("expected updated_at >= created_at, got %v < %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE notes SET").
		WithArgs("a", "b", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNote(context.Background(), "missing", models.NoteRequest{Title: "a", Content: "b"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteNote(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNote(context.Background(), "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("abc").
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteNote(context.Background(), "abc")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
