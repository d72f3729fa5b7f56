package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SeKiZo0/NotesApp/internal/config"
	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/service"
	"github.com/SeKiZo0/NotesApp/models"
)

// ─────────────────────────────────────────────
// Mocks shared by the handler tests
// ─────────────────────────────────────────────

// mockNotesSvc implements service.NotesService with overridable function
// fields so each test wires only what it needs.
type mockNotesSvc struct {
	createFn func(ctx context.Context, req models.NoteRequest) (models.Note, error)
	getFn    func(ctx context.Context, id string) (models.Note, error)
	listFn   func(ctx context.Context) ([]models.Note, error)
	updateFn func(ctx context.Context, id string, req models.NoteRequest) (models.Note, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockNotesSvc) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	return m.createFn(ctx, req)
}

func (m *mockNotesSvc) GetNote(ctx context.Context, id string) (models.Note, error) {
	return m.getFn(ctx, id)
}

func (m *mockNotesSvc) ListNotes(ctx context.Context) ([]models.Note, error) {
	return m.listFn(ctx)
}

func (m *mockNotesSvc) UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockNotesSvc) DeleteNote(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockAppInfoSvc implements service.AppInfoService.
type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockPinger implements store.Pinger.
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	return m.err
}

// newTestHandler builds a Handler with the given notes service mock, a
// healthy pinger, and a non-development environment.
func newTestHandler(t *testing.T, svc service.NotesService) *Handler {
	t.Helper()
	return &Handler{
		services: &service.Services{
			NotesService:   svc,
			AppInfoService: &mockAppInfoSvc{version: "test"},
		},
		pinger: &mockPinger{},
		logger: logger.Nop(),
	}
}

// newDevHandler is newTestHandler with the development flag set, so error
// detail is echoed to the caller.
func newDevHandler(t *testing.T, svc service.NotesService) *Handler {
	t.Helper()
	h := newTestHandler(t, svc)
	h.development = config.App{Environment: "development"}.IsDevelopment()
	return h
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}
