// Package tui implements the interactive terminal client for the notes
// server: a list of notes with detail view, create/edit forms and a delete
// confirmation overlay, built on bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/SeKiZo0/NotesApp/internal/adapter"
	"github.com/SeKiZo0/NotesApp/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user exits the program
// voluntarily rather than through a failure.
var ErrUserQuit = errors.New("user quit the program")

// TUI owns the terminal UI and the server adapter it talks through.
type TUI struct {
	server adapter.ServerAdapter
	log    *logger.Logger
}

func New(server adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errors.New("server adapter is not set")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{server: server, log: log}, nil
}

// Run starts the main loop and blocks until the user quits or the program
// fails. The context cancels in-flight server calls on shutdown.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		t.log.Err(runErr).Str("func", "*TUI.Run").Msg("terminal program failed")
		return runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
