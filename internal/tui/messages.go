package tui

import "github.com/SeKiZo0/NotesApp/models"

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}
