// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the squirrel statement builder configured for PostgreSQL's
// numbered ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notesTable = "notes"

var noteColumns = []string{"id", "title", "content", "created_at", "updated_at"}

const returningNoteColumns = "RETURNING id, title, content, created_at, updated_at"

func insertNoteQuery(id, title, content string) (string, []any, error) {
	return psql.
		Insert(notesTable).
		Columns("id", "title", "content").
		Values(id, title, content).
		Suffix(returningNoteColumns).
		ToSql()
}

func selectNoteQuery(id string) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectAllNotesQuery() (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC").
		ToSql()
}

func updateNoteQuery(id, title, content string) (string, []any, error) {
	return psql.
		Update(notesTable).
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningNoteColumns).
		ToSql()
}

func deleteNoteQuery(id string) (string, []any, error) {
	return psql.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
