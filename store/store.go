// Package store persists libraries, lines and saved sequences to a
// local SQLite database. Only note text and caller-attached metadata are
// stored; intervals and degrees are re-derived on load so they can never
// drift from the notes.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kentays/jazz-lines/library"
	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
)

const schema = `
CREATE TABLE IF NOT EXISTS libraries (
	name    TEXT PRIMARY KEY,
	enabled INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS lines (
	id            TEXT PRIMARY KEY,
	library       TEXT NOT NULL REFERENCES libraries(name),
	notes         TEXT NOT NULL,
	triplet_start INTEGER NOT NULL DEFAULT -1,
	tags          TEXT NOT NULL DEFAULT '[]',
	comment       TEXT NOT NULL DEFAULT '',
	position      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sequences (
	name     TEXT NOT NULL,
	position INTEGER NOT NULL,
	line_id  TEXT NOT NULL REFERENCES lines(id),
	PRIMARY KEY (name, position)
);
`

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLine upserts a line at the end of its library's ordering. Saving
// an existing ID keeps its position, so replacement preserves insertion
// order.
func (s *Store) SaveLine(l model.Line) error {
	if _, err := s.db.Exec(
		`INSERT INTO libraries (name) VALUES (?) ON CONFLICT (name) DO NOTHING`,
		l.LibraryID,
	); err != nil {
		return fmt.Errorf("ensure library %q: %w", l.LibraryID, err)
	}

	tags, err := json.Marshal(l.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	var noteTexts []string
	for _, n := range l.Notes {
		noteTexts = append(noteTexts, n.String())
	}

	_, err = s.db.Exec(
		`INSERT INTO lines (id, library, notes, triplet_start, tags, comment, position)
		 VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM lines))
		 ON CONFLICT (id) DO UPDATE SET
			library = excluded.library,
			notes = excluded.notes,
			triplet_start = excluded.triplet_start,
			tags = excluded.tags,
			comment = excluded.comment`,
		l.ID, l.LibraryID, strings.Join(noteTexts, " "),
		l.TripletStartIndex, string(tags), l.Comment,
	)
	if err != nil {
		return fmt.Errorf("save line %v: %w", l.ID, err)
	}
	return nil
}

func (s *Store) SetLibraryEnabled(name string, enabled bool) error {
	_, err := s.db.Exec(
		`INSERT INTO libraries (name, enabled) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET enabled = excluded.enabled`,
		name, enabled,
	)
	return err
}

// LoadRegistry rebuilds the full in-memory registry. Every line is
// re-parsed from its stored note text, which recomputes intervals and
// start/end degrees. Rows that no longer parse are skipped with a log
// line rather than failing the whole load.
func (s *Store) LoadRegistry() (*library.Registry, error) {
	reg := library.NewRegistry()

	libRows, err := s.db.Query(`SELECT name, enabled FROM libraries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load libraries: %w", err)
	}
	defer libRows.Close()
	for libRows.Next() {
		var name string
		var enabled bool
		if err := libRows.Scan(&name, &enabled); err != nil {
			return nil, err
		}
		reg.Ensure(name)
		if err := reg.SetEnabled(name, enabled); err != nil {
			return nil, err
		}
	}
	if err := libRows.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, library, notes, triplet_start, tags, comment
		 FROM lines ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, lib, noteText, tagsJSON, comment string
		var tripletStart int
		if err := rows.Scan(&id, &lib, &noteText, &tripletStart, &tagsJSON, &comment); err != nil {
			return nil, err
		}
		l, err := rebuildLine(id, lib, noteText, tripletStart, tagsJSON, comment)
		if err != nil {
			// best effort: one bad row should not take the whole
			// registry down
			fmt.Printf("Skipping line %v because: %v\n", id, err)
			continue
		}
		reg.Add(l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reg, nil
}

func rebuildLine(id, lib, noteText string, tripletStart int, tagsJSON, comment string) (model.Line, error) {
	notes, err := note.ParseAll(strings.Fields(noteText))
	if err != nil {
		return model.Line{}, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return model.Line{}, fmt.Errorf("decode tags: %w", err)
	}
	return line.Rebuild(model.Line{
		ID:        id,
		Tags:      tags,
		LibraryID: lib,
		Comment:   comment,
	}, notes, tripletStart)
}

// SaveSequence stores a named performance order as line ID references,
// replacing any previous version of the name.
func (s *Store) SaveSequence(name string, ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sequences WHERE name = ?`, name); err != nil {
		return err
	}
	for i, id := range ids {
		if _, err := tx.Exec(
			`INSERT INTO sequences (name, position, line_id) VALUES (?, ?, ?)`,
			name, i, id,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadSequence returns the line IDs of a named sequence in order.
func (s *Store) LoadSequence(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT line_id FROM sequences WHERE name = ? ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
