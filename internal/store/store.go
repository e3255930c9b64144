// Package store persists processed documents, their sections and their
// chunks in SQLite.
//
//	st, err := store.Open("./storage/edusum.db")
//	err = st.SaveDocument(ctx, doc, sections, chunks)
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	filename      TEXT NOT NULL,
	title         TEXT NOT NULL,
	content_hash  TEXT NOT NULL,
	strategy      TEXT NOT NULL,
	section_count INTEGER NOT NULL,
	chunk_count   INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);

CREATE TABLE IF NOT EXISTS sections (
	doc_id     TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	id         TEXT NOT NULL,
	title      TEXT NOT NULL,
	preview    TEXT NOT NULL,
	content    TEXT NOT NULL,
	type       TEXT NOT NULL,
	confidence INTEGER NOT NULL,
	PRIMARY KEY (doc_id, id)
);

CREATE TABLE IF NOT EXISTS chunks (
	doc_id        TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	chunk_id      INTEGER NOT NULL,
	text          TEXT NOT NULL,
	char_count    INTEGER NOT NULL,
	section_id    TEXT NOT NULL,
	section_title TEXT NOT NULL,
	overlap_words INTEGER NOT NULL,
	PRIMARY KEY (doc_id, chunk_id)
);
CREATE INDEX IF NOT EXISTS idx_chunks_section ON chunks(doc_id, section_id);
`

// Document is the stored summary of one processed upload.
type Document struct {
	ID           string    `json:"doc_id"`
	Filename     string    `json:"filename"`
	Title        string    `json:"title"`
	ContentHash  string    `json:"content_hash"`
	Strategy     string    `json:"strategy"`
	SectionCount int       `json:"section_count"`
	ChunkCount   int       `json:"chunk_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
		dsn = "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if path == ":memory:" {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDocument writes doc with its sections and chunks in one transaction,
// replacing any earlier copy with the same id.
func (s *Store) SaveDocument(ctx context.Context, doc Document, sections []outline.Section, chunks []outline.Chunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := deleteDocument(ctx, tx, doc.ID); err != nil {
		return err
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, filename, title, content_hash, strategy, section_count, chunk_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Filename, doc.Title, doc.ContentHash, doc.Strategy,
		len(sections), len(chunks), doc.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("store: insert document: %w", err)
	}

	secStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sections (doc_id, position, id, title, preview, content, type, confidence)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare sections: %w", err)
	}
	defer secStmt.Close()
	for i, sec := range sections {
		if _, err := secStmt.ExecContext(ctx, doc.ID, i, sec.ID, sec.Title, sec.Preview, sec.Content, string(sec.Type), sec.Confidence); err != nil {
			return fmt.Errorf("store: insert section %s: %w", sec.ID, err)
		}
	}

	chunkStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks (doc_id, chunk_id, text, char_count, section_id, section_title, overlap_words)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare chunks: %w", err)
	}
	defer chunkStmt.Close()
	for _, c := range chunks {
		if _, err := chunkStmt.ExecContext(ctx, doc.ID, c.ChunkID, c.Text, c.CharCount, c.SectionID, c.SectionTitle, c.OverlapWords); err != nil {
			return fmt.Errorf("store: insert chunk %d: %w", c.ChunkID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

const documentColumns = `id, filename, title, content_hash, strategy, section_count, chunk_count, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (Document, error) {
	var d Document
	var created int64
	if err := row.Scan(&d.ID, &d.Filename, &d.Title, &d.ContentHash, &d.Strategy, &d.SectionCount, &d.ChunkCount, &created); err != nil {
		return Document{}, err
	}
	d.CreatedAt = time.Unix(0, created).UTC()
	return d, nil
}

func (s *Store) queryDocument(ctx context.Context, query string, args ...any) (Document, error) {
	d, err := scanDocument(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("store: query document: %w", err)
	}
	return d, nil
}

// GetDocument returns the document with id.
func (s *Store) GetDocument(ctx context.Context, id string) (Document, error) {
	return s.queryDocument(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
}

// FindByHash returns the most recent document whose content hash matches.
func (s *Store) FindByHash(ctx context.Context, hash string) (Document, error) {
	return s.queryDocument(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE content_hash = ? ORDER BY created_at DESC LIMIT 1`, hash)
}

// Latest returns the most recently stored document.
func (s *Store) Latest(ctx context.Context) (Document, error) {
	return s.queryDocument(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC, rowid DESC LIMIT 1`)
}

// ListDocuments returns all documents, newest first.
func (s *Store) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Sections returns the sections of a document in outline order.
func (s *Store) Sections(ctx context.Context, docID string) ([]outline.Section, error) {
	if _, err := s.GetDocument(ctx, docID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, preview, content, type, confidence FROM sections WHERE doc_id = ? ORDER BY position`, docID)
	if err != nil {
		return nil, fmt.Errorf("store: list sections: %w", err)
	}
	defer rows.Close()

	sections := []outline.Section{}
	for rows.Next() {
		var sec outline.Section
		var typ string
		if err := rows.Scan(&sec.ID, &sec.Title, &sec.Preview, &sec.Content, &typ, &sec.Confidence); err != nil {
			return nil, fmt.Errorf("store: scan section: %w", err)
		}
		sec.Type = outline.HeadingType(typ)
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// Chunks returns the chunks of a document in id order. A non-empty
// sectionID restricts the result to that section.
func (s *Store) Chunks(ctx context.Context, docID, sectionID string) ([]outline.Chunk, error) {
	if _, err := s.GetDocument(ctx, docID); err != nil {
		return nil, err
	}
	query := `SELECT chunk_id, text, char_count, section_id, section_title, overlap_words FROM chunks WHERE doc_id = ?`
	args := []any{docID}
	if sectionID != "" {
		query += ` AND section_id = ?`
		args = append(args, sectionID)
	}
	query += ` ORDER BY chunk_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list chunks: %w", err)
	}
	defer rows.Close()

	chunks := []outline.Chunk{}
	for rows.Next() {
		var c outline.Chunk
		if err := rows.Scan(&c.ChunkID, &c.Text, &c.CharCount, &c.SectionID, &c.SectionTitle, &c.OverlapWords); err != nil {
			return nil, fmt.Errorf("store: scan chunk: %w", err)
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// DeleteDocument removes a document with its sections and chunks.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	n, err := deleteDocument(ctx, tx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// deleteDocument removes every row belonging to id and returns how many
// document rows went. Child rows are deleted explicitly so removal does not
// depend on the foreign_keys pragma.
func deleteDocument(ctx context.Context, tx *sql.Tx, id string) (int64, error) {
	for _, q := range []string{
		`DELETE FROM chunks WHERE doc_id = ?`,
		`DELETE FROM sections WHERE doc_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return 0, fmt.Errorf("store: delete %s: %w", id, err)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("store: delete %s: %w", id, err)
	}
	return res.RowsAffected()
}
