package data

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS read_progress (
		comic_id   INTEGER PRIMARY KEY,
		title      VARCHAR,
		page       INTEGER,
		updated_at TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository tracks reading positions in a local DuckDB file.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBRepository opens (once) the history database at path, normally
// the configured db_path.
func NewDuckDBRepository(path string) *Repository {
	if duckDB == nil {
		db, err := InitDuckDB(path)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveProgress upserts the last page read for a comic.
func (r *Repository) SaveProgress(comicID int, title string, page int) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO read_progress (comic_id, title, page, updated_at) VALUES (?, ?, ?, ?)`,
		comicID, title, page, time.Now(),
	)
	return err
}

// GetProgress returns the last page read for a comic, or 0 if never opened.
func (r *Repository) GetProgress(comicID int) (int, error) {
	var page int
	err := r.db.QueryRow(`SELECT page FROM read_progress WHERE comic_id = ?`, comicID).Scan(&page)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return page, nil
}

// ListRecent returns reading history, most recent first.
func (r *Repository) ListRecent(limit int) ([]ReadProgress, error) {
	rows, err := r.db.Query(
		`SELECT comic_id, title, page, updated_at FROM read_progress ORDER BY updated_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReadProgress
	for rows.Next() {
		var p ReadProgress
		if err := rows.Scan(&p.ComicID, &p.Title, &p.Page, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
