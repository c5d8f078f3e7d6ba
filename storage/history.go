package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Kind separates conversion entries from weather lookups
type Kind string

const (
	KindConversion Kind = "conversion"
	KindWeather    Kind = "weather"
)

type Entry struct {
	ID        string
	Kind      Kind
	Category  string // conversion category, empty for weather lookups
	Summary   string
	CreatedAt time.Time
}

type HistoryStorage struct {
	db *sql.DB
}

func NewHistoryStorage(dataDir string) (*HistoryStorage, error) {
	dbPath := filepath.Join(dataDir, "history.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	storage := &HistoryStorage{db: db}

	if err := storage.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return storage, nil
}

func (hs *HistoryStorage) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		summary TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
	`

	if _, err := hs.db.Exec(schema); err != nil {
		return err
	}

	if err := hs.migrateSchema(); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	return nil
}

// migrateSchema adds columns introduced after the first release
func (hs *HistoryStorage) migrateSchema() error {
	hasCategory, err := hs.columnExists("history", "category")
	if err != nil {
		return fmt.Errorf("failed to check for category column: %w", err)
	}

	if !hasCategory {
		if _, err := hs.db.Exec(`ALTER TABLE history ADD COLUMN category TEXT DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add category column: %w", err)
		}
	}

	return nil
}

// columnExists checks if a column exists in a table using PRAGMA table_info
func (hs *HistoryStorage) columnExists(tableName, columnName string) (bool, error) {
	rows, err := hs.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == columnName {
			return true, nil
		}
	}

	return false, rows.Err()
}

// Add records one entry and returns it with its generated ID
func (hs *HistoryStorage) Add(kind Kind, category, summary string) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Category:  category,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}

	_, err := hs.db.Exec(
		`INSERT INTO history (id, kind, category, summary, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Kind), entry.Category, entry.Summary, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert history entry: %w", err)
	}

	return entry, nil
}

// List returns up to limit entries, newest first
func (hs *HistoryStorage) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	rows, err := hs.db.Query(
		`SELECT id, kind, COALESCE(category, ''), summary, created_at
		 FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e    Entry
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Category, &e.Summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.Kind = Kind(kind)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return entries, nil
}

// Clear removes every entry
func (hs *HistoryStorage) Clear() error {
	if _, err := hs.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (hs *HistoryStorage) Close() error {
	return hs.db.Close()
}
