package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteArchive is the durable exchange log.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive opens (or creates) the archive database.
// If dbPath is empty, defaults to "./data/transcript.db".
func NewSQLiteArchive(ctx context.Context, dbPath string) (*SQLiteArchive, error) {
	if dbPath == "" {
		dbPath = "./data/transcript.db"
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	a := &SQLiteArchive{db: db}
	if err := a.initSchema(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// initSchema creates tables if they don't exist.
func (a *SQLiteArchive) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		reply TEXT NOT NULL,
		source TEXT NOT NULL,
		ts INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exchanges_ts ON exchanges(ts DESC);
	CREATE INDEX IF NOT EXISTS idx_exchanges_source ON exchanges(source);
	`
	_, err := a.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

// Ping checks the database connection.
func (a *SQLiteArchive) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// AddExchange inserts an exchange, assigning id and timestamp if unset.
func (a *SQLiteArchive) AddExchange(ctx context.Context, ex *Exchange) error {
	stampExchange(ex)

	_, err := a.db.ExecContext(ctx,
		`INSERT INTO exchanges (id, question, reply, source, ts) VALUES (?, ?, ?, ?, ?)`,
		ex.ID, ex.Question, ex.Reply, ex.Source, ex.Timestamp,
	)
	return err
}

// RecentExchanges returns up to limit exchanges, newest first.
func (a *SQLiteArchive) RecentExchanges(ctx context.Context, limit int) ([]Exchange, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, question, reply, source, ts FROM exchanges ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(&ex.ID, &ex.Question, &ex.Reply, &ex.Source, &ex.Timestamp); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, ex)
	}
	return exchanges, rows.Err()
}

// CountExchanges returns the total number of logged exchanges.
func (a *SQLiteArchive) CountExchanges(ctx context.Context) (int64, error) {
	var count int64
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exchanges`).Scan(&count)
	return count, err
}

// CountBySource returns the number of exchanges with the given source.
func (a *SQLiteArchive) CountBySource(ctx context.Context, source string) (int64, error) {
	var count int64
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exchanges WHERE source = ?`, source).Scan(&count)
	return count, err
}

// LastActivity returns the timestamp of the newest exchange, or nil when the
// log is empty.
func (a *SQLiteArchive) LastActivity(ctx context.Context) (*time.Time, error) {
	var ts int64
	err := a.db.QueryRowContext(ctx, `SELECT ts FROM exchanges ORDER BY ts DESC LIMIT 1`).Scan(&ts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := time.UnixMilli(ts)
	return &t, nil
}
