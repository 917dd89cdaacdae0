// Package journal persists oracle request/response events to SQLite so
// failed generations can be inspected after the fact. Session state never
// lives here; documents and learning sessions are in-process only.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const schema = `
CREATE TABLE IF NOT EXISTS oracle_events (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp      DATETIME NOT NULL,
	provider       TEXT NOT NULL,
	model          TEXT NOT NULL,
	purpose        TEXT NOT NULL,
	latency_ms     INTEGER NOT NULL,
	input_tokens   INTEGER NOT NULL,
	output_tokens  INTEGER NOT NULL,
	success        INTEGER NOT NULL,
	error_message  TEXT NOT NULL DEFAULT '',
	request_body   TEXT NOT NULL DEFAULT '',
	response_body  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_oracle_events_purpose ON oracle_events(purpose);
`

// OracleEvent is a journaled oracle round trip.
type OracleEvent struct {
	ID           int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Journal is a SQLite-backed oracle event log.
type Journal struct {
	db *sql.DB
}

var _ llm.Recorder = (*Journal)(nil)

// Open creates a Journal connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Journal, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends an oracle event. Implements llm.Recorder.
func (j *Journal) Record(ctx context.Context, ev llm.Event) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO oracle_events
		 (timestamp, provider, model, purpose, latency_ms, input_tokens,
		  output_tokens, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), ev.Provider, ev.Model, ev.Purpose, ev.LatencyMs,
		ev.InputTokens, ev.OutputTokens, boolToInt(ev.Success),
		ev.ErrorMessage, ev.RequestBody, ev.ResponseBody)
	if err != nil {
		return fmt.Errorf("insert oracle event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first. limit <= 0 means 50.
func (j *Journal) List(ctx context.Context, limit int) ([]OracleEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, latency_ms,
		        input_tokens, output_tokens, success, error_message
		 FROM oracle_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query oracle events: %w", err)
	}
	defer rows.Close()

	var events []OracleEvent
	for rows.Next() {
		var ev OracleEvent
		var success int
		if err := rows.Scan(&ev.ID, &ev.Timestamp, &ev.Provider, &ev.Model,
			&ev.Purpose, &ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens,
			&success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan oracle event: %w", err)
		}
		ev.Success = success != 0
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Get returns one event with full request/response bodies, or nil if absent.
func (j *Journal) Get(ctx context.Context, id int64) (*OracleEvent, error) {
	row := j.db.QueryRowContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, latency_ms,
		        input_tokens, output_tokens, success, error_message,
		        request_body, response_body
		 FROM oracle_events WHERE id = ?`, id)

	var ev OracleEvent
	var success int
	err := row.Scan(&ev.ID, &ev.Timestamp, &ev.Provider, &ev.Model,
		&ev.Purpose, &ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens,
		&success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get oracle event: %w", err)
	}
	ev.Success = success != 0
	return &ev, nil
}

// applyPragmas configures SQLite for single-user append-heavy use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DefaultPath resolves the journal file path in priority order:
// 1. LEARNFORGE_DB environment variable
// 2. $XDG_DATA_HOME/learnforge/learnforge.db
// 3. ~/.local/share/learnforge/learnforge.db
func DefaultPath() (string, error) {
	if p := os.Getenv("LEARNFORGE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learnforge", "learnforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
