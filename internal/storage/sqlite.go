// Package storage provides SQLite-based persistence for the render history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/fractals/internal/core"
)

// Render modes recorded in the history.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeSSH      = "ssh"
	ModePNG      = "png"
	ModeVideo    = "mp4"
	ModeFrames   = "frames"
)

// Store manages the SQLite database connection for the render history.
type Store struct {
	db *sql.DB
}

// RenderRecord is one finished render of one curve level.
type RenderRecord struct {
	ID        int64
	CurveID   string
	Level     int
	Mode      string
	Edges     int
	Width     int
	Height    int
	Colors    string // colormap name or line color
	Output    string // file path, empty for interactive modes
	Elapsed   time.Duration
	CreatedAt time.Time
}

// DefaultPath is the database location used when none is configured.
const DefaultPath = "~/.fractals/history.db"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w: %w", core.ErrResource, err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w: %w", dir, core.ErrResource, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w: %w", core.ErrResource, err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w: %w", core.ErrResource, err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w: %w", core.ErrResource, err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			curve_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			mode TEXT NOT NULL,
			edges INTEGER NOT NULL DEFAULT 0,
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			colors TEXT NOT NULL DEFAULT '',
			output TEXT NOT NULL DEFAULT '',
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_curve_id ON renders(curve_id);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRender records a finished render.
// Returns the ID of the inserted record.
func (s *Store) SaveRender(r RenderRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO renders
		 (curve_id, level, mode, edges, width, height, colors, output, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.CurveID, r.Level, r.Mode, r.Edges, r.Width, r.Height, r.Colors, r.Output,
		r.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save render: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const renderColumns = `id, curve_id, level, mode, edges, width, height, colors, output, elapsed_ms, created_at`

// RecentRenders retrieves the most recent renders of any curve, newest first.
func (s *Store) RecentRenders(limit int) ([]RenderRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRenders(
		`SELECT `+renderColumns+`
		 FROM renders
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// RendersByCurve retrieves the most recent renders of one curve.
func (s *Store) RendersByCurve(curveID string, limit int) ([]RenderRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRenders(
		`SELECT `+renderColumns+`
		 FROM renders
		 WHERE curve_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		curveID, limit,
	)
}

func (s *Store) queryRenders(query string, args ...any) ([]RenderRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var records []RenderRecord
	for rows.Next() {
		var (
			r         RenderRecord
			elapsedMs int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.CurveID, &r.Level, &r.Mode, &r.Edges, &r.Width, &r.Height,
			&r.Colors, &r.Output, &elapsedMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearRenders deletes the history of one curve, or of every curve when
// curveID is empty.
func (s *Store) ClearRenders(curveID string) error {
	var err error
	if curveID == "" {
		_, err = s.db.Exec("DELETE FROM renders")
	} else {
		_, err = s.db.Exec("DELETE FROM renders WHERE curve_id = ?", curveID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear renders: %w", err)
	}
	return nil
}

// CurveStats contains aggregated statistics for a curve.
type CurveStats struct {
	CurveID      string
	Renders      int
	MaxLevel     int
	MaxEdges     int
	TotalEdges   int64
	AvgElapsed   time.Duration
	LastRendered time.Time
}

// CurveStats retrieves aggregated statistics for a specific curve.
func (s *Store) CurveStats(curveID string) (*CurveStats, error) {
	stats := &CurveStats{CurveID: curveID}

	var avgMs float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level), 0), COALESCE(MAX(edges), 0),
		        COALESCE(SUM(edges), 0), COALESCE(AVG(elapsed_ms), 0)
		 FROM renders WHERE curve_id = ?`,
		curveID,
	).Scan(&stats.Renders, &stats.MaxLevel, &stats.MaxEdges, &stats.TotalEdges, &avgMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get curve stats: %w", err)
	}
	stats.AvgElapsed = time.Duration(avgMs * float64(time.Millisecond))

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM renders WHERE curve_id = ? ORDER BY created_at DESC LIMIT 1`,
		curveID,
	).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last render: %w", err)
	}
	if err == nil {
		stats.LastRendered = parseTime(last)
	}

	return stats, nil
}

// AllCurveStats retrieves statistics for every curve that has been rendered.
func (s *Store) AllCurveStats() (map[string]*CurveStats, error) {
	rows, err := s.db.Query(
		`SELECT curve_id, COUNT(*), MAX(level), MAX(edges), SUM(edges), AVG(elapsed_ms), MAX(created_at)
		 FROM renders
		 GROUP BY curve_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get curve stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CurveStats)
	for rows.Next() {
		var (
			cs    CurveStats
			avgMs float64
			last  any
		)
		if err := rows.Scan(&cs.CurveID, &cs.Renders, &cs.MaxLevel, &cs.MaxEdges, &cs.TotalEdges, &avgMs, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.AvgElapsed = time.Duration(avgMs * float64(time.Millisecond))
		cs.LastRendered = parseTime(last)
		stats[cs.CurveID] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
