package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// SQLiteRecorder implements Recorder backed by a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the database at dbPath and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS rounds (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp    INTEGER NOT NULL,
		target       TEXT NOT NULL,
		guess        REAL NOT NULL,
		target_value REAL NOT NULL,
		tolerance    REAL NOT NULL,
		correct      INTEGER NOT NULL,
		score        INTEGER NOT NULL
	)`)
	return err
}

// RecordRound inserts one answered round.
func (r *SQLiteRecorder) RecordRound(rec *RoundRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO rounds (timestamp, target, guess, target_value, tolerance, correct, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp, rec.Target, rec.Guess, rec.TargetValue, rec.Tolerance,
		boolToInt(rec.Correct), rec.Score,
	)
	return err
}

// RecentRounds returns up to limit rounds, newest first.
func (r *SQLiteRecorder) RecentRounds(limit int) ([]RoundRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, timestamp, target, guess, target_value, tolerance, correct, score
		 FROM rounds ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var correct int
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Target, &rec.Guess,
			&rec.TargetValue, &rec.Tolerance, &correct, &rec.Score); err != nil {
			return nil, err
		}
		rec.Correct = correct != 0
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close closes the underlying database connection.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
