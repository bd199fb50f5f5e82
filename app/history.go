package app

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// The history database stores summaries of completed scans and the log of
// file operations applied to their output. Scans never read from it; it
// exists for reporting only.
const historySchema = `
	CREATE TABLE IF NOT EXISTS scan_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_time INTEGER NOT NULL,
		stats_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scan_history_time ON scan_history(scan_time DESC);

	CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		op_time INTEGER NOT NULL,
		operation TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT,
		success INTEGER NOT NULL,
		message TEXT NOT NULL
	);
`

// OpenHistory opens the history database, creating the schema on first
// use.
func OpenHistory(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode = WAL: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// SaveScan stores the summary of a completed scan and returns its row id.
func SaveScan(db *sql.DB, roots []string, result *models.ScanResult, duration time.Duration) (int64, error) {
	summary := models.ScanSummary{
		RootPaths:       roots,
		TotalFiles:      result.TotalFiles,
		TotalSize:       result.TotalSize,
		GroupCount:      len(result.DuplicateGroups),
		TotalDuplicates: result.TotalDuplicates,
		WastedSpace:     result.WastedSpace,
		ErrorCount:      len(result.Errors),
		DurationMs:      duration.Milliseconds(),
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal scan summary: %w", err)
	}

	res, err := db.Exec(
		`INSERT INTO scan_history(scan_time, stats_json) VALUES (?, ?)`,
		time.Now().Unix(), string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan summary: %w", err)
	}

	return res.LastInsertId()
}

// ScanHistory returns the most recent scan summaries, newest first.
func ScanHistory(db *sql.DB, limit int) ([]models.ScanHistoryEntry, error) {
	rows, err := db.Query(
		`SELECT id, scan_time, stats_json FROM scan_history ORDER BY scan_time DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScanHistoryEntry
	for rows.Next() {
		var (
			entry    models.ScanHistoryEntry
			scanTime int64
			payload  string
		)
		if err := rows.Scan(&entry.ID, &scanTime, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &entry.Summary); err != nil {
			return nil, fmt.Errorf("failed to decode scan summary %d: %w", entry.ID, err)
		}
		entry.ScanTime = time.Unix(scanTime, 0)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SaveOperations appends file operation logs in one transaction.
func SaveOperations(db *sql.DB, logs []models.OperationLog) error {
	if len(logs) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO operations(op_time, operation, source, destination, success, message)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range logs {
		success := 0
		if entry.Success {
			success = 1
		}
		if _, err := stmt.Exec(
			entry.Time.Unix(), entry.Operation, entry.Source, entry.Destination, success, entry.Message,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return nil
}

// Operations returns the most recent file operation logs, newest first.
func Operations(db *sql.DB, limit int) ([]models.OperationLog, error) {
	rows, err := db.Query(`
		SELECT op_time, operation, source, destination, success, message
		FROM operations ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.OperationLog
	for rows.Next() {
		var (
			entry   models.OperationLog
			opTime  int64
			dest    sql.NullString
			success int
		)
		if err := rows.Scan(&opTime, &entry.Operation, &entry.Source, &dest, &success, &entry.Message); err != nil {
			return nil, err
		}
		entry.Time = time.Unix(opTime, 0)
		entry.Destination = dest.String
		entry.Success = success == 1
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
