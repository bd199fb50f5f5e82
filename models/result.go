package models

import "time"

// DuplicateGroup is a set of two or more files with identical content.
// WastedSize is the space reclaimed by keeping a single copy.
type DuplicateGroup struct {
	Hash       string       `json:"hash"`
	Files      []FileRecord `json:"files"`
	TotalSize  int64        `json:"total_size"`
	WastedSize int64        `json:"wasted_size"`
}

// ScanResult is the immutable output of one scan invocation.
type ScanResult struct {
	TotalFiles      int              `json:"total_files"`
	TotalSize       int64            `json:"total_size"`
	DuplicateGroups []DuplicateGroup `json:"duplicate_groups"`
	TotalDuplicates int              `json:"total_duplicates"`
	WastedSpace     int64            `json:"wasted_space"`
	Errors          []string         `json:"errors,omitempty"`
}

// ScanSummary is the compact form persisted to the history database.
type ScanSummary struct {
	RootPaths       []string `json:"root_paths"`
	TotalFiles      int      `json:"total_files"`
	TotalSize       int64    `json:"total_size"`
	GroupCount      int      `json:"group_count"`
	TotalDuplicates int      `json:"total_duplicates"`
	WastedSpace     int64    `json:"wasted_space"`
	ErrorCount      int      `json:"error_count"`
	DurationMs      int64    `json:"duration_ms"`
}

type ScanHistoryEntry struct {
	ID       int64       `json:"id"`
	ScanTime time.Time   `json:"scan_time"`
	Summary  ScanSummary `json:"summary"`
}

// OperationLog records one delete or move performed on scan output.
type OperationLog struct {
	Operation   string    `json:"operation"`
	Source      string    `json:"source"`
	Destination string    `json:"destination,omitempty"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Time        time.Time `json:"time"`
}
