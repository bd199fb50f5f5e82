package app

import (
	"errors"
	"sort"
	"sync/atomic"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// Pipeline limits. The worker cap is a tunable constant, not derived from
// measured I/O throughput.
const (
	maxFileSize   = 10 * 1024 * 1024 * 1024
	hashWorkers   = 8
	hashChunkSize = 1024 * 1024
)

var ErrNoRoots = errors.New("no root directories to scan")

// Scanner runs the duplicate detection pipeline: collect files, drop
// unique sizes, hash the remaining candidates in parallel and group them
// by digest. The progress counters and the cancel flag are safe to read
// from other goroutines while a scan is running.
type Scanner struct {
	cfg models.ScanConfig

	processed atomic.Int64
	total     atomic.Int64
	cancelled atomic.Bool
}

func NewScanner(cfg models.ScanConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Progress reports how many candidates have been hashed so far and how
// many there are in total. Total stays zero until hashing begins.
func (s *Scanner) Progress() (processed, total int64) {
	return s.processed.Load(), s.total.Load()
}

// Cancel stops the scan cooperatively: traversal halts at the next entry
// and no new files are scheduled for hashing. In-flight reads finish.
func (s *Scanner) Cancel() {
	s.cancelled.Store(true)
}

func (s *Scanner) Cancelled() bool {
	return s.cancelled.Load()
}

// Reset clears the cancel flag and the progress counters so the scanner
// can be reused for a fresh scan.
func (s *Scanner) Reset() {
	s.cancelled.Store(false)
	s.processed.Store(0)
	s.total.Store(0)
}

// Scan walks the given roots and returns the assembled duplicate report.
// Only an empty root list is rejected up front; every per-file failure is
// folded into the result's error list instead of aborting the scan. A
// cancelled scan returns a partial but well formed result, which callers
// are expected to discard.
func (s *Scanner) Scan(roots []string) (*models.ScanResult, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	s.processed.Store(0)
	s.total.Store(0)

	result := &models.ScanResult{}

	var files []models.FileRecord
	for _, root := range roots {
		if s.cancelled.Load() {
			return result, nil
		}
		files = append(files, s.collectFiles(root, &result.Errors)...)
	}
	if s.cancelled.Load() {
		return result, nil
	}

	result.TotalFiles = len(files)
	for _, f := range files {
		result.TotalSize += f.Size
	}

	candidates := sizeCandidates(files)
	if len(candidates) == 0 || s.cancelled.Load() {
		return result, nil
	}

	s.total.Store(int64(len(candidates)))

	hashed := s.hashFiles(candidates, &result.Errors)
	if s.cancelled.Load() {
		return result, nil
	}

	for _, group := range buildGroups(hashed) {
		result.TotalDuplicates += len(group.Files) - 1
		result.WastedSpace += group.WastedSize
		result.DuplicateGroups = append(result.DuplicateGroups, group)
	}

	// Largest savings first, ties kept in discovery order.
	sort.SliceStable(result.DuplicateGroups, func(i, j int) bool {
		return result.DuplicateGroups[i].WastedSize > result.DuplicateGroups[j].WastedSize
	})

	return result, nil
}
