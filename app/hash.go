package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

type hashResult struct {
	file models.FileRecord
	err  error
}

// hashFiles computes content digests for the size-filtered candidates on
// a fixed pool of workers. Each worker checks the cancel flag before
// starting a file, so cancellation stops new work without interrupting
// reads already in flight. Files whose hash fails are reported into errs
// and dropped; they never reach grouping without a digest.
func (s *Scanner) hashFiles(files []models.FileRecord, errs *[]string) []models.FileRecord {
	jobs := make(chan models.FileRecord, len(files))
	results := make(chan hashResult, len(files))

	workers := hashWorkers
	if len(files) < workers {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				if s.cancelled.Load() {
					return
				}
				hash, err := hashFile(f.Path)
				if err != nil {
					results <- hashResult{file: f, err: err}
					continue
				}
				f.Hash = hash
				s.processed.Add(1)
				results <- hashResult{file: f}
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	hashed := make([]models.FileRecord, 0, len(files))
	for res := range results {
		if res.err != nil {
			*errs = append(*errs, fmt.Sprintf("failed to hash %s: %v", res.file.Path, res.err))
			continue
		}
		hashed = append(hashed, res.file)
	}
	return hashed
}

// hashFile streams the file through SHA-256 in fixed-size chunks, so files
// near the size ceiling never have to fit in memory. The size is rechecked
// against the ceiling here because it may have grown since collection.
func hashFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("file too large (%d > %d bytes)", info.Size(), maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
