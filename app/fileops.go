package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// FileOps deletes or relocates paths named by scan output. It knows
// nothing about duplicate detection; it only executes what it is told and
// keeps a log of every attempt.
type FileOps struct {
	logs []models.OperationLog
}

func NewFileOps() *FileOps {
	return &FileOps{}
}

func (o *FileOps) Logs() []models.OperationLog {
	return o.logs
}

func (o *FileOps) ClearLogs() {
	o.logs = nil
}

func (o *FileOps) DeleteFile(path string) models.OperationLog {
	if err := os.Remove(path); err != nil {
		return o.log("DELETE", path, "", false, fmt.Sprintf("failed to delete %s: %v", path, err))
	}
	return o.log("DELETE", path, "", true, fmt.Sprintf("deleted %s", path))
}

func (o *FileOps) DeleteFiles(paths []string) []models.OperationLog {
	results := make([]models.OperationLog, 0, len(paths))
	for _, p := range paths {
		results = append(results, o.DeleteFile(p))
	}
	return results
}

// MoveFile relocates source into destDir, creating the directory if
// needed. A name clash in the destination gets a numbered suffix instead
// of overwriting. Falls back to copy-and-remove when rename fails, which
// covers moves across volumes.
func (o *FileOps) MoveFile(source, destDir string) models.OperationLog {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return o.log("MOVE", source, "", false,
			fmt.Sprintf("failed to create directory %s: %v", destDir, err))
	}

	dest := filepath.Join(destDir, filepath.Base(source))
	if _, err := os.Lstat(dest); err == nil {
		dest = uniquePath(dest)
	}

	if err := os.Rename(source, dest); err != nil {
		if copyErr := copyFile(source, dest); copyErr != nil {
			return o.log("MOVE", source, dest, false,
				fmt.Sprintf("failed to move %s: %v", source, err))
		}
		if rmErr := os.Remove(source); rmErr != nil {
			// The copy landed but the source is stuck; undo the copy so
			// the file does not end up duplicated by the move itself.
			os.Remove(dest)
			return o.log("MOVE", source, dest, false,
				fmt.Sprintf("failed to complete move of %s: %v", source, rmErr))
		}
	}

	return o.log("MOVE", source, dest, true, fmt.Sprintf("moved %s -> %s", source, dest))
}

func (o *FileOps) MoveFiles(sources []string, destDir string) []models.OperationLog {
	results := make([]models.OperationLog, 0, len(sources))
	for _, s := range sources {
		results = append(results, o.MoveFile(s, destDir))
	}
	return results
}

func (o *FileOps) log(op, source, dest string, success bool, msg string) models.OperationLog {
	entry := models.OperationLog{
		Operation:   op,
		Source:      source,
		Destination: dest,
		Success:     success,
		Message:     msg,
		Time:        time.Now(),
	}
	o.logs = append(o.logs, entry)
	return entry
}

// uniquePath finds an unused variant of path by appending a counter to
// the stem, with a random suffix as the last resort.
func uniquePath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 1; i <= 10000; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, uuid.NewString(), ext))
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
