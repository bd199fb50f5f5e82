package app

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// collectFiles walks one root and returns a record for every regular file
// that passes the size filters. Symlinks are never followed. Access
// failures are appended to errs and do not stop the traversal; a set
// cancel flag does, returning whatever was collected so far.
func (s *Scanner) collectFiles(root string, errs *[]string) []models.FileRecord {
	var files []models.FileRecord

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if s.cancelled.Load() {
			return filepath.SkipAll
		}
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("failed to read %s: %v", path, err))
			return nil
		}

		if d.IsDir() {
			if !s.cfg.Recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("failed to read %s: %v", path, err))
			return nil
		}

		size := info.Size()
		if size < s.cfg.MinSize {
			return nil
		}
		if size > maxFileSize {
			*errs = append(*errs, fmt.Sprintf("file too large: %s (%s)", path, models.FormatSize(size)))
			return nil
		}

		files = append(files, models.FileRecord{
			Path: path,
			Name: d.Name(),
			Size: size,
		})
		return nil
	})

	return files
}
