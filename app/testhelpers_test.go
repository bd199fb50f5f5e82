package app

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

// writeFile creates a file (and any parent directories) under dir and
// returns its full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func defaultScanner() *Scanner {
	return NewScanner(models.ScanConfig{Recursive: true, MinSize: 1})
}

// groupPaths returns the member paths of every group as sorted sets, for
// order-insensitive comparisons.
func groupPaths(result *models.ScanResult) map[string][]string {
	groups := make(map[string][]string)
	for _, g := range result.DuplicateGroups {
		var paths []string
		for _, f := range g.Files {
			paths = append(paths, f.Path)
		}
		sort.Strings(paths)
		groups[g.Hash] = paths
	}
	return groups
}
