package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Ryukendo/FileXSorter/models"
)

func collectedPaths(files []models.FileRecord) []string {
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestCollectRecursive(t *testing.T) {
	dir := t.TempDir()
	top := writeFile(t, dir, "top.txt", "aaa")
	nested := writeFile(t, dir, "sub/deep/nested.txt", "bbb")

	var errs []string
	files := defaultScanner().collectFiles(dir, &errs)

	assert.ElementsMatch(t, []string{top, nested}, collectedPaths(files))
	assert.Empty(t, errs)
}

func TestCollectNonRecursive(t *testing.T) {
	dir := t.TempDir()
	top := writeFile(t, dir, "top.txt", "aaa")
	writeFile(t, dir, "sub/nested.txt", "bbb")

	scanner := NewScanner(models.ScanConfig{Recursive: false, MinSize: 1})
	var errs []string
	files := scanner.collectFiles(dir, &errs)

	assert.Equal(t, []string{top}, collectedPaths(files))
}

func TestCollectMinSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.txt", "ab")
	big := writeFile(t, dir, "big.txt", "more than ten bytes")

	scanner := NewScanner(models.ScanConfig{Recursive: true, MinSize: 10})
	var errs []string
	files := scanner.collectFiles(dir, &errs)

	assert.Equal(t, []string{big}, collectedPaths(files))
}

func TestCollectRecordsMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/data.bin", "12345678")

	var errs []string
	files := defaultScanner().collectFiles(dir, &errs)

	require.Len(t, files, 1)
	assert.Equal(t, "data.bin", files[0].Name)
	assert.Equal(t, int64(8), files[0].Size)
	assert.Empty(t, files[0].Hash)
}

func TestCollectSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.txt", "content")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.txt")))

	// A directory symlink must not be descended into either.
	outside := t.TempDir()
	writeFile(t, outside, "unreachable.txt", "content")
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "linkdir")))

	var errs []string
	files := defaultScanner().collectFiles(dir, &errs)

	assert.Equal(t, []string{target}, collectedPaths(files))
	assert.Empty(t, errs)
}

func TestCollectMissingRootRecordsError(t *testing.T) {
	var errs []string
	files := defaultScanner().collectFiles(filepath.Join(t.TempDir(), "does-not-exist"), &errs)

	assert.Empty(t, files)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "does-not-exist")
}

func TestCollectStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aaa")
	writeFile(t, dir, "b.txt", "bbb")

	scanner := defaultScanner()
	scanner.Cancel()

	var errs []string
	files := scanner.collectFiles(dir, &errs)
	assert.Empty(t, files)
}
