package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doomed.txt", "bye")

	ops := NewFileOps()
	entry := ops.DeleteFile(path)

	assert.True(t, entry.Success)
	assert.Equal(t, "DELETE", entry.Operation)
	assert.NoFileExists(t, path)
	require.Len(t, ops.Logs(), 1)
}

func TestDeleteFileMissing(t *testing.T) {
	ops := NewFileOps()
	entry := ops.DeleteFile(filepath.Join(t.TempDir(), "never-existed.txt"))

	assert.False(t, entry.Success)
	assert.Contains(t, entry.Message, "failed to delete")
}

func TestDeleteFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x")
	b := writeFile(t, dir, "b.txt", "y")

	ops := NewFileOps()
	results := ops.DeleteFiles([]string{a, b, filepath.Join(dir, "missing.txt")})

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Success)
	assert.False(t, results[2].Success)
	assert.Len(t, ops.Logs(), 3)
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "file.txt", "payload")
	dest := filepath.Join(dir, "moved")

	ops := NewFileOps()
	entry := ops.MoveFile(src, dest)

	require.True(t, entry.Success, entry.Message)
	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(dest, "file.txt"))
	assert.Equal(t, filepath.Join(dest, "file.txt"), entry.Destination)
}

func TestMoveFileConflictGetsUniqueName(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "file.txt", "new content")
	dest := filepath.Join(dir, "moved")
	writeFile(t, dest, "file.txt", "already here")

	ops := NewFileOps()
	entry := ops.MoveFile(src, dest)

	require.True(t, entry.Success, entry.Message)
	assert.Equal(t, filepath.Join(dest, "file_1.txt"), entry.Destination)
	assert.FileExists(t, filepath.Join(dest, "file_1.txt"))

	// The existing file is untouched.
	content, err := os.ReadFile(filepath.Join(dest, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "already here", string(content))
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	ops := NewFileOps()
	entry := ops.MoveFile(filepath.Join(dir, "ghost.txt"), filepath.Join(dir, "moved"))

	assert.False(t, entry.Success)
	assert.Contains(t, entry.Message, "failed to move")
}

func TestUniquePathCountsUp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report.pdf", "1")
	writeFile(t, dir, "report_1.pdf", "2")
	writeFile(t, dir, "report_2.pdf", "3")

	got := uniquePath(filepath.Join(dir, "report.pdf"))
	assert.Equal(t, filepath.Join(dir, "report_3.pdf"), got)
}

func TestUniquePathNoExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "LICENSE", "1")

	got := uniquePath(filepath.Join(dir, "LICENSE"))
	assert.Equal(t, filepath.Join(dir, "LICENSE_1"), got)
}

func TestClearLogs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x")

	ops := NewFileOps()
	ops.DeleteFile(path)
	require.NotEmpty(t, ops.Logs())

	ops.ClearLogs()
	assert.Empty(t, ops.Logs())
}
