package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Amount\n"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "report.txt")

	require.NoError(t, WriteFile(path, []byte("report"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report", string(data))
}

func TestIsDocument(t *testing.T) {
	assert.True(t, IsDocument("statement.pdf", []byte("anything")))
	assert.True(t, IsDocument("statement.PDF", []byte("anything")))
	assert.True(t, IsDocument("export.dat", []byte("%PDF-1.7 rest")))
	assert.False(t, IsDocument("card.csv", []byte("Date,Amount\n")))
}
