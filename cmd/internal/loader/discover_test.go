package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0o644))
}

func TestLatestDocumentPicksNewestTimestamp(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "si", "2024-01-01T00-00-00.xml"))
	touch(t, filepath.Join(dir, "si", "2024-03-11T13-59-19.xml"))

	path, ok := latestDocument(dir)
	require.True(t, ok)
	assert.Equal(t, "2024-03-11T13-59-19.xml", filepath.Base(path))
}

func TestLatestDocumentConsidersXHTML(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "si", "2023-05-05T10-00-00.xml"))
	touch(t, filepath.Join(dir, "si", "2024-05-05T10-00-00.xhtml"))

	path, ok := latestDocument(dir)
	require.True(t, ok)
	assert.Equal(t, "2024-05-05T10-00-00.xhtml", filepath.Base(path))
}

func TestLatestDocumentIgnoresFilesWithoutTimestamp(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "si", "readme.xml"))

	_, ok := latestDocument(dir)
	assert.False(t, ok)
}

func TestLatestDocumentEmptyCompany(t *testing.T) {
	dir := t.TempDir()

	_, ok := latestDocument(dir)
	assert.False(t, ok)
}

func TestCompanyDirsTwoLevels(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "1", "Acme GmbH", "si"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2", "Beta AG"), 0o755))
	// A stray file at the company level must not count as a company.
	touch(t, filepath.Join(root, "1", "notes.txt"))

	dirs, err := companyDirs(root)
	require.NoError(t, err)
	assert.Len(t, dirs, 2)
}
