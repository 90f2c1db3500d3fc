package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	return path
}

func TestCheckFileMissing(t *testing.T) {
	v := &Validator{Quiet: true}

	err := v.CheckFile(filepath.Join(t.TempDir(), "nope.mp4"))
	require.Error(t, err)

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCheckFileDirectory(t *testing.T) {
	v := &Validator{Quiet: true}

	err := v.CheckFile(t.TempDir())
	require.Error(t, err)

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCheckFileTooLarge(t *testing.T) {
	path := writeTempFile(t, "big.mp4", 2048)
	v := &Validator{MaxSize: 1024, Quiet: true}

	err := v.CheckFile(path)
	require.Error(t, err)

	var tooLarge *TooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, int64(2048), tooLarge.Size)
	assert.Equal(t, int64(1024), tooLarge.Max)
}

func TestCheckFileOK(t *testing.T) {
	path := writeTempFile(t, "ok.mp4", 512)
	v := &Validator{MaxSize: 1024, Quiet: true}

	assert.NoError(t, v.CheckFile(path))
}

func TestCheckFileAtLimit(t *testing.T) {
	path := writeTempFile(t, "edge.mp4", 1024)
	v := &Validator{MaxSize: 1024, Quiet: true}

	// The ceiling is inclusive; only strictly larger files are rejected.
	assert.NoError(t, v.CheckFile(path))
}

func TestCheckFilesStopsAtFirstFailure(t *testing.T) {
	good := writeTempFile(t, "a.mp4", 10)
	missing := filepath.Join(t.TempDir(), "missing.mp4")
	v := &Validator{Quiet: true}

	err := v.CheckFiles([]string{good, missing})
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, missing, notFound.Path)
}
