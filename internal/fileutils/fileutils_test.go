package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(tempDir, "missing.txt")))
	assert.False(t, FileExists(tempDir))
}

func TestDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	assert.True(t, DirectoryExists(tempDir))
	assert.False(t, DirectoryExists(filepath.Join(tempDir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestDecodeTextUTF8(t *testing.T) {
	assert.Equal(t, "DEDUÇÕES", DecodeText([]byte("DEDUÇÕES")))
}

func TestDecodeTextISO88591(t *testing.T) {
	// "DEDUÇÕES" in ISO-8859-1: Ç=0xC7, Õ=0xD5.
	latin1 := []byte{'D', 'E', 'D', 'U', 0xC7, 0xD5, 'E', 'S'}

	assert.Equal(t, "DEDUÇÕES", DecodeText(latin1))
}

func TestReadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte{'|', '0', '0', '0', '0', '|', 0xC7, '|'}, 0644))

	content, err := ReadFileText(path)
	require.NoError(t, err)
	assert.Equal(t, "|0000|Ç|", content)

	_, err = ReadFileText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
