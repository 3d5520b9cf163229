// Package fileutils provides the file acquisition boundary: checking paths
// and turning raw file bytes into text content. SPED files are commonly
// encoded in ISO-8859-1, so content that is not valid UTF-8 is transcoded
// before it reaches the parser.
package fileutils

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist.
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadFileText reads a file and returns its textual content. Bytes that are
// not valid UTF-8 are decoded as ISO-8859-1, the encoding mandated for most
// SPED deliveries.
func ReadFileText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeText(data), nil
}

// DecodeText converts raw file bytes to a UTF-8 string, transcoding from
// ISO-8859-1 when the bytes are not already valid UTF-8.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO-8859-1 decoding cannot fail on arbitrary bytes, but keep the
		// raw content rather than dropping it.
		return string(data)
	}
	return string(decoded)
}
