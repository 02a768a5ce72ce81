// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pdfMagic is the signature at the start of every PDF document.
var pdfMagic = []byte("%PDF-")

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the entire contents of a file and returns it as a byte slice
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// WriteFile writes data to a file, creating any parent directories if needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// IsDocument reports whether the file content should be handled as an
// opaque statement document rather than a header-labelled table. The
// content magic wins over the file extension.
func IsDocument(filePath string, data []byte) bool {
	if bytes.HasPrefix(data, pdfMagic) {
		return true
	}
	return strings.EqualFold(filepath.Ext(filePath), ".pdf")
}
