// File: filex.go
// Title: Core File Utilities
// Description: File existence checks, whole-file read/write and config file
//              creation. Writes hand the complete content to a single write
//              call so a file never ends up with old and new records mixed.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-03-02 v0.2.0: Reduced to the helpers used by the config store

package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilePerm is used for files created by pier
const DefaultFilePerm os.FileMode = 0o644

// DefaultDirPerm is used for directories created by pier
const DefaultDirPerm os.FileMode = 0o755

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// WriteFile truncates path and writes data in one call.
// The parent directory must already exist.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write file %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close file %s: %w", path, closeErr)
	}
	return nil
}

// MkdirAll creates a directory and all necessary parent directories
func MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// CreateIfMissing creates an empty file at path, including missing parent
// directories. It reports whether the file was created; an existing file is
// left untouched.
func CreateIfMissing(path string) (bool, error) {
	if Exists(path) {
		if IsDir(path) {
			return false, fmt.Errorf("path %s is a directory", path)
		}
		return false, nil
	}

	if err := MkdirAll(filepath.Dir(path), DefaultDirPerm); err != nil {
		return false, err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePerm)
	if err != nil {
		return false, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return true, nil
}
