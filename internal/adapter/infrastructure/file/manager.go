// Package file provides file system operations adapter implementation.
package file

import (
	"fmt"
	"os"
	"time"

	"pptpd-setup/internal/port"
)

// ManagerAdapter is an adapter that implements the FileManager port using the standard os package.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ReadFile reads the contents of a file.
func (f *ManagerAdapter) ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return data, nil
}

// WriteFile writes data to a file with specified permissions.
func (f *ManagerAdapter) WriteFile(filename string, data []byte, perm int) error {
	if err := os.WriteFile(filename, data, os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (f *ManagerAdapter) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// BackupFile copies a file to a timestamped sibling, preserving the file
// mode, and returns the backup path.
func (f *ManagerAdapter) BackupFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	info, err := os.Stat(filename)
	if err != nil {
		return "", fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	backupPath := fmt.Sprintf("%s.bak.%s", filename, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Chmod changes the permissions of a file.
func (f *ManagerAdapter) Chmod(filename string, perm int) error {
	if err := os.Chmod(filename, os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to chmod file %s: %w", filename, err)
	}
	return nil
}

// MkdirAll creates a directory and any missing parents.
func (f *ManagerAdapter) MkdirAll(path string, perm int) error {
	if err := os.MkdirAll(path, os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
