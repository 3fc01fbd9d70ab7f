// Package fsutil provides file system utilities for safe and atomic file operations.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// AtomicWriteFile writes data to a file atomically.
// It writes to a temporary file first, syncs it to disk, then renames it to the target path.
// This ensures that the file is either fully written or not written at all, even if the process crashes.
//
// The temporary file carries a unique suffix so concurrent writers to the
// same path never share one; the last rename to land wins.
//
// Steps:
// 1. Write to {path}.{unique}.tmp
// 2. Sync to disk
// 3. Rename to {path}
// 4. Sync parent directory
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := EnsureDir(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString()[:8])

	// Write to temporary file
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Write data
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath) // Clean up temp file
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	// Sync to disk
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Close the file
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Rename to target path (atomic on Unix when src and dst share a filesystem)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Sync parent directory to ensure the rename is persisted.
	// Best-effort: the file is already renamed.
	if err := syncDir(dir); err != nil {
		return nil
	}

	return nil
}

// syncDir syncs a directory to disk.
// This ensures that directory metadata (like new file entries) is persisted.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Sync()
}
