// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pilulerouge/latexcmd/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// Exists reports whether path exists, whatever its type.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// MatchFiles returns the entries of dir whose base name matches the glob
// pattern, sorted by name. It does not descend into subdirectories, and
// directories whose name happens to match are left out.
func MatchFiles(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || (entry.Type()&os.ModeSymlink != 0 && DirExists(path)) {
			continue
		}
		matches = append(matches, path)
	}
	slices.Sort(matches)
	log.Printf("Matched %d files in %s with pattern %s", len(matches), dir, pattern)
	return matches, nil
}

// ReadText reads a whole file as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
