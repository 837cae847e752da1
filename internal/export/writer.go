// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	filePrefix      = "confluence_data_"
	timestampFormat = "20060102_150405"
)

// OutputPath returns the document path for a run started at now:
// <dir>/confluence_data_<YYYYMMDD_HHMMSS>.md, local time to the second.
func OutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, filePrefix+now.Format(timestampFormat)+".md")
}

// ManifestPath returns the run manifest path alongside the document.
func ManifestPath(documentPath string) string {
	return documentPath[:len(documentPath)-len(filepath.Ext(documentPath))] + ".yaml"
}

// WriteDocument writes content to path, creating the parent directory if
// absent. It writes to a temp file and renames on success so a failed run
// never leaves a truncated document. Failures here are fatal to the run.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.WriteString(content)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
