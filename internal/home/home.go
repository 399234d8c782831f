package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the pagetree home directory.
	DefaultDirName = ".pagetree"

	// ExportsDirName is the subdirectory for saved OCR and tree exports.
	ExportsDirName = "exports"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the pagetree home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.pagetree).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// ExportsDir returns the directory for a document's saved exports.
func (d *Dir) ExportsDir(docID string) string {
	return filepath.Join(d.path, ExportsDirName, docID)
}

// OCRExportPath returns the path for a saved OCR page.
// Page numbers are 0-indexed, matching the API's page_index.
func (d *Dir) OCRExportPath(docID string, pageIndex int) string {
	return filepath.Join(d.ExportsDir(docID), fmt.Sprintf("page_%04d.md", pageIndex))
}

// EnsureExists creates the home directory if it doesn't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}
	return nil
}

// EnsureExportsDir creates the exports directory for a document.
func (d *Dir) EnsureExportsDir(docID string) error {
	return os.MkdirAll(d.ExportsDir(docID), 0o755)
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
