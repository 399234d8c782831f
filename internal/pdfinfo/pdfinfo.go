// Package pdfinfo inspects PDF files locally before upload.
package pdfinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// IsPDF reports whether the path looks like a PDF by extension.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// PageCount returns the number of pages in a PDF file. The count feeds
// tree.PageRanges as the document's maximum page and is sent as an upload
// hint.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages in %s: %w", path, err)
	}
	return count, nil
}
