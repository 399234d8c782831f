package pdfinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsPDF(t *testing.T) {
	cases := map[string]bool{
		"report.pdf":      true,
		"REPORT.PDF":      true,
		"dir/nested.Pdf":  true,
		"notes.txt":       false,
		"archive.pdf.zip": false,
		"noext":           false,
	}
	for path, want := range cases {
		if got := IsPDF(path); got != want {
			t.Errorf("IsPDF(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestPageCount_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := PageCount(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("not a pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.pdf")
		if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := PageCount(path); err == nil {
			t.Error("expected error for non-pdf content")
		}
	})
}
