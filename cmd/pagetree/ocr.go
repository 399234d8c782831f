package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/internal/cliout"
	"github.com/pagetree-ai/pagetree-go/internal/home"
)

var ocrSave bool

var ocrCmd = &cobra.Command{
	Use:   "ocr <doc-id>",
	Short: "Fetch per-page OCR markdown for a completed document",
	Long: `Fetch the OCR result for a completed document.

By default the result is printed on stdout. With --save, each page is
written to ~/.pagetree/exports/<doc-id>/page_NNNN.md instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID := args[0]
		result, err := newClient().OCRResult(cmd.Context(), docID)
		if err != nil {
			return err
		}

		if !ocrSave {
			return cliout.Output(result)
		}

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExportsDir(docID); err != nil {
			return err
		}
		for _, page := range result.Pages {
			path := h.OCRExportPath(docID, page.PageIndex)
			if err := os.WriteFile(path, []byte(page.Markdown), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		fmt.Printf("saved %d pages to %s\n", len(result.Pages), h.ExportsDir(docID))
		return nil
	},
}

func init() {
	ocrCmd.Flags().BoolVar(&ocrSave, "save", false, "write pages to the exports directory")
}
