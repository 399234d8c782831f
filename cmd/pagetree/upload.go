package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
	"github.com/pagetree-ai/pagetree-go/internal/pdfinfo"
)

var uploadWait bool

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for processing",
	Long: `Upload a document to the PageTree API.

PDF inputs are inspected locally first so the upload carries a page count
hint; the count later closes the final section's page range.

Examples:
  pagetree upload report.pdf
  pagetree upload report.pdf --wait`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]
		c := newClient()

		opts := client.UploadOptions{}
		if pdfinfo.IsPDF(path) {
			count, err := pdfinfo.PageCount(path)
			if err != nil {
				slog.Debug("local page count failed", "path", path, "error", err)
			} else {
				opts.PageCount = count
			}
		}

		doc, err := c.UploadFile(ctx, path, opts)
		if err != nil {
			return err
		}

		if uploadWait {
			doc, err = c.WaitForCompletion(ctx, doc.ID, 0)
			if err != nil {
				return err
			}
		}
		return cliout.Output(doc)
	},
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadWait, "wait", false, "block until processing completes")
}
