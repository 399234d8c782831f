package main

import (
	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
	"github.com/pagetree-ai/pagetree-go/tree"
)

var (
	treePageRanges bool
	treeFullText   bool
	treeMaxPage    int
)

var treeCmd = &cobra.Command{
	Use:   "tree <doc-id>",
	Short: "Fetch a document's section tree",
	Long: `Fetch the hierarchical section tree of a completed document.

By default long text fields are stripped for readable output. Use
--full-text for the untrimmed tree, or --page-ranges for the flat
node-id -> [start, end] page span table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := client.TreeOptions{IncludeText: treeFullText}
		result, err := newClient().Tree(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		switch {
		case treePageRanges:
			maxPage := result.MaxPage()
			if treeMaxPage > 0 {
				maxPage = &treeMaxPage
			}
			return cliout.Output(tree.PageRanges(result.Roots, maxPage))
		case treeFullText:
			return cliout.Output(result)
		default:
			printable, err := tree.PrintableForest(result.Roots)
			if err != nil {
				return err
			}
			return cliout.Output(printable)
		}
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treePageRanges, "page-ranges", false, "print page spans per node instead of the tree")
	treeCmd.Flags().BoolVar(&treeFullText, "full-text", false, "include full node text")
	treeCmd.Flags().IntVar(&treeMaxPage, "max-page", 0, "override the document's last page for span calculation")
}
