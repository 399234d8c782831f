package main

import (
	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/internal/cliout"
)

var statusWait bool

var statusCmd = &cobra.Command{
	Use:   "status <doc-id>",
	Short: "Show a document's processing status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		if statusWait {
			doc, err := c.WaitForCompletion(cmd.Context(), args[0], 0)
			if err != nil {
				return err
			}
			return cliout.Output(doc)
		}

		doc, err := c.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return cliout.Output(doc)
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusWait, "wait", false, "block until processing completes")
}
