package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/internal/cliout"
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Manage uploaded documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := newClient().ListDocuments(cmd.Context())
		if err != nil {
			return err
		}
		return cliout.Output(docs)
	},
}

var documentsGetCmd = &cobra.Command{
	Use:   "get <doc-id>",
	Short: "Show one document record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := newClient().GetDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return cliout.Output(doc)
	},
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete <doc-id>",
	Short: "Delete a document and its derived data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().DeleteDocument(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	documentsCmd.AddCommand(documentsListCmd, documentsGetCmd, documentsDeleteCmd)
}
