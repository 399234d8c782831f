package main

import (
	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
)

var queryTopK int

var queryCmd = &cobra.Command{
	Use:   "query <doc-id> <question>",
	Short: "Retrieve the document nodes most relevant to a question",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Query(cmd.Context(), client.QueryRequest{
			DocumentID: args[0],
			Question:   args[1],
			TopK:       queryTopK,
		})
		if err != nil {
			return err
		}
		return cliout.Output(result)
	},
}

func init() {
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "number of nodes to retrieve (server default when 0)")
}
