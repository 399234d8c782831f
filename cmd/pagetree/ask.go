package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/answer"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
)

var askTopK int

var askCmd = &cobra.Command{
	Use:   "ask <doc-id> <question>",
	Short: "Answer a question from retrieved document sections",
	Long: `Retrieve the most relevant document sections, then synthesize a
natural-language answer from them with the configured language model.

Requires answer.openai_api_key in config (or OPENAI_API_KEY).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgManager.Get()
		key := cfg.ResolvedOpenAIKey()
		if key == "" {
			return fmt.Errorf("answer synthesis needs an OpenAI key: set answer.openai_api_key or OPENAI_API_KEY")
		}

		result, err := newClient().Query(cmd.Context(), client.QueryRequest{
			DocumentID: args[0],
			Question:   args[1],
			TopK:       askTopK,
		})
		if err != nil {
			return err
		}

		syn := answer.New(answer.Config{
			APIKey:           key,
			Model:            cfg.Answer.Model,
			MaxContextTokens: cfg.Answer.MaxContextTokens,
		})
		ans, err := syn.Synthesize(cmd.Context(), args[1], result.Nodes)
		if err != nil {
			return err
		}
		return cliout.Output(ans)
	},
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of nodes to retrieve (server default when 0)")
}
