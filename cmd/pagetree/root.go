package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
	"github.com/pagetree-ai/pagetree-go/internal/config"
	"github.com/pagetree-ai/pagetree-go/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool

	cfgManager *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "pagetree",
	Short: "Client for the PageTree document-intelligence API",
	Long: `Pagetree uploads documents to the PageTree API and works with the results:
OCR output, the hierarchical section tree, semantic queries, and chat
completions grounded on a document.

Typical flow:
  pagetree upload report.pdf --wait
  pagetree tree <doc-id> --page-ranges
  pagetree query <doc-id> "what does section 3 cover?"
  pagetree chat <doc-id> "summarize the findings" --stream`,
	Version: version.GitRelease,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cliout.SetFormat(outputFormat)

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgManager = cm
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pagetree/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pagetree home directory (default: ~/.pagetree)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.AddCommand(
		initCmd,
		uploadCmd,
		documentsCmd,
		statusCmd,
		ocrCmd,
		treeCmd,
		queryCmd,
		askCmd,
		chatCmd,
		versionCmd,
	)
}

// newClient builds an API client from the current configuration.
func newClient() *client.Client {
	return client.New(cfgManager.Get().ClientConfig())
}
