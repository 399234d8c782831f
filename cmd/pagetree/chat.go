package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/client"
	"github.com/pagetree-ai/pagetree-go/internal/cliout"
)

var (
	chatStream      bool
	chatRaw         bool
	chatInteractive bool
	chatModel       string
)

var chatCmd = &cobra.Command{
	Use:   "chat <doc-id> [message]",
	Short: "Chat about a document",
	Long: `Send chat messages grounded on a completed document.

One-shot mode sends a single message and prints the reply. With --stream
the reply tokens are printed as they arrive; --raw prints each stream
frame's JSON payload instead of extracted text. --interactive starts a
REPL that keeps the conversation history and picks up config changes
without a restart.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docID := args[0]

		if chatInteractive {
			return runInteractiveChat(cmd, docID)
		}
		if len(args) < 2 {
			return fmt.Errorf("a message is required unless --interactive is set")
		}

		messages := []client.Message{{Role: "user", Content: args[1]}}
		if chatStream || chatRaw {
			return streamChat(cmd, docID, messages)
		}

		result, err := newClient().ChatCompletion(cmd.Context(), client.ChatRequest{
			DocumentID: docID,
			Messages:   messages,
			Model:      chatModel,
		})
		if err != nil {
			return err
		}
		return cliout.Output(result)
	},
}

// streamChat runs one streamed exchange, printing as frames arrive, and
// returns the assembled assistant reply.
func streamChat(cmd *cobra.Command, docID string, messages []client.Message) error {
	_, err := streamChatReply(cmd, docID, messages)
	return err
}

func streamChatReply(cmd *cobra.Command, docID string, messages []client.Message) (string, error) {
	mode := client.StreamText
	if chatRaw {
		mode = client.StreamRaw
	}

	stream, err := newClient().ChatCompletionStream(cmd.Context(), client.ChatRequest{
		DocumentID: docID,
		Messages:   messages,
		Model:      chatModel,
	}, mode)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var reply strings.Builder
	for stream.Next() {
		if chatRaw {
			fmt.Println(string(stream.Raw()))
			continue
		}
		fmt.Print(stream.Text())
		reply.WriteString(stream.Text())
	}
	fmt.Println()
	if err := stream.Err(); err != nil {
		return reply.String(), err
	}
	return reply.String(), nil
}

// runInteractiveChat is a REPL over one document. History accumulates across
// turns; config hot reload keeps long sessions working through key rotation.
func runInteractiveChat(cmd *cobra.Command, docID string) error {
	cfgManager.WatchConfig()

	fmt.Printf("chatting about %s (empty line or ctrl-d to exit)\n", docID)
	var history []client.Message
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		history = append(history, client.Message{Role: "user", Content: line})

		if chatStream || chatRaw {
			reply, err := streamChatReply(cmd, docID, history)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				history = history[:len(history)-1]
				continue
			}
			history = append(history, client.Message{Role: "assistant", Content: reply})
			continue
		}

		result, err := newClient().ChatCompletion(cmd.Context(), client.ChatRequest{
			DocumentID: docID,
			Messages:   history,
			Model:      chatModel,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			history = history[:len(history)-1]
			continue
		}
		fmt.Println(result.Content)
		history = append(history, client.Message{Role: "assistant", Content: result.Content})
	}
	return scanner.Err()
}

func init() {
	chatCmd.Flags().BoolVar(&chatStream, "stream", false, "stream the reply as it is generated")
	chatCmd.Flags().BoolVar(&chatRaw, "raw", false, "stream raw frame JSON instead of extracted text")
	chatCmd.Flags().BoolVarP(&chatInteractive, "interactive", "i", false, "start an interactive chat session")
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "model override for this session")
}
