package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/procchat/internal/chat"
	"github.com/diogo/procchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with a procurement assistant.

Pick an assistant from the selector (or pass -a), then exchange
messages. Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg := loadSettings()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctrl := chat.NewController(client, chat.NewLog(),
		chat.WithDiagnostics(func(format string, args ...any) {
			// Keep exchange diagnostics off the alternate screen; the TUI
			// shows them on its own status line.
		}))

	// With a requested assistant, fetch the directory up front so the
	// selection is applied before the TUI starts. Otherwise the TUI
	// fetches once at startup and opens its selector.
	if cfg.DefaultAssistant != "" {
		spin := newSpinner("Loading assistants")
		spin.start()
		assistants, err := client.LoadAssistants(context.Background())
		if err != nil {
			spin.stopWithError()
			return fmt.Errorf("failed to load assistants: %w", err)
		}
		spin.halt()

		ctrl.SetAssistants(assistants)
		if !ctrl.SelectAssistant(cfg.DefaultAssistant) {
			fmt.Fprintf(os.Stderr, "Warning: no assistant matches %q, pick one in the chat\n", cfg.DefaultAssistant)
		}
	}

	return tui.RunChat(client, ctrl)
}
