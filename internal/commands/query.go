package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/diogo/procchat/internal/chat"
	"github.com/diogo/procchat/internal/config"
	"github.com/diogo/procchat/internal/errors"
	"github.com/diogo/procchat/internal/models"
	"github.com/diogo/procchat/internal/render"
)

// runQuery sends a single message and prints the rendered reply.
func runQuery(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message is empty")
	}

	cfg := loadSettings()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctrl := chat.NewController(client, chat.NewLog(),
		chat.WithDiagnostics(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))

	// One directory fetch at startup
	spin := newSpinner("Loading assistants")
	spin.start()
	assistants, err := client.LoadAssistants(context.Background())
	if err != nil {
		spin.stopWithError()
		return fmt.Errorf("failed to load assistants: %w", err)
	}
	spin.halt()
	ctrl.SetAssistants(assistants)

	if err := selectAssistant(ctrl, cfg, assistants); err != nil {
		return err
	}

	spin = newSpinner("Waiting for " + ctrl.SelectedAssistant().Name)
	spin.start()
	start := time.Now()
	accepted := ctrl.Submit(context.Background(), message)
	elapsed := time.Since(start)

	if !accepted {
		spin.stopWithError()
		return fmt.Errorf("message was not sent")
	}
	if err := ctrl.LastError(); err != nil {
		spin.stopWithError()
		return err
	}
	spin.halt()

	turns := ctrl.Conversation().Snapshot()
	reply := turns[len(turns)-1]

	if err := printReply(reply.Content, cfg); err != nil {
		return err
	}

	if cfg.Verbose {
		printDiagnostics(ctrl, elapsed)
	}

	raw := ctrl.LastReply().Response
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(raw), 0o644); err != nil {
			return fmt.Errorf("failed to save reply: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Reply saved to %s\n", outputFlag)
	}

	if copyFlag || cfg.CopyToClipboard {
		if err := clipboard.WriteAll(raw); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}

// selectAssistant applies the flag/config selection, falling back to the
// only assistant when the directory has exactly one.
func selectAssistant(ctrl *chat.Controller, cfg config.Config, assistants []models.Assistant) error {
	if cfg.DefaultAssistant != "" {
		if !ctrl.SelectAssistant(cfg.DefaultAssistant) {
			return fmt.Errorf("no assistant matches %q (try 'procchat assistants')", cfg.DefaultAssistant)
		}
		return nil
	}

	if len(assistants) == 1 {
		ctrl.SelectAssistant(assistants[0].ID)
		return nil
	}

	if len(assistants) == 0 {
		return fmt.Errorf("%w: the backend has none", errors.ErrNoAssistant)
	}

	names := make([]string, len(assistants))
	for i, a := range assistants {
		names[i] = a.Name
	}
	return fmt.Errorf("%w: pick one with -a: %s", errors.ErrNoAssistant, strings.Join(names, ", "))
}

// printReply renders the assistant reply to stdout: styled when stdout is
// a terminal, plain otherwise.
func printReply(content models.DisplayContent, cfg config.Config) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(render.ContentPlain(content))
		if content.Kind == models.KindPlainText && !strings.HasSuffix(content.Text, "\n") {
			fmt.Println()
		}
		return nil
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}
	if width > 120 {
		width = 120
	}

	opts := render.DefaultOptions().WithWidth(width).WithStyle(cfg.MarkdownStyle)
	out, err := render.Content(content, opts)
	if err != nil {
		fmt.Print(render.ContentPlain(content))
		fmt.Println()
		return nil
	}
	fmt.Print(out)
	return nil
}

// printDiagnostics shows the backend's completed-slots echo and timing.
func printDiagnostics(ctrl *chat.Controller, elapsed time.Duration) {
	reply := ctrl.LastReply()
	if reply == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "\n[%s]\n", elapsed.Round(time.Millisecond))
	if len(reply.CompletedSlots) > 0 {
		fmt.Fprintln(os.Stderr, "Completed slots:")
		for k, v := range reply.CompletedSlots {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", k, v)
		}
	}
	if n := len(reply.ConversationHistory); n > 0 {
		fmt.Fprintf(os.Stderr, "Backend history: %d entries\n", n)
	}
}
