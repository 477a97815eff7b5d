package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var assistantsCmd = &cobra.Command{
	Use:   "assistants",
	Short: "List the assistants the backend offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistants()
	},
}

func runAssistants() error {
	cfg := loadSettings()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	spin := newSpinner("Loading assistants")
	spin.start()
	assistants, err := client.LoadAssistants(context.Background())
	if err != nil {
		spin.stopWithError()
		return fmt.Errorf("failed to load assistants: %w", err)
	}
	spin.halt()

	if len(assistants) == 0 {
		fmt.Println("The backend has no assistants.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODEL\tCREATED")
	for _, a := range assistants {
		created := ""
		if a.CreatedAt > 0 {
			created = time.Unix(a.CreatedAt, 0).Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Model, created)
	}
	return w.Flush()
}
