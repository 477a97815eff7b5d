// Package commands provides CLI commands for procchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/procchat/internal/api"
	"github.com/diogo/procchat/internal/config"
)

var (
	// Global flags
	baseURLFlag   string
	assistantFlag string
	userIDFlag    string
	outputFlag    string
	fileFlag      string
	copyFlag      bool
	verboseFlag   bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "procchat [message]",
	Short: "Chat client for the procurement assistants service",
	Long: `procchat is a command-line client for the procurement assistants
service. Pick an assistant, send a message, and get back either a
structured procurement analysis or a free-form reply.

Examples:
  procchat chat                         Start interactive chat
  procchat assistants                   List available assistants
  procchat -a Legal "hello"             Send a single message
  procchat -f prompt.txt                Read the message from a file
  cat prompt.txt | procchat             Read the message from stdin
  procchat "hello" -o reply.txt         Save the raw reply to a file`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("procchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Backend base URL (overrides config and PROCCHAT_BASE_URL)")
	rootCmd.PersistentFlags().StringVarP(&assistantFlag, "assistant", "a", "", "Assistant to talk to (id or name)")
	rootCmd.PersistentFlags().StringVar(&userIDFlag, "user", "", "User identifier sent with chat requests")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Show diagnostic output (completed slots, timing)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the raw reply to a file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read the message from a file")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the reply to the clipboard")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(assistantsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings merges config file, environment, and flags.
func loadSettings() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if userIDFlag != "" {
		cfg.UserID = userIDFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if assistantFlag != "" {
		cfg.DefaultAssistant = assistantFlag
	}

	return cfg
}

// newClient builds the backend client from the merged settings.
func newClient(cfg config.Config) (*api.Client, error) {
	client, err := api.NewClient(cfg.BaseURL, api.WithUserID(cfg.UserID))
	if err != nil {
		return nil, fmt.Errorf("cannot reach the backend: %w (set base_url in %s, PROCCHAT_BASE_URL, or --base-url)",
			err, configPathHint())
	}
	return client, nil
}

func configPathHint() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return "~/.procchat/config.json"
	}
	return path
}
