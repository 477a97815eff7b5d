package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/procchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path := configPathHint()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("base_url:          %s\n", valueOrUnset(cfg.BaseURL))
		fmt.Printf("user_id:           %s\n", cfg.UserID)
		fmt.Printf("default_assistant: %s\n", valueOrUnset(cfg.DefaultAssistant))
		fmt.Printf("verbose:           %t\n", cfg.Verbose)
		fmt.Printf("copy_to_clipboard: %t\n", cfg.CopyToClipboard)
		fmt.Printf("markdown_style:    %s\n", cfg.MarkdownStyle)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to the config file.

Keys: base-url, user-id, default-assistant, verbose, copy-to-clipboard,
markdown-style`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "base-url":
		cfg.BaseURL = config.NormalizeBaseURL(value)
	case "user-id":
		cfg.UserID = value
	case "default-assistant":
		cfg.DefaultAssistant = value
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose wants true or false, got %q", value)
		}
		cfg.Verbose = b
	case "copy-to-clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy-to-clipboard wants true or false, got %q", value)
		}
		cfg.CopyToClipboard = b
	case "markdown-style":
		cfg.MarkdownStyle = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s set\n", key)
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
