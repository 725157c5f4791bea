package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/ui"
)

var saveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save a configuration document (use - to read from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		res, err := api.SaveConfiguration(context.Background(), json.RawMessage(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(res)
		}
		fmt.Printf("saved %s (id %d)\n", ui.RenderAccent(res.ConfigurationID), res.ID)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		cfg, err := api.GetConfiguration(context.Background(), id)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(cfg)
		}
		fmt.Printf("ID:               %d\n", cfg.ID)
		fmt.Printf("Configuration ID: %s\n", cfg.ConfigurationID)
		fmt.Printf("Generated:        %t\n", cfg.IsGenerated)
		fmt.Printf("Created At:       %s\n", cfg.CreatedAt.Format("2006-01-02 15:04:05"))
		if cfg.UpdatedAt != nil {
			fmt.Printf("Updated At:       %s\n", cfg.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		pretty, err := json.MarshalIndent(json.RawMessage(cfg.Data), "", "  ")
		if err != nil {
			pretty = cfg.Data
		}
		fmt.Printf("Data:\n%s\n", pretty)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		res, err := api.ExportConfiguration(context.Background(), id, format)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(res)
		}
		if res.Status == "pending" {
			fmt.Printf("%s: %s\n", res.ConfigurationID, ui.RenderMuted(res.Message))
			return nil
		}
		fmt.Println(string(res.Data))
		return nil
	},
}

func parseID(s string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid configuration id %q", s)
	}
	return id, nil
}

func init() {
	exportCmd.Flags().String("format", "json", "export format (json or pdf)")
}
