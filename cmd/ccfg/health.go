package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/ui"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health and readiness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := api.Health(ctx); err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("unhealthy: %v", err)))
			os.Exit(1)
		}
		fmt.Println("healthy")

		if err := api.Ready(ctx); err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("not ready: %v", err)))
			os.Exit(1)
		}
		fmt.Println("ready")
		return nil
	},
}
