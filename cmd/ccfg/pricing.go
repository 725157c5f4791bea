package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/ui"
)

var priceCmd = &cobra.Command{
	Use:   "price <nodes>",
	Short: "Look up the price for a node count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid node count %q", args[0])
		}

		p, err := api.GetPrice(context.Background(), nodes)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(p)
		}
		fmt.Printf("%d nodes: %s %s\n", p.NodesCount, p.PriceUSD.StringFixed(2), p.Currency)
		return nil
	},
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List the full pricing catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pl, err := api.GetAllPrices(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(pl)
		}

		counts := make([]int, 0, len(pl.PricingOptions))
		for n := range pl.PricingOptions {
			counts = append(counts, n)
		}
		sort.Ints(counts)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NODES\tPRICE")
		for _, n := range counts {
			fmt.Fprintf(w, "%d\t%s %s\n", n, pl.PricingOptions[n].StringFixed(2), pl.Currency)
		}
		w.Flush()
		fmt.Printf("\n%s\n", ui.RenderMuted(fmt.Sprintf("%d options", pl.TotalOptions)))
		return nil
	},
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the available node counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nc, err := api.GetNodeCounts(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}

		if jsonOutput {
			return printJSON(nc)
		}
		for _, n := range nc.AvailableNodeCounts {
			fmt.Println(n)
		}
		return nil
	},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
