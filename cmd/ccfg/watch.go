package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/events"
	"github.com/alfredjeanlab/clusterconfig/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream server events (requires a NATS URL)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		natsURL, _ := cmd.Flags().GetString("nats")
		if natsURL == "" {
			natsURL = os.Getenv("CLUSTERCONFIG_NATS_URL")
		}
		if natsURL == "" {
			natsURL = activeRemoteNATSURL()
		}
		if natsURL == "" {
			return fmt.Errorf("no NATS URL; pass --nats or set CLUSTERCONFIG_NATS_URL")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sub, err := events.NewNATSSubscriber(natsURL,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Printf("nats: disconnected: %v", err)
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				log.Printf("nats: reconnected")
			}),
		)
		if err != nil {
			return fmt.Errorf("connecting to NATS: %w", err)
		}
		defer sub.Close()

		ch, cancel, err := sub.Subscribe("clusterconfig.>")
		if err != nil {
			return fmt.Errorf("subscribing to events: %w", err)
		}
		defer cancel()

		fmt.Fprintln(os.Stderr, ui.RenderMuted("watching for events (ctrl-c to stop)"))

		for {
			select {
			case <-ctx.Done():
				return nil
			case data, ok := <-ch:
				if !ok {
					return nil
				}
				printEvent(data)
			}
		}
	},
}

// printEvent prints one event line. Payloads are JSON; anything that does not
// parse is printed raw.
func printEvent(data []byte) {
	ts := time.Now().Format("15:04:05")
	var compact map[string]any
	if err := json.Unmarshal(data, &compact); err != nil {
		fmt.Printf("%s %s\n", ui.RenderMuted(ts), string(data))
		return
	}
	line, err := json.Marshal(compact)
	if err != nil {
		line = data
	}
	fmt.Printf("%s %s\n", ui.RenderMuted(ts), line)
}

func init() {
	watchCmd.Flags().String("nats", "", "NATS URL for event streaming")
}
