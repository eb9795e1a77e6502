package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Monitor runs background connectivity tracking and storage sampling.
type Monitor interface {
	Start(ctx context.Context) (func(), error)
}

// SetMonitor attaches the background monitor used by the watch command.
func (c *Cli) SetMonitor(m Monitor) {
	c.monitor = m
}

func (c *Cli) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground, syncing automatically on reconnect",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.monitor == nil {
				return fmt.Errorf("no monitor configured")
			}

			stop, err := c.monitor.Start(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to start monitor: %w", err)
			}
			defer stop()

			c.io.Println("Watching for connectivity; press Ctrl+C to stop.")
			<-cmd.Context().Done()
			return nil
		},
	}
}
