package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Drain the pending mutation queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.state.IsOnline() {
				c.io.Println("Offline: queued mutations will sync on reconnect.")
				return nil
			}

			result, err := c.drainer.Drain(cmd.Context())
			if err != nil {
				return err
			}

			c.io.Printf("Applied: %d\n", result.Applied)
			if result.Failed > 0 {
				c.io.Printf("Failed: %d\n", result.Failed)
			}
			if result.Skipped > 0 {
				c.io.Printf("Skipped: %d\n", result.Skipped)
			}
			if result.Conflicts > 0 {
				c.io.Printf("Conflicts detected: %d (run 'sitesync conflicts list')\n", result.Conflicts)
			}
			return nil
		},
	}
}
