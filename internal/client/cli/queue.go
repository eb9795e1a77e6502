package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) queueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and edit the pending mutation queue",
	}
	cmd.AddCommand(c.queueListCommand(), c.queueRemoveCommand(), c.queueClearCommand())
	return cmd
}

func (c *Cli) queueListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued mutations in sync order",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.state.LoadSyncQueue(cmd.Context())

			queue := c.state.SyncQueue()
			if len(queue) == 0 {
				c.io.Println("Queue is empty.")
				return nil
			}

			for _, m := range queue {
				c.io.Printf("%s  %s %s/%s  status=%s retries=%d  %s\n",
					m.ID,
					m.Operation,
					m.EntityType,
					m.EntityID,
					m.Status,
					m.RetryCount,
					time.UnixMilli(m.CreatedAt).Format(time.RFC3339),
				)
			}
			c.io.Printf("%d queued, %d pending\n", len(queue), c.state.PendingSyncs())
			return nil
		},
	}
}

func (c *Cli) queueRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <mutation-id>",
		Short: "Drop one mutation from the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.state.RemovePendingSync(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.io.Println("Removed.")
			return nil
		},
	}
}

func (c *Cli) queueClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop every queued mutation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.state.ClearSyncQueue(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("Queue cleared.")
			return nil
		},
	}
}
