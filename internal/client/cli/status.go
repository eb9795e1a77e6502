package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := c.state.Snapshot()

			if snap.IsOnline {
				c.io.Println("Connection: online")
			} else {
				c.io.Println("Connection: offline")
			}
			c.io.Printf("Pending mutations: %d\n", snap.PendingSyncs)
			c.io.Printf("Queued total: %d\n", len(snap.SyncQueue))
			c.io.Printf("Unresolved conflicts: %d\n", snap.ConflictCount)

			if snap.LastSyncTime > 0 {
				c.io.Printf("Last sync: %s\n", time.UnixMilli(snap.LastSyncTime).Format(time.RFC3339))
			} else {
				c.io.Println("Last sync: never")
			}

			if snap.StorageQuota != nil && snap.StorageQuota.Warning {
				c.io.Println("Warning: local storage is running low")
			}
			return nil
		},
	}
}
