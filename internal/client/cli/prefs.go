package cli

import (
	"github.com/spf13/cobra"

	"github.com/ddanilov/sitesync/internal/models"
)

func (c *Cli) prefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change sync preferences",
	}
	cmd.AddCommand(c.prefsShowCommand(), c.prefsSetCommand())
	return cmd
}

func (c *Cli) prefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current sync preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := c.state.Preferences()
			c.io.Printf("auto-sync:               %t\n", prefs.AutoSync)
			c.io.Printf("sync-on-cellular:        %t\n", prefs.SyncOnCellular)
			c.io.Printf("sync-photos-on-cellular: %t\n", prefs.SyncPhotosOnCellular)
			c.io.Printf("max-batch-size:          %d bytes\n", prefs.MaxBatchSize)
			c.io.Printf("notify-on-sync:          %t\n", prefs.NotifyOnSync)
			return nil
		},
	}
}

func (c *Cli) prefsSetCommand() *cobra.Command {
	var (
		autoSync      bool
		onCellular    bool
		photosOnCell  bool
		notifyOnSync  bool
		maxBatchBytes int64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change sync preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			// В патч попадают только явно переданные флаги
			var patch models.PreferencesPatch
			if cmd.Flags().Changed("auto-sync") {
				patch.AutoSync = &autoSync
			}
			if cmd.Flags().Changed("sync-on-cellular") {
				patch.SyncOnCellular = &onCellular
			}
			if cmd.Flags().Changed("sync-photos-on-cellular") {
				patch.SyncPhotosOnCellular = &photosOnCell
			}
			if cmd.Flags().Changed("notify-on-sync") {
				patch.NotifyOnSync = &notifyOnSync
			}
			if cmd.Flags().Changed("max-batch-size") {
				patch.MaxBatchSize = &maxBatchBytes
			}

			merged := c.state.UpdatePreferences(cmd.Context(), patch)
			c.io.Printf("auto-sync=%t sync-on-cellular=%t sync-photos-on-cellular=%t max-batch-size=%d notify-on-sync=%t\n",
				merged.AutoSync,
				merged.SyncOnCellular,
				merged.SyncPhotosOnCellular,
				merged.MaxBatchSize,
				merged.NotifyOnSync,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoSync, "auto-sync", true, "sync automatically on reconnect")
	cmd.Flags().BoolVar(&onCellular, "sync-on-cellular", true, "allow large payloads on cellular")
	cmd.Flags().BoolVar(&photosOnCell, "sync-photos-on-cellular", false, "allow media payloads on cellular")
	cmd.Flags().BoolVar(&notifyOnSync, "notify-on-sync", true, "notify when a sync pass finishes")
	cmd.Flags().Int64Var(&maxBatchBytes, "max-batch-size", models.DefaultMaxBatchSize, "cellular payload size gate in bytes")
	return cmd
}
