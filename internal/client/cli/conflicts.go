package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ddanilov/sitesync/internal/models"
)

func (c *Cli) conflictsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve sync conflicts",
	}
	cmd.AddCommand(c.conflictsListCommand(), c.conflictsResolveCommand())
	return cmd
}

func (c *Cli) conflictsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unresolved conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.state.LoadConflicts(cmd.Context())

			conflicts := c.state.Conflicts()
			if len(conflicts) == 0 {
				c.io.Println("No unresolved conflicts.")
				return nil
			}

			for _, conflict := range conflicts {
				c.io.Printf("%s  %s/%s  detected %s\n",
					conflict.ID,
					conflict.EntityType,
					conflict.EntityID,
					time.UnixMilli(conflict.DetectedAt).Format(time.RFC3339),
				)
				c.io.Printf("  local:  %s\n", compactJSON(conflict.LocalData))
				c.io.Printf("  server: %s\n", compactJSON(conflict.ServerData))
			}
			return nil
		},
	}
}

func (c *Cli) conflictsResolveCommand() *cobra.Command {
	var mergedJSON string

	cmd := &cobra.Command{
		Use:   "resolve <conflict-id> <local|server|merge>",
		Short: "Resolve one conflict with the given strategy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			strategy := models.ResolutionStrategy(args[1])

			var merged map[string]any
			if strategy == models.ResolveMerge {
				if mergedJSON == "" {
					return fmt.Errorf("merge strategy requires --merged with the merged record JSON")
				}
				if err := json.Unmarshal([]byte(mergedJSON), &merged); err != nil {
					return fmt.Errorf("failed to parse --merged: %w", err)
				}
			}

			resolved, err := c.state.ResolveConflict(cmd.Context(), id, strategy, merged)
			if err != nil {
				return err
			}
			if resolved == nil {
				c.io.Println("No such conflict; nothing to do.")
				return nil
			}

			c.io.Printf("Resolved with: %s\n", compactJSON(resolved))
			return nil
		},
	}

	cmd.Flags().StringVar(&mergedJSON, "merged", "", "merged record JSON (merge strategy only)")
	return cmd
}

func compactJSON(data map[string]any) string {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(out)
}
