// Package cli собирает дерево команд клиента.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/iocli"
	"github.com/ddanilov/sitesync/internal/client/orchestrator"
)

// Authenticator logs the user in against the sync server.
type Authenticator interface {
	Login(ctx context.Context, login, password string) error
}

// Drainer runs one sync pass over the pending queue.
type Drainer interface {
	Drain(ctx context.Context) (orchestrator.DrainResult, error)
}

type Cli struct {
	io      iocli.IO
	state   *appstate.Store
	auth    Authenticator
	drainer Drainer
	monitor Monitor
}

func New(io iocli.IO, state *appstate.Store, auth Authenticator, drainer Drainer) *Cli {
	return &Cli{
		io:      io,
		state:   state,
		auth:    auth,
		drainer: drainer,
	}
}

// RootCommand builds the full command tree.
func (c *Cli) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitesync",
		Short:         "Offline-first sync client for construction field crews",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.loginCommand(),
		c.statusCommand(),
		c.syncCommand(),
		c.watchCommand(),
		c.queueCommand(),
		c.conflictsCommand(),
		c.prefsCommand(),
	)
	return root
}
