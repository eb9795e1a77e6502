package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand() *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if login == "" {
				login, err = c.io.ReadInput("Login: ")
				if err != nil {
					return fmt.Errorf("failed to read login: %w", err)
				}
			}

			password, err := c.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			if err := c.auth.Login(cmd.Context(), login, password); err != nil {
				return err
			}

			c.io.Println("Login successful.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "login name")
	return cmd
}
