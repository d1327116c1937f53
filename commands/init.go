package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed the room inventory and admin account if no state exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			created, err := a.desk.Bootstrap(cmd.Context(), a.seedOptions())
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "hotel state created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "hotel state already exists")
			}
			return nil
		},
	}
}
