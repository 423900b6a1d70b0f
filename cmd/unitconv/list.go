package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadConverter()
			if err != nil {
				return err
			}

			printUnits(cmd.OutOrStdout(), c)

			return nil
		},
	}
}
