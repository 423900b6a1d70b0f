package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Show the conversion steps between two units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadConverter()
			if err != nil {
				return err
			}

			steps, err := c.Path(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(steps) == 0 {
				fmt.Fprintf(out, "%s and %s are the same unit\n", args[0], args[1])
				return nil
			}

			for i, s := range steps {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatStep(s))
			}

			return nil
		},
	}
}
