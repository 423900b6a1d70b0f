package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitconv/internal/config"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the units file and print every problem found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath()

			f, err := config.LoadFile(path)
			if err != nil {
				return err
			}

			diags := config.Validate(f)
			out := cmd.OutOrStdout()

			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d error(s), %d warning(s)\n",
					path, len(diags.Errors), len(diags.Warnings))

				return errReported
			}

			fmt.Fprintf(out, "%s: ok (%d units, %d conversions)\n", path, len(f.Units), len(f.Conversions()))

			return nil
		},
	}
}
