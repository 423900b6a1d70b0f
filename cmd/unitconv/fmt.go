package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitconv/internal/config"
)

func newFmtCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the units file in canonical form",
		Long: `Rewrite the units file in canonical form. The output format follows the
extension of --out, so fmt also converts between JSON and YAML. Without
--out the file is rewritten in place. Files with errors are not written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath()

			f, err := config.LoadFile(path)
			if err != nil {
				return err
			}

			if err := config.Check(f); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if out == "" {
				out = path
			}

			if err := config.WriteFile(f, out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: rewrite --config in place)")

	return cmd
}
