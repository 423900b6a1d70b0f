package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units",
		Long: `Convert a value between two units given by name or alias.

Example:
  unitconv convert 100 Celsius Fahrenheit
  unitconv convert --explain -- -40 F C`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			c, err := a.loadConverter()
			if err != nil {
				return err
			}

			from, to := args[1], args[2]

			result, err := c.Convert(value, from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s = %s %s\n", formatValue(value), from, formatValue(result), to)

			if explain {
				steps, err := c.Path(from, to)
				if err != nil {
					return err
				}

				for _, s := range steps {
					fmt.Fprintf(out, "  %s\n", formatStep(s))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Print the conversion steps")

	return cmd
}
