package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/convert"
	"unitconv/internal/watch"
)

func newReplCmd(a *app) *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Convert values interactively",
		Long: `Start an interactive session that asks for a source unit, a target unit and
a value, then prints the result. Type 'list' to show the units and 'exit'
to quit. With --watch the units file is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := watch.New(a.configPath(), watch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer h.Close()

			if watchFile {
				if err := h.Start(cmd.Context()); err != nil {
					return err
				}
			}

			return newSession(cmd.InOrStdin(), cmd.OutOrStdout(), h.Current).run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Reload the units file when it changes")

	return cmd
}

// session is one interactive conversion loop. current is consulted for
// every query so a reload takes effect on the next question.
type session struct {
	in      *bufio.Scanner
	out     io.Writer
	current func() *convert.Converter
}

func newSession(in io.Reader, out io.Writer, current func() *convert.Converter) *session {
	return &session{in: bufio.NewScanner(in), out: out, current: current}
}

// run returns nil on 'exit' or end of input.
func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for ctx.Err() == nil {
		fmt.Fprintln(s.out, "Enter first unit of conversion query or 'exit' to quit:")
		fmt.Fprintln(s.out, "or type 'list' to list all units")

		from, ok := s.read()
		if !ok {
			return s.in.Err()
		}

		if strings.EqualFold(from, "list") {
			fmt.Fprintln(s.out, "Units:")
			printUnits(s.out, s.current())

			continue
		}

		c := s.current()
		if !c.Contains(from) {
			fmt.Fprintln(s.out, "Please enter a valid unit.")
			continue
		}

		fmt.Fprintln(s.out, "Enter second unit of conversion query:")

		to, ok := s.read()
		if !ok {
			return s.in.Err()
		}

		if !c.Contains(to) {
			fmt.Fprintln(s.out, "Please enter a valid unit.")
			continue
		}

		fmt.Fprintln(s.out, "Enter value to convert:")

		raw, ok := s.read()
		if !ok {
			return s.in.Err()
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}

		result, err := c.Convert(value, from, to)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(s.out, "%s %s = %s %s\n", formatValue(value), from, formatValue(result), to)
	}

	return ctx.Err()
}

// read returns the next trimmed line. ok is false on end of input or 'exit'.
func (s *session) read() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	line := strings.TrimSpace(s.in.Text())
	if strings.EqualFold(line, "exit") {
		return "", false
	}

	return line, true
}

func printUnits(w io.Writer, c *convert.Converter) {
	for i, u := range c.Units() {
		fmt.Fprintf(w, "\t%d: %s\n", i+1, u)
	}
}
