// Package main provides the CLI entrypoint for unitconv.
//
// unitconv converts measurements between units described in a JSON or YAML
// file:
//   - units with aliases, optionally hidden intermediate units
//   - directed scale (multiply) and offset (add) conversions
//   - multi-step conversions found by breadth-first search
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
