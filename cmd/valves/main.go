// valves reads a valve network and prints the best pressure released by one
// agent (part1) and by two agents sharing the work (part2).
//
// Usage:
//
//	valves [input] [--config=run.yaml] [--horizon=30] [--head-start=4]
//	       [--start=AA] [--dedup=keep-best|first-seen] [--frontier=fifo|lifo]
//	       [--format=auto|text|hcl] [--log-level=info] [--log-format=text|json]
//	       [--cpuprofile=<dir>]
//
// Without an input argument the network is read from standard input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
