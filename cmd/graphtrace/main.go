// SPDX-License-Identifier: MIT
// Command graphtrace runs BFS shortest-path trees and DFS edge
// classification over a nodes.csv/links.csv dataset.
//
//	graphtrace bfs --nodes nodes.csv --links links.csv --root Ti --out turnin
//	graphtrace dfs --root Ti --classification classical --render
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "graphtrace:", err)
		stop()
		os.Exit(1)
	}
}
