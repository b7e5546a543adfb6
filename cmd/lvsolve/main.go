// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvsolve/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, version); err != nil {
		stop()
		os.Exit(1)
	}
}
