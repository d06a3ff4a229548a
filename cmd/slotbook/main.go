package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/slotbook/slotbook-sdk-go/internal/cli"
	"github.com/slotbook/slotbook-sdk-go/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(version.Version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
