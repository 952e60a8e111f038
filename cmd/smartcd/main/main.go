package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/smartcd/cmd/smartcd"
	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/style"
)

func main() {
	// Ctrl-C cancels the context so fd and fzf are stopped with us
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := smartcd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		style.Warn(os.Stderr, errors.UserMessage(err))
		os.Exit(1)
	}
}
