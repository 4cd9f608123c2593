package main

import (
	"context"
	"os"
	"os/signal"

	"eca/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	format, _ := cmd.PersistentFlags().GetString("format")
	out := &cli.OutputFormatter{Format: format, Writer: os.Stdout, ErrWriter: os.Stderr}
	_ = out.Error(err)
	stop()
	os.Exit(cli.GetExitCode(err))
}
