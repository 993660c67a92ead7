package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yuekcc/init-nodejs-project/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
