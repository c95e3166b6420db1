package main

import (
	"context"
	"os"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/scaffold/internal/cmd"
)

func main() {
	if err := run(); err != nil {
		msg.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli, err := cmd.Build(ctx)
	if err != nil {
		return err
	}

	return cli.Execute()
}
