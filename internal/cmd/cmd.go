// Package cmd implements scaffold's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the scaffold CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	return cli.New(
		"scaffold",
		cli.Short("Generate API boilerplate for organisations and HTTP client code from collections"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Generate a Go program from the first request in a Postman collection", "scaffold generate ./collection.json --lang Go"),
		cli.Example("Pick the target language interactively", "scaffold generate ./collection.json"),
		cli.Example("Show the request code would be generated from", "scaffold inspect ./collection.json --format yaml"),
		cli.Example("Issue an organisation and save its FastAPI application", "scaffold org --name Acme --save"),
		cli.Example("Run the HTTP service", "scaffold serve --addr 127.0.0.1:8000"),
		cli.SubCommands(
			generate,
			inspect,
			check,
			org,
			serve(ctx),
			languages,
		),
	)
}
