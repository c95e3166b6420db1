package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
)

const serveLong = `
Settings are read from the TOML file given by '--config', any setting not in
the file keeps its default. The '--addr' flag takes precedence over the file.

All data is held in memory and lost when the server stops.
`

// serve returns the serve subcommand.
func serve(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options scaffold.ServeOptions

		return cli.New(
			"serve",
			cli.Short("Run the scaffold HTTP service"),
			cli.Long(serveLong),
			cli.Allow(cli.NoArgs()),
			cli.Flag(&options.Addr, "addr", 'a', "", "Address to listen on, overrides the config file"),
			cli.Flag(&options.Config, "config", 'c', "", "Path to a scaffold.toml config file"),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := scaffold.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
				return app.Serve(ctx, options)
			}),
		)
	}
}
