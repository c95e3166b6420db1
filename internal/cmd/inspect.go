package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
)

// inspect returns the inspect subcommand.
func inspect() (*cli.Command, error) {
	var options scaffold.InspectOptions

	return cli.New(
		"inspect",
		cli.Short("Show the normalised request a collection generates code from"),
		cli.RequiredArg("file", "Path to the collection file"),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			"json",
			"Output format, one of (json|yaml|toml|curl)",
		),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := scaffold.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Inspect(cmd.Arg("file"), options)
		}),
	)
}
