package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a collection file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with the '.json' extension and any matching files will be validated.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options scaffold.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check collections can be used for code generation"),
		cli.Long(checkLong),
		cli.OptionalArg("path", "Path to check, may be directory or file", "."),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			options.Path = cmd.Arg("path")
			app := scaffold.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())

			return app.Check(options)
		}),
	)
}
