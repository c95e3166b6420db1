package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
)

const generateLong = `
Only the first request in the collection is used. Its method, url, headers
and raw body are rendered as a standalone program in the target language.

Supported languages are listed by 'scaffold languages'. Any other value is
accepted and produces a placeholder comment rather than an error.

If '--lang' is not given and the terminal is interactive, you will be asked
to pick a language.
`

// generate returns the generate subcommand.
func generate() (*cli.Command, error) {
	var options scaffold.GenerateOptions

	return cli.New(
		"generate",
		cli.Short("Generate HTTP client code from a collection"),
		cli.Long(generateLong),
		cli.RequiredArg("file", "Path to the collection file"),
		cli.Flag(&options.Language, "lang", 'l', "", "Target language e.g. 'Go'"),
		cli.Flag(&options.Output, "output", 'o', "", "Name of a file to save the generated code"),
		cli.Flag(
			&options.Input,
			"input",
			'i',
			scaffold.InputPostman,
			"Input format, one of (postman|descriptor)",
		),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := scaffold.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Generate(cmd.Arg("file"), options)
		}),
	)
}

// languages returns the languages subcommand.
func languages() (*cli.Command, error) {
	return cli.New(
		"languages",
		cli.Short("List the supported target languages"),
		cli.Allow(cli.NoArgs()),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := scaffold.New(false, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			app.Languages()

			return nil
		}),
	)
}
