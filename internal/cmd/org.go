package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
)

const orgLong = `
The organisation id is derived from the name so the same name always gets
the same id, a new API key is issued every time.

The generated FastAPI application serves create, read, update and delete
routes for the organisation's users under /api/org/<org_id>/users/.
`

// org returns the org subcommand.
func org() (*cli.Command, error) {
	var options scaffold.OrgOptions

	return cli.New(
		"org",
		cli.Short("Issue an organisation and generate its FastAPI application"),
		cli.Long(orgLong),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&options.Name, "name", 'n', "", "Organisation name, prompted for if empty"),
		cli.Flag(&options.Output, "output", 'o', "", "Name of a file to save the generated code"),
		cli.Flag(&options.Save, "save", 's', false, "Save the generated code as <name>_api.py"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := scaffold.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Org(options)
		}),
	)
}
