package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/scaffold/internal/org"
)

// filePermissions are the permissions generated files are written with.
const filePermissions = 0o644

// OrgOptions are the options passed to the org subcommand.
type OrgOptions struct {
	// Name is the organisation name, if empty the user is prompted.
	Name string

	// Output is the name of a file in which to save the sample FastAPI application,
	// if empty it's printed to stdout after the organisation details.
	Output string

	// Save, if true, saves the sample application to a file named after the
	// organisation e.g. "acme_api.py". Ignored if Output is set.
	Save bool

	// Debug enables debug logging.
	Debug bool
}

// Org implements the org subcommand, issuing an organisation and rendering
// its sample API.
func (s Scaffold) Org(options OrgOptions) error {
	logger := s.logger.Prefixed("org")

	name := strings.TrimSpace(options.Name)
	if name == "" {
		var err error

		name, err = s.promptName()
		if err != nil {
			return fmt.Errorf("--name was not given and could not prompt for it: %w", err)
		}
	}

	issued := org.New(name)

	logger.Debug("Issued organisation", slog.String("name", issued.Name), slog.String("org_id", issued.ID))

	code, err := org.SampleCode(issued.ID)
	if err != nil {
		return err
	}

	s.showOrg(issued)

	output := options.Output
	if output == "" && options.Save {
		output = org.FileName(issued.Name)
	}

	if output == "" {
		fmt.Fprintln(s.stdout, dimmed.Text("Save the code below with --save to write "+org.FileName(issued.Name)))
		fmt.Fprintln(s.stdout, strings.Repeat("─", sepWidth)+"\n")
		fmt.Fprint(s.stdout, code)

		return nil
	}

	if err := os.WriteFile(output, []byte(code), filePermissions); err != nil {
		return fmt.Errorf("could not write sample code: %w", err)
	}

	msg.Fsuccess(s.stdout, "FastAPI code written to %s", output)

	return nil
}

// showOrg prints the organisation details in a user friendly way to s.stdout.
func (s Scaffold) showOrg(issued org.Org) {
	fmt.Fprintf(s.stdout, "%s: %s\n", labelStyle.Text("Org Name"), issued.Name)
	fmt.Fprintf(s.stdout, "%s: %s\n", labelStyle.Text("Org ID"), issued.ID)
	fmt.Fprintf(s.stdout, "%s: %s\n", labelStyle.Text("API Key"), issued.APIKey)
	fmt.Fprintf(s.stdout, "%s: %s\n", labelStyle.Text("Base API URL"), issued.BaseURL)

	fmt.Fprintln(s.stdout) // Line space

	for _, verb := range slices.SortedFunc(maps.Keys(issued.SampleEndpoints), compareMethods) {
		fmt.Fprintf(s.stdout, "%s %s\n", method.Text(fmt.Sprintf("%-6s", verb)), hue.Bold.Text(issued.SampleEndpoints[verb]))
	}

	fmt.Fprintln(s.stdout) // Line space
}

// methodOrder is the order sample endpoints are listed in, CRUD order.
//
//nolint:gochecknoglobals // Lookup table, never mutated
var methodOrder = []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete}

// compareMethods orders HTTP methods in CRUD order, anything unknown goes last.
func compareMethods(a, b string) int {
	rank := func(m string) int {
		if i := slices.Index(methodOrder, m); i >= 0 {
			return i
		}

		return len(methodOrder)
	}

	return rank(a) - rank(b)
}

// promptName asks the user for an organisation name.
func (s Scaffold) promptName() (string, error) {
	if !s.interactive() {
		return "", errNotInteractive
	}

	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Organisation name").
				Value(&name).
				Validate(func(value string) error {
					if strings.TrimSpace(value) == "" {
						return errors.New("please enter a valid organisation name")
					}

					return nil
				}),
		),
	).WithInput(s.stdin).WithOutput(s.stderr)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}
