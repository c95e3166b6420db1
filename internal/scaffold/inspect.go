package scaffold

import (
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/scaffold/internal/format"
)

// InspectOptions are the options passed to the inspect subcommand.
type InspectOptions struct {
	// Format is the format the normalised request is shown in e.g. json, yaml etc.
	Format string

	// Debug controls debug logging.
	Debug bool
}

// exporters are the formats a normalised request can be inspected in.
//
//nolint:gochecknoglobals // Lookup table, never mutated
var exporters = map[string]format.Exporter{
	"json": format.JSONExporter{},
	"yaml": format.YAMLExporter{},
	"toml": format.TOMLExporter{},
	"curl": format.CurlExporter{},
}

// Validate reports whether the InspectOptions is valid, returning a non-nil
// error if it's not.
func (i InspectOptions) Validate() error {
	if _, ok := exporters[i.Format]; !ok {
		return fmt.Errorf("invalid option for --format %q, allowed values are 'json', 'yaml', 'toml', 'curl'", i.Format)
	}

	return nil
}

// Inspect implements the inspect subcommand, showing the request descriptor
// code would be generated from.
func (s Scaffold) Inspect(file string, options InspectOptions) error {
	logger := s.logger.Prefixed("inspect").With(slog.String("file", file))

	if err := options.Validate(); err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	request, err := format.PostmanImporter{}.Import(f)
	if err != nil {
		return fmt.Errorf("could not import %s: %w", file, err)
	}

	logger.Debug(
		"Normalised request",
		slog.String("request", request.Name),
		slog.String("method", request.Method),
		slog.String("url", request.URL),
		slog.Int("headers", len(request.Headers)),
	)

	return exporters[options.Format].Export(s.stdout, request)
}
