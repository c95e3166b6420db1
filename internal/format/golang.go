package format

import (
	_ "embed"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

//go:embed templates/go.go.tmpl
var goTempl string

// goTemplate is the parsed net/http program template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var goTemplate = newTemplate("go", goTempl)

// GoExporter is an [Exporter] that renders a request as a complete Go program
// using net/http.
//
// The generated program decodes the headers from JSON and sets them one at a time,
// any failure is fatal.
type GoExporter struct{}

// Export implements [Exporter] for [GoExporter].
func (g GoExporter) Export(w io.Writer, request spec.Request) error {
	return goTemplate.Execute(w, request)
}
