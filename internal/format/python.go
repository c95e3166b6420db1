package format

import (
	_ "embed"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

//go:embed templates/python.py.tmpl
var pythonTempl string

// pythonTemplate is the parsed requests script template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var pythonTemplate = newTemplate("python", pythonTempl)

// PythonExporter is an [Exporter] that renders a request as a Python script
// using the requests library.
//
// The method is lower cased to pick the requests function and the body is
// spliced in verbatim as the payload literal.
type PythonExporter struct{}

// Export implements [Exporter] for [PythonExporter].
func (p PythonExporter) Export(w io.Writer, request spec.Request) error {
	return pythonTemplate.Execute(w, request)
}
