package format

import (
	_ "embed"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

//go:embed templates/node.js.tmpl
var nodeTempl string

// nodeTemplate is the parsed axios script template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var nodeTemplate = newTemplate("node", nodeTempl)

// NodeExporter is an [Exporter] that renders a request as a Node.js script using
// axios, logging the outcome from the promise chain.
type NodeExporter struct{}

// Export implements [Exporter] for [NodeExporter].
func (n NodeExporter) Export(w io.Writer, request spec.Request) error {
	return nodeTemplate.Execute(w, request)
}
