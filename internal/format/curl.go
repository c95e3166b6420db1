package format

import (
	_ "embed"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

// TODO(@FollowTheProcess): Large bodies should be written to a file next to the
// script and passed with --data @file rather than inline

//go:embed templates/curl.txt.tmpl
var curlTempl string

// curlTemplate is the parsed curl command line text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var curlTemplate = newTemplate("curl", curlTempl)

// CurlExporter is an [Exporter] that transforms a request into a curl command.
type CurlExporter struct{}

// Export implements [Exporter] for [CurlExporter].
func (c CurlExporter) Export(w io.Writer, request spec.Request) error {
	return curlTemplate.Execute(w, request)
}
