// Package format provides mechanisms for format conversions into and from the canonical
// request descriptor.
//
// Notably, the package provides the [Importer] and [Exporter] interfaces for doing this
// in a format-agnostic way.
//
// It also provides the built in importers and exporters: the Postman collection importer,
// the code emitters for each supported target language and the JSON, YAML, TOML and curl
// renderings of a descriptor.
package format

import (
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

// Exporter is the interface defining a mechanism for exporting a request descriptor
// into an external format.
type Exporter interface {
	// Export exports the [spec.Request] into an external format, written to w.
	Export(w io.Writer, request spec.Request) error
}

// Importer is the interface defining a mechanism for importing external formats
// into a canonical request descriptor.
type Importer interface {
	// Import imports the data from the external format into a [spec.Request].
	Import(r io.Reader) (spec.Request, error)
}
