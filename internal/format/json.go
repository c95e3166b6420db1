package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

// JSONExporter is an [Exporter] that renders a request descriptor as a JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given request
// as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, request spec.Request) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(request)
}

// JSONImporter is an [Importer] that reads a request descriptor previously
// written by [JSONExporter].
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter] and imports the given
// JSON document into a [spec.Request].
func (j JSONImporter) Import(r io.Reader) (spec.Request, error) {
	var request spec.Request

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&request); err != nil {
		return spec.Request{}, fmt.Errorf("%w: could not decode JSON: %w", ErrMalformedCollection, err)
	}

	if request.Method == "" {
		request.Method = spec.DefaultMethod
	}

	if request.URL == "" {
		request.URL = spec.DefaultURL
	}

	if request.Headers == nil {
		request.Headers = make(map[string]string)
	}

	if request.Body == nil {
		request.Body = spec.Body{}
	}

	return request, nil
}
