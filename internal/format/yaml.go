package format

import (
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that renders a request descriptor as a YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given request as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, request spec.Request) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(request); err != nil {
		return err
	}

	return encoder.Close()
}
