// Package spec provides the Request type, the concrete, canonical data structure
// describing a single HTTP request extracted from an imported collection.
//
// Unlike the representations in the format package, the data here is complete: defaults
// have been applied, headers are never nil and the body is always present, even if empty.
// Every code emitter consumes a [Request] and nothing else.
package spec

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Default values applied when the source collection omits a field.
const (
	// DefaultMethod is the HTTP method used when a request does not declare one.
	DefaultMethod = http.MethodGet

	// DefaultURL is the placeholder URL used when a request does not declare one.
	DefaultURL = "http://example.com"

	// DefaultName is the label given to requests without a name, it is only ever
	// used in logs.
	DefaultName = "Untitled Request"
)

// Request is a single HTTP request as a canonical, fully defaulted representation.
//
// A Request is created once by an importer and never mutated afterwards.
type Request struct {
	// Request headers, header name to value, never nil
	Headers map[string]string `json:"headers" toml:"headers" yaml:"headers"`

	// Name of the request in the source collection, informational only
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The HTTP method exactly as given in the source, emitters apply their own casing
	Method string `json:"method" toml:"method" yaml:"method"`

	// The raw URL, not validated in any way
	URL string `json:"url" toml:"url" yaml:"url"`

	// Raw request body, possibly empty, possibly JSON
	Body Body `json:"body" toml:"body" yaml:"body"`
}

// HeaderKeys returns the request header names in sorted order.
//
// Emitters use this so that generated output is deterministic regardless of
// map iteration order.
func (r Request) HeaderKeys() []string {
	return slices.Sorted(maps.Keys(r.Headers))
}

// String implements [fmt.Stringer] for a [Request] and formats it
// in the style of a request within a .http file.
func (r Request) String() string {
	builder := &strings.Builder{}

	if r.Name != "" {
		fmt.Fprintf(builder, "### %s\n", r.Name)
	} else {
		builder.WriteString("###\n")
	}

	fmt.Fprintf(builder, "%s %s\n", r.Method, r.URL)

	for _, key := range r.HeaderKeys() {
		fmt.Fprintf(builder, "%s: %s\n", key, r.Headers[key])
	}

	if len(r.Body) != 0 {
		fmt.Fprintf(builder, "\n%s\n", r.Body.String())
	}

	return builder.String()
}
