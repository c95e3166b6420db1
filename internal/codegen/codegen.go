// Package codegen selects a code emitter by target language and runs it.
//
// The set of emitters is a lookup table rather than a chain of conditionals,
// adding a new target is a new [format.Exporter] and one call to [Generator.Register].
//
// Generation is a pure function of the request descriptor and the language: a
// [Generator] holds no mutable state once built and is safe for concurrent use.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.followtheprocess.codes/scaffold/internal/format"
	"go.followtheprocess.codes/scaffold/internal/spec"
)

// Language is the tag selecting a code emitter.
//
// Tags are matched exactly and case-sensitively, anything unrecognised is still a
// valid Language and renders as a placeholder.
type Language string

// The built in target languages.
const (
	Python Language = "Python (FastAPI)"
	Node   Language = "Node.js (Express)"
	Go     Language = "Go"
	Java   Language = "Java (Spring Boot)"
)

// ErrGeneration is the error returned (wrapped around the real cause) when a
// collection cannot be turned into source code.
var ErrGeneration = errors.New("generation failed")

// Generator maps languages to the emitters that render them.
type Generator struct {
	emitters  map[Language]format.Exporter
	languages []Language // Registration order, for stable listings
}

// New returns a [Generator] with all the built in languages registered.
func New() *Generator {
	g := &Generator{
		emitters: make(map[Language]format.Exporter),
	}

	g.Register(Python, format.PythonExporter{})
	g.Register(Node, format.NodeExporter{})
	g.Register(Go, format.GoExporter{})
	g.Register(Java, format.JavaExporter{})

	return g
}

// Register adds (or replaces) the emitter for a language.
//
// Register must not be called once the Generator is shared between goroutines.
func (g *Generator) Register(language Language, emitter format.Exporter) {
	if _, exists := g.emitters[language]; !exists {
		g.languages = append(g.languages, language)
	}

	g.emitters[language] = emitter
}

// Languages returns the supported languages in the order they were registered.
func (g *Generator) Languages() []Language {
	languages := make([]Language, len(g.languages))
	copy(languages, g.languages)

	return languages
}

// Supports reports whether language has a registered emitter.
func (g *Generator) Supports(language string) bool {
	_, ok := g.emitters[Language(language)]
	return ok
}

// Render renders the request in the given language.
//
// An unrecognised language is not an error, the result is a single line
// comment saying so, see [Placeholder].
func (g *Generator) Render(request spec.Request, language string) (string, error) {
	emitter, ok := g.emitters[Language(language)]
	if !ok {
		return Placeholder(language), nil
	}

	buf := &bytes.Buffer{}
	if err := emitter.Export(buf, request); err != nil {
		return "", fmt.Errorf("could not render %s: %w", language, err)
	}

	return buf.String(), nil
}

// Generate reads a Postman collection from r, normalises its first request and
// renders it in the given language.
//
// Any problem with the collection is returned as an error wrapping both
// [ErrGeneration] and the underlying cause, no partial output is ever returned.
func (g *Generator) Generate(r io.Reader, language string) (string, error) {
	return g.GenerateFrom(format.PostmanImporter{}, r, language)
}

// GenerateFrom is like [Generator.Generate] but reads the request with an
// arbitrary importer.
func (g *Generator) GenerateFrom(importer format.Importer, r io.Reader, language string) (string, error) {
	request, err := importer.Import(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	out, err := g.Render(request, language)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return out, nil
}

// Placeholder returns the text rendered for a language with no emitter.
func Placeholder(language string) string {
	return fmt.Sprintf("// Code template for %s is not implemented yet.", language)
}
