package format

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

//go:embed templates/java.java.tmpl
var javaTempl string

// javaTemplate is the parsed Spring Boot client program template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var javaTemplate = newTemplate("java", javaTempl)

// entryIndent is the indentation of top level body entries in the generated main method.
const entryIndent = "            "

// JavaExporter is an [Exporter] that renders a request as a standalone Java program
// using Spring's RestTemplate.
//
// Unlike the other emitters, the body is parsed as a JSON object and rebuilt entry by
// entry with Map.ofEntries. A body that is empty, not JSON, or not an object renders
// as an empty map rather than an error.
type JavaExporter struct{}

// Export implements [Exporter] for [JavaExporter].
func (j JavaExporter) Export(w io.Writer, request spec.Request) error {
	return javaTemplate.Execute(w, request)
}

// entry is a single key/value pair of a JSON object, kept in document order.
type entry struct {
	value any // string, json.Number, bool, nil, object or []any
	key   string
}

// object is a JSON object with its key order preserved.
type object []entry

// set adds the key to the object, a repeated key keeps its first position
// but takes the later value.
func (o object) set(key string, value any) object {
	for i := range o {
		if o[i].key == key {
			o[i].value = value
			return o
		}
	}

	return append(o, entry{key: key, value: value})
}

// javaEntries renders the body as a Map.ofEntries expression, one top level
// entry per line.
func javaEntries(body spec.Body) string {
	obj, err := parseObject(body)
	if err != nil || len(obj) == 0 {
		return "Map.ofEntries()"
	}

	lines := make([]string, 0, len(obj))
	for _, e := range obj {
		lines = append(lines, entryIndent+javaEntry(e))
	}

	return "Map.ofEntries(\n" + strings.Join(lines, ",\n") + "\n        )"
}

// javaEntry renders a single Map.entry expression.
func javaEntry(e entry) string {
	return fmt.Sprintf("Map.entry(%s, %s)", javaString(e.key), javaValue(e.value))
}

// javaValue renders a decoded JSON value as a Java expression, nested objects
// and arrays are kept on a single line.
func javaValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return javaString(v)
	case json.Number:
		return javaNumber(v)
	case object:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			parts = append(parts, javaEntry(e))
		}

		return "Map.ofEntries(" + strings.Join(parts, ", ") + ")"
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, javaValue(item))
		}

		return "List.of(" + strings.Join(parts, ", ") + ")"
	default:
		return javaString(fmt.Sprint(v))
	}
}

// javaNumber renders a JSON number as a Java numeric literal, integers too
// large for an int get the long suffix.
func javaNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil && (i > math.MaxInt32 || i < math.MinInt32) {
		return n.String() + "L"
	}

	return n.String()
}

// javaString renders s as a double quoted Java string literal.
func javaString(s string) string {
	builder := &strings.Builder{}
	builder.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			if r < ' ' {
				fmt.Fprintf(builder, `\u%04x`, r)
				continue
			}

			builder.WriteRune(r)
		}
	}

	builder.WriteByte('"')

	return builder.String()
}

// errNotObject is returned when a body is valid JSON but not an object.
var errNotObject = errors.New("body is not a JSON object")

// parseObject decodes body as a single JSON object preserving key order.
func parseObject(body spec.Body) (object, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	obj, err := decodeObject(decoder)
	if err != nil {
		return nil, err
	}

	// Trailing content means the body was not a single JSON document
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after JSON object: %w", err)
	}

	return obj, nil
}

// decodeObject decodes the members of an object whose opening brace has
// already been consumed, along with the closing brace.
func decodeObject(decoder *json.Decoder) (object, error) {
	obj := object{}

	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		obj = obj.set(key, value)
	}

	// Closing brace
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

// decodeArray decodes the elements of an array whose opening bracket has
// already been consumed, along with the closing bracket.
func decodeArray(decoder *json.Decoder) ([]any, error) {
	items := []any{}

	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		items = append(items, value)
	}

	// Closing bracket
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return items, nil
}

// decodeValue decodes the next complete JSON value.
func decodeValue(decoder *json.Decoder) (any, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(decoder)
	case '[':
		return decodeArray(decoder)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}
