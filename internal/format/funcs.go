package format

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"text/template"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

// emptyPayload is the payload literal used when a request has no body.
const emptyPayload = "{}"

// functions are the template functions available to every emitter template.
//
//nolint:gochecknoglobals // This has to be here
var functions = template.FuncMap{
	"lower":      strings.ToLower,
	"upper":      strings.ToUpper,
	"quote":      strconv.Quote,
	"jsString":   jsString,
	"json":       headersJSON,
	"payload":    payload,
	"pyDict":     pythonDict,
	"hasBody":    sendsBody,
	"javaString": javaString,
	"entries":    javaEntries,
	"shellQuote": shellQuote,
	"compact":    compact,
}

// newTemplate parses an emitter template with the shared functions, panicking
// on error as the templates are embedded and fixed at compile time.
func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(functions).Parse(text))
}

// payload returns the raw body verbatim, or an empty object literal if there
// is no body.
//
// The body is deliberately not validated or escaped, whatever the collection
// contains ends up in the generated source.
func payload(body spec.Body) string {
	if body.IsEmpty() {
		return emptyPayload
	}

	return body.String()
}

// headersJSON serialises the headers as a compact JSON object with sorted keys.
func headersJSON(headers map[string]string) (string, error) {
	if headers == nil {
		return emptyPayload, nil
	}

	out, err := json.Marshal(headers)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// jsString renders s as a JavaScript string literal by way of its JSON encoding.
func jsString(s string) (string, error) {
	out, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// pythonDict renders the headers as a Python dict literal with sorted keys.
func pythonDict(headers map[string]string) string {
	if len(headers) == 0 {
		return emptyPayload
	}

	request := spec.Request{Headers: headers}
	pairs := make([]string, 0, len(headers))

	for _, key := range request.HeaderKeys() {
		pairs = append(pairs, strconv.Quote(key)+": "+strconv.Quote(headers[key]))
	}

	return "{" + strings.Join(pairs, ", ") + "}"
}

// sendsBody reports whether the client call for method takes the payload
// as a positional argument (axios style), as opposed to in the config.
func sendsBody(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// compact minifies the body if it's valid JSON, otherwise it's returned as is.
func compact(body spec.Body) string {
	buf := &bytes.Buffer{}
	if err := json.Compact(buf, body); err != nil {
		return body.String()
	}

	return buf.String()
}
