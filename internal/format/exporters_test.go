package format_test

import (
	"bytes"
	"net/http"
	"os"
	"strings"
	"testing"

	"go.followtheprocess.codes/scaffold/internal/format"
	"go.followtheprocess.codes/scaffold/internal/spec"
	"go.followtheprocess.codes/snapshot"
	"go.followtheprocess.codes/test"
)

// requests is the shared set of descriptors every exporter is snapshot tested against.
//
//nolint:gochecknoglobals // Test fixtures
var requests = []struct {
	name    string       // Name of the test case
	request spec.Request // The request to export
}{
	{
		name: "bare",
		request: spec.Request{
			Name:    spec.DefaultName,
			Method:  spec.DefaultMethod,
			URL:     spec.DefaultURL,
			Headers: map[string]string{},
			Body:    spec.Body{},
		},
	},
	{
		name: "post with body",
		request: spec.Request{
			Name:   "Create user",
			Method: http.MethodPost,
			URL:    "https://api.example.com/users",
			Headers: map[string]string{
				"Content-Type":  "application/json",
				"Authorization": "Bearer token",
			},
			Body: spec.Body(`{"name": "Jane", "age": 30, "tags": ["a", "b"]}`),
		},
	},
	{
		name: "lowercase delete",
		request: spec.Request{
			Name:    "Remove",
			Method:  "delete",
			URL:     "https://api.example.com/users/1",
			Headers: map[string]string{"Accept": "application/json"},
			Body:    spec.Body{},
		},
	},
}

func TestExporters(t *testing.T) {
	exporters := []struct {
		exporter format.Exporter
		name     string
	}{
		{name: "python", exporter: format.PythonExporter{}},
		{name: "node", exporter: format.NodeExporter{}},
		{name: "go", exporter: format.GoExporter{}},
		{name: "java", exporter: format.JavaExporter{}},
		{name: "curl", exporter: format.CurlExporter{}},
		{name: "json", exporter: format.JSONExporter{}},
		{name: "yaml", exporter: format.YAMLExporter{}},
		{name: "toml", exporter: format.TOMLExporter{}},
	}

	for _, ex := range exporters {
		for _, tt := range requests {
			t.Run(ex.name+"/"+tt.name, func(t *testing.T) {
				snap := snapshot.New(
					t,
					snapshot.Update(*update),
					snapshot.Clean(*clean),
					snapshot.Color(os.Getenv("CI") == ""),
				)

				buf := &bytes.Buffer{}
				test.Ok(t, ex.exporter.Export(buf, tt.request))

				snap.Snap(buf.String())
			})
		}
	}
}

func TestPythonExporter(t *testing.T) {
	request := spec.Request{
		Method:  "POST",
		URL:     "https://api.example.com/users",
		Headers: map[string]string{"B": "2", "A": "1"},
		Body:    spec.Body{},
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.PythonExporter{}.Export(buf, request))
	got := buf.String()

	test.True(t, strings.Contains(got, "import requests"))
	test.True(t, strings.Contains(got, `url = "https://api.example.com/users"`))
	test.True(t, strings.Contains(got, `headers = {"A": "1", "B": "2"}`), test.Context("headers not sorted:\n%s", got))
	test.True(t, strings.Contains(got, "payload = {}"))
	test.True(t, strings.Contains(got, "requests.post(url, headers=headers, json=payload)"))
}

func TestNodeExporter(t *testing.T) {
	tests := []struct {
		name   string // Name of the test case
		method string // Method on the request
		want   string // Expected axios call
	}{
		{name: "post sends positionally", method: "POST", want: ".post(url, payload, { headers })"},
		{name: "patch sends positionally", method: "patch", want: ".patch(url, payload, { headers })"},
		{name: "get uses config", method: "GET", want: ".get(url, { headers, data: payload })"},
		{name: "delete uses config", method: "DELETE", want: ".delete(url, { headers, data: payload })"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := spec.Request{
				Method:  tt.method,
				URL:     "http://x/y",
				Headers: map[string]string{"A": "1"},
				Body:    spec.Body(`{"k": "v"}`),
			}

			buf := &bytes.Buffer{}
			test.Ok(t, format.NodeExporter{}.Export(buf, request))
			got := buf.String()

			test.True(t, strings.Contains(got, `require("axios")`))
			test.True(t, strings.Contains(got, `const headers = {"A":"1"};`))
			test.True(t, strings.Contains(got, `const payload = {"k": "v"};`))
			test.True(t, strings.Contains(got, tt.want), test.Context("missing %q in:\n%s", tt.want, got))
			test.True(t, strings.Contains(got, ".then("))
			test.True(t, strings.Contains(got, ".catch("))
		})
	}
}

func TestGoExporter(t *testing.T) {
	request := spec.Request{
		Method:  "put",
		URL:     "http://x/y",
		Headers: map[string]string{"A": "1"},
		Body:    spec.Body(`{"k": "v"}`),
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.GoExporter{}.Export(buf, request))
	got := buf.String()

	test.True(t, strings.HasPrefix(got, "package main"))
	test.True(t, strings.Contains(got, "strings.NewReader(`{\"k\": \"v\"}`)"))
	test.True(t, strings.Contains(got, "json.Unmarshal([]byte(`{\"A\":\"1\"}`), &headers)"))
	test.True(t, strings.Contains(got, `http.NewRequest("PUT", url, payload)`))
	test.True(t, strings.Contains(got, "req.Header.Set(key, value)"))
	test.True(t, strings.Contains(got, "&http.Client{}"))
	test.True(t, strings.Contains(got, "io.ReadAll(res.Body)"))
}

func TestCurlExporter(t *testing.T) {
	request := spec.Request{
		Method:  "post",
		URL:     "http://x/y",
		Headers: map[string]string{"A": "it's"},
		Body:    spec.Body("{\n  \"k\": \"v\"\n}"),
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.CurlExporter{}.Export(buf, request))

	want := "curl --request POST \\\n" +
		"  --url 'http://x/y' \\\n" +
		`  --header 'A: it'\''s' \` + "\n" +
		`  --data '{"k":"v"}'`

	test.Diff(t, strings.TrimSpace(buf.String()), want)
}
