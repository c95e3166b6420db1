package scaffold_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/scaffold/internal/scaffold"
	"go.followtheprocess.codes/test"
	"go.uber.org/goleak"
)

var update = flag.Bool("update", false, "Update testscript snapshots")

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"generate": func() {
			app := scaffold.New(false, "test", os.Stdin, os.Stdout, os.Stderr)
			options := scaffold.GenerateOptions{
				Language: os.Args[2],
				Input:    scaffold.InputPostman,
			}

			if err := app.Generate(os.Args[1], options); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestGenerate(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "generate"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}

func TestGenerateOutput(t *testing.T) {
	defer goleak.VerifyNone(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := scaffold.New(false, "test", os.Stdin, stdout, stderr)

	output := filepath.Join(t.TempDir(), "main.go")
	options := scaffold.GenerateOptions{
		Language: "Go",
		Input:    scaffold.InputPostman,
		Output:   output,
	}

	err := app.Generate(filepath.Join("testdata", "check", "valid", "users.json"), options)
	test.Ok(t, err)

	test.Diff(t, stdout.String(), fmt.Sprintf("Success: Go code written to %s\n", output))
	test.Diff(t, stderr.String(), "")

	contents, err := os.ReadFile(output)
	test.Ok(t, err)

	code := string(contents)
	test.True(t, strings.HasPrefix(code, "package main\n"))
	test.True(t, strings.HasSuffix(code, "}\n"))
	test.True(t, strings.Contains(code, `http.NewRequest("POST", url, payload)`))
}

func TestGenerateDescriptor(t *testing.T) {
	descriptor := `{
  "name": "Delete user",
  "method": "DELETE",
  "url": "https://api.example.com/users/1",
  "headers": {},
  "body": ""
}`

	file := filepath.Join(t.TempDir(), "request.json")
	test.Ok(t, os.WriteFile(file, []byte(descriptor), 0o644))

	stdout := &bytes.Buffer{}
	app := scaffold.New(false, "test", os.Stdin, stdout, &bytes.Buffer{})

	options := scaffold.GenerateOptions{
		Language: "Python (FastAPI)",
		Input:    scaffold.InputDescriptor,
	}

	test.Ok(t, app.Generate(file, options))
	test.True(t, strings.Contains(stdout.String(), "requests.delete(url, headers=headers, json=payload)"))
	test.True(t, strings.Contains(stdout.String(), "payload = {}"))
}

func TestGenerateNoLanguage(t *testing.T) {
	stdout := &bytes.Buffer{}

	// A buffer is never a terminal so there's no way to prompt
	app := scaffold.New(false, "test", &bytes.Buffer{}, stdout, &bytes.Buffer{})

	options := scaffold.GenerateOptions{Input: scaffold.InputPostman}

	err := app.Generate(filepath.Join("testdata", "check", "valid", "users.json"), options)
	test.Err(t, err)
	test.True(t, strings.Contains(err.Error(), "--lang was not given"), test.Context("got %v", err))
	test.Equal(t, stdout.String(), "")
}

func TestGenerateMissingFile(t *testing.T) {
	app := scaffold.New(false, "test", os.Stdin, &bytes.Buffer{}, &bytes.Buffer{})

	options := scaffold.GenerateOptions{Language: "Go", Input: scaffold.InputPostman}

	err := app.Generate(filepath.Join(t.TempDir(), "missing.json"), options)
	test.Err(t, err)
}

func TestGenerateOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string                   // Name of the test case
		options scaffold.GenerateOptions // Options under test
		wantErr bool                     // Whether Validate should return an error
	}{
		{name: "postman", options: scaffold.GenerateOptions{Input: scaffold.InputPostman}, wantErr: false},
		{name: "descriptor", options: scaffold.GenerateOptions{Input: scaffold.InputDescriptor}, wantErr: false},
		{name: "empty", options: scaffold.GenerateOptions{}, wantErr: true},
		{name: "unknown", options: scaffold.GenerateOptions{Input: "insomnia"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WantErr(t, tt.options.Validate(), tt.wantErr)
		})
	}
}

func TestLanguages(t *testing.T) {
	stdout := &bytes.Buffer{}
	app := scaffold.New(false, "test", os.Stdin, stdout, &bytes.Buffer{})

	app.Languages()

	want := "Python (FastAPI)\nNode.js (Express)\nGo\nJava (Spring Boot)\n"
	test.Diff(t, stdout.String(), want)
}

func TestInspect(t *testing.T) {
	stdout := &bytes.Buffer{}
	app := scaffold.New(false, "test", os.Stdin, stdout, &bytes.Buffer{})

	file := filepath.Join("testdata", "check", "valid", "health.json")
	test.Ok(t, app.Inspect(file, scaffold.InspectOptions{Format: "json"}))

	want := `{
  "headers": {},
  "name": "Health check",
  "method": "GET",
  "url": "https://api.example.com/health",
  "body": ""
}
`

	test.Diff(t, stdout.String(), want)
}

func TestInspectFormats(t *testing.T) {
	file := filepath.Join("testdata", "check", "valid", "users.json")

	for _, format := range []string{"json", "yaml", "toml", "curl"} {
		t.Run(format, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			app := scaffold.New(false, "test", os.Stdin, stdout, &bytes.Buffer{})

			test.Ok(t, app.Inspect(file, scaffold.InspectOptions{Format: format}))
			test.True(t, strings.Contains(stdout.String(), "https://api.example.com/users"))
		})
	}
}

func TestInspectInvalid(t *testing.T) {
	app := scaffold.New(false, "test", os.Stdin, &bytes.Buffer{}, &bytes.Buffer{})

	err := app.Inspect(filepath.Join("testdata", "check", "valid", "users.json"), scaffold.InspectOptions{Format: "xml"})
	test.Err(t, err)

	err = app.Inspect(filepath.Join("testdata", "check", "invalid", "empty.json"), scaffold.InspectOptions{Format: "json"})
	test.Err(t, err)
}

func TestInspectDescriptorRoundTrip(t *testing.T) {
	stdout := &bytes.Buffer{}
	app := scaffold.New(false, "test", os.Stdin, stdout, &bytes.Buffer{})

	test.Ok(t, app.Inspect(filepath.Join("testdata", "check", "valid", "users.json"), scaffold.InspectOptions{Format: "json"}))

	// What inspect prints is accepted back by generate --input descriptor
	file := filepath.Join(t.TempDir(), "request.json")
	test.Ok(t, os.WriteFile(file, stdout.Bytes(), 0o644))

	generated := &bytes.Buffer{}
	app = scaffold.New(false, "test", os.Stdin, generated, &bytes.Buffer{})

	options := scaffold.GenerateOptions{Language: "Go", Input: scaffold.InputDescriptor}
	test.Ok(t, app.Generate(file, options))
	test.True(t, strings.Contains(generated.String(), "strings.NewReader(`"+`{"name": "Jane"}`+"`)"))
	test.True(t, strings.Contains(generated.String(), `http.NewRequest("POST", url, payload)`))
}
