package scaffold_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/scaffold/internal/scaffold"
	"go.followtheprocess.codes/test"
)

func TestServeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	app := scaffold.New(false, "test", os.Stdin, &bytes.Buffer{}, &bytes.Buffer{})

	// An already cancelled context shuts the server straight back down
	err := app.Serve(ctx, scaffold.ServeOptions{Addr: "127.0.0.1:0"})
	test.Ok(t, err)
}

func TestServeBadConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "scaffold.toml")
	test.Ok(t, os.WriteFile(config, []byte("nonsense = true\n"), 0o644))

	app := scaffold.New(false, "test", os.Stdin, &bytes.Buffer{}, &bytes.Buffer{})

	err := app.Serve(t.Context(), scaffold.ServeOptions{Config: config})
	test.Err(t, err)
}
