package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.followtheprocess.codes/scaffold/internal/config"
	"go.followtheprocess.codes/test"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string        // Name of the test case
		contents string        // Contents of the config file
		want     config.Config // Expected config
		wantErr  bool          // Whether Load should return an error
	}{
		{
			name:     "empty file",
			contents: "",
			want:     config.Default(),
		},
		{
			name:     "partial",
			contents: "addr = \"0.0.0.0:9000\"\nread-timeout = \"5s\"\n",
			want: config.Config{
				Addr:            "0.0.0.0:9000",
				ReadTimeout:     config.Duration{Duration: 5 * time.Second},
				WriteTimeout:    config.Duration{Duration: config.DefaultWriteTimeout},
				ShutdownTimeout: config.Duration{Duration: config.DefaultShutdownTimeout},
				MaxUploadBytes:  config.DefaultMaxUploadBytes,
			},
		},
		{
			name: "full",
			contents: `addr = "localhost:1234"
read-timeout = "1s"
write-timeout = "2m"
shutdown-timeout = "500ms"
max-upload-bytes = 1024
`,
			want: config.Config{
				Addr:            "localhost:1234",
				ReadTimeout:     config.Duration{Duration: time.Second},
				WriteTimeout:    config.Duration{Duration: 2 * time.Minute},
				ShutdownTimeout: config.Duration{Duration: 500 * time.Millisecond},
				MaxUploadBytes:  1024,
			},
		},
		{
			name:     "unknown key",
			contents: "port = 8000\n",
			wantErr:  true,
		},
		{
			name:     "bad duration",
			contents: "read-timeout = \"soon\"\n",
			wantErr:  true,
		},
		{
			name:     "negative upload size",
			contents: "max-upload-bytes = -1\n",
			wantErr:  true,
		},
		{
			name:     "empty addr",
			contents: "addr = \"\"\n",
			wantErr:  true,
		},
		{
			name:     "not toml",
			contents: "this is [not toml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scaffold.toml")
			test.Ok(t, os.WriteFile(path, []byte(tt.contents), 0o644))

			got, err := config.Load(path)
			test.WantErr(t, err, tt.wantErr)

			if !tt.wantErr {
				test.Equal(t, got, tt.want)
			}
		})
	}
}

func TestLoadNoPath(t *testing.T) {
	got, err := config.Load("")
	test.Ok(t, err)
	test.Equal(t, got, config.Default())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.Err(t, err)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	test.Ok(t, cfg.Validate())
	test.Equal(t, cfg.Addr, "127.0.0.1:8000")
	test.Equal(t, cfg.ReadTimeout.Duration, 15*time.Second)
}

func TestDurationMarshalText(t *testing.T) {
	text, err := config.Duration{Duration: 90 * time.Second}.MarshalText()
	test.Ok(t, err)
	test.Equal(t, string(text), "1m30s")
}
