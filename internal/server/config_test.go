package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leftover-labs/freedom-rate/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Empty path", path: ""},
		{name: "Missing file", path: "nonexistent.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Address != constants.DefaultServerAddress {
				t.Errorf("Address = %q, expected the default", cfg.Address)
			}
			if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
				t.Errorf("BodySizeBytes() = %d, expected the default", cfg.BodySizeBytes())
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `---
address: ":9090"
maxBodySize: 2M
forwardUrl: http://collector.local/ingest
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, expected :9090", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Errorf("BodySizeBytes() = %d, expected 2M", cfg.BodySizeBytes())
	}
	if cfg.ForwardURL != "http://collector.local/ingest" {
		t.Errorf("ForwardURL = %q", cfg.ForwardURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("address: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for malformed yaml")
	}
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		value     string
		want      int64
		wantError bool
	}{
		{value: "1048576", want: 1048576},
		{value: "512K", want: 512 * 1024},
		{value: "512KB", want: 512 * 1024},
		{value: "4M", want: 4 * 1024 * 1024},
		{value: "4MB", want: 4 * 1024 * 1024},
		{value: " 8 M ", want: 8 * 1024 * 1024},
		{value: "", wantError: true},
		{value: "-10", wantError: true},
		{value: "0", wantError: true},
		{value: "many", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseByteSize(tt.value)
			if tt.wantError {
				if err == nil {
					t.Errorf("parseByteSize(%q) expected error, got %d", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseByteSize(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("parseByteSize(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadConfigInvalidBodySize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("maxBodySize: huge"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for an invalid body size")
	}
}
