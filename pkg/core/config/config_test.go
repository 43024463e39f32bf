package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/sable/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "sable" {
		t.Errorf("General.Name = %v, want sable", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.Output.Format != "sexpr" || !cfg.Output.Color {
		t.Errorf("Output = %+v, want sexpr with color", cfg.Output)
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal should be enabled by default")
	}
	if cfg.Journal.Path != filepath.Join("./data", "journal.db") {
		t.Errorf("Journal.Path = %v", cfg.Journal.Path)
	}
	if cfg.Server.Port != 9470 {
		t.Errorf("Server.Port = %v, want 9470", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout.Duration != 10*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 10s", cfg.Server.RequestTimeout)
	}
	if cfg.ServerAddress() != "127.0.0.1:9470" {
		t.Errorf("ServerAddress() = %v", cfg.ServerAddress())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sable.toml")

	content := `
[general]
log_level = "debug"
data_dir = "$SABLE_TEST_DIR"

[parser]
max_tokens = 5000

[output]
format = "tree"
color = false

[journal]
enabled = false

[server]
port = 9999
request_timeout = "3s"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("SABLE_TEST_DIR", tmpDir)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.DataDir != tmpDir {
		t.Errorf("General.DataDir = %v, want %v", cfg.General.DataDir, tmpDir)
	}
	if cfg.Journal.Path != filepath.Join(tmpDir, "journal.db") {
		t.Errorf("Journal.Path = %v", cfg.Journal.Path)
	}
	if cfg.Parser.MaxTokens != 5000 {
		t.Errorf("Parser.MaxTokens = %v, want 5000", cfg.Parser.MaxTokens)
	}
	if cfg.Output.Format != "tree" || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Journal.Enabled {
		t.Error("Journal.Enabled should be false")
	}
	if cfg.Server.Port != 9999 || cfg.Server.RequestTimeout.Duration != 3*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	// Untouched defaults
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %v, want default", cfg.Server.Host)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantCode mdwerror.Code
	}{
		{"invalid toml", "[general\nname=", mdwerror.CodeConfigError},
		{"bad format", "[output]\nformat = \"xml\"", mdwerror.CodeConfigError},
		{"bad port", "[server]\nport = 70000", mdwerror.CodeConfigError},
		{"bad duration", "[server]\nrequest_timeout = \"soon\"", mdwerror.CodeConfigError},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "c"+string(rune('a'+i))+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}

	_, err := Load(filepath.Join(tmpDir, "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}
