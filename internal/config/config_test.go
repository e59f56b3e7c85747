package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TEAMUP_API_URL", "")
	t.Setenv("TEAMUP_CREDENTIALS_FILE", "")
	t.Setenv("TEAMUP_LOG_LEVEL", "")
	t.Setenv("TEAMUP_LOG_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.CredentialsFile == "" {
		t.Error("CredentialsFile should have a default")
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("TEAMUP_API_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api_url: https://teammaker.example.com/api\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != "https://teammaker.example.com/api" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: https://file.example.com/api\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEAMUP_API_URL", "https://env.example.com/api")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != "https://env.example.com/api" {
		t.Errorf("APIURL = %q, want env value", cfg.APIURL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: [broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid http", Config{APIURL: "http://localhost:8080/api", CredentialsFile: "/tmp/c.json"}, false},
		{"valid https", Config{APIURL: "https://api.example.com", CredentialsFile: "/tmp/c.json"}, false},
		{"relative url", Config{APIURL: "/api", CredentialsFile: "/tmp/c.json"}, true},
		{"bad scheme", Config{APIURL: "ftp://example.com", CredentialsFile: "/tmp/c.json"}, true},
		{"empty url", Config{APIURL: "", CredentialsFile: "/tmp/c.json"}, true},
		{"no credentials path", Config{APIURL: "http://localhost:8080", CredentialsFile: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
