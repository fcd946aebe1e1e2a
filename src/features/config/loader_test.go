package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalConfig = `
artist:
  name: Kai Fathers
sources:
  spotify:
    artist_id: 7aOzfiyPyb1w6s6If52cpg
  bandcamp:
    url: https://kaifathers.bandcamp.com
output:
  mode: pages
  dir: ./releases
`

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg := manager.Get()

	if cfg.Sources.Spotify.PageSize != 50 {
		t.Errorf("default page size = %d, want 50", cfg.Sources.Spotify.PageSize)
	}
	if cfg.Sources.Spotify.APIURL != "https://api.spotify.com" {
		t.Errorf("default API URL = %q", cfg.Sources.Spotify.APIURL)
	}
	if len(cfg.Matching.NoiseWords) == 0 {
		t.Error("default noise words missing")
	}
	if cfg.Matching.DateWindowDays != 7 {
		t.Errorf("default date window = %d, want 7", cfg.Matching.DateWindowDays)
	}
	if cfg.Fetch.Timeout() != 30*time.Second {
		t.Errorf("default fetch timeout = %v, want 30s", cfg.Fetch.Timeout())
	}
	if cfg.Output.ReportPath != "releases.txt" {
		t.Errorf("default report path = %q", cfg.Output.ReportPath)
	}
}

func TestLoad_EnvironmentOverridesCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")

	path := writeConfig(t, minimalConfig)

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg := manager.Get()
	if cfg.Sources.Spotify.ClientID != "env-id" {
		t.Errorf("client id = %q, want env override", cfg.Sources.Spotify.ClientID)
	}
	if cfg.Sources.Spotify.ClientSecret != "env-secret" {
		t.Errorf("client secret = %q, want env override", cfg.Sources.Spotify.ClientSecret)
	}
}

func TestLoad_RejectsInvalidMode(t *testing.T) {
	path := writeConfig(t, `
artist:
  name: Kai Fathers
sources:
  spotify:
    artist_id: abc
  bandcamp:
    url: https://kaifathers.bandcamp.com
output:
  mode: everything
  dir: ./releases
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown output mode")
	}
}

func TestLoad_CreatesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}
	if manager.Get().Output.Mode != "pages" {
		t.Errorf("default mode = %q, want pages", manager.Get().Output.Mode)
	}
}

func TestManagerRedactsSecret(t *testing.T) {
	manager := NewManager(&Config{
		Sources: Sources{Spotify: Spotify{ClientSecret: "hunter2"}},
	})
	yaml := manager.GetYAML()
	if strings.Contains(yaml, "hunter2") {
		t.Error("client secret leaked into YAML dump")
	}
}
