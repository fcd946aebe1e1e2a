package config

import (
	"fmt"
	"log/slog"
	"os"

	"discograph/src/music"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new Manager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		defaultCfg := createDefaultConfig()

		if err := saveDefaultConfig(path, defaultCfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		applyEnvOverrides(defaultCfg)
		return NewManager(defaultCfg), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return NewManager(&cfg), nil
}

// applyEnvOverrides pulls credentials from the environment. Environment
// always wins over the file so secrets never need to live in config.yaml.
func applyEnvOverrides(cfg *Config) {
	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		cfg.Sources.Spotify.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		cfg.Sources.Spotify.ClientSecret = secret
	}
}

// applyDefaults fills values the file may omit.
func applyDefaults(cfg *Config) {
	if cfg.Sources.Spotify.AccountsURL == "" {
		cfg.Sources.Spotify.AccountsURL = "https://accounts.spotify.com"
	}
	if cfg.Sources.Spotify.APIURL == "" {
		cfg.Sources.Spotify.APIURL = "https://api.spotify.com"
	}
	if cfg.Sources.Spotify.PageSize <= 0 {
		cfg.Sources.Spotify.PageSize = 50
	}
	if len(cfg.Matching.NoiseWords) == 0 {
		cfg.Matching.NoiseWords = music.DefaultNoiseWords
	}
	if cfg.Matching.DateWindowDays <= 0 {
		cfg.Matching.DateWindowDays = music.DefaultDateWindowDays
	}
	if cfg.Fetch.TimeoutSeconds <= 0 {
		cfg.Fetch.TimeoutSeconds = 30
	}
	if cfg.Fetch.PacingMillis < 0 {
		cfg.Fetch.PacingMillis = 0
	}
	if cfg.Fetch.TrackWorkers <= 0 {
		cfg.Fetch.TrackWorkers = 4
	}
	if cfg.Output.Mode == "" {
		cfg.Output.Mode = "pages"
	}
	if cfg.Output.TemplatesDir == "" {
		cfg.Output.TemplatesDir = "./views"
	}
	if cfg.Output.ReportPath == "" {
		cfg.Output.ReportPath = "releases.txt"
	}
	if cfg.Hosting.Port == 0 {
		cfg.Hosting.Port = 3636
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = "text"
	}
}

// createDefaultConfig creates a new Config with sensible default values.
func createDefaultConfig() *Config {
	cfg := &Config{
		Artist: Artist{
			Name: "Kai Fathers",
		},
		Sources: Sources{
			Spotify: Spotify{
				ArtistID: "7aOzfiyPyb1w6s6If52cpg",
			},
			Bandcamp: Bandcamp{
				URL: "https://kaifathers.bandcamp.com",
			},
		},
		Output: Output{
			Mode: "pages",
			Dir:  "./releases",
		},
		Hosting: Hosting{
			Enabled: false,
		},
	}
	applyDefaults(cfg)
	return cfg
}

// saveDefaultConfig saves the default configuration to the specified file path.
func saveDefaultConfig(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	slog.Info("Default configuration saved", "path", path)
	return nil
}
