package config

import "time"

// Config holds the application configuration.
type Config struct {
	Artist   Artist   `yaml:"artist" validate:"required"`
	Sources  Sources  `yaml:"sources" validate:"required"`
	Matching Matching `yaml:"matching"`
	Fetch    Fetch    `yaml:"fetch"`
	Output   Output   `yaml:"output" validate:"required"`
	Hosting  Hosting  `yaml:"hosting"`
	Logger   Logger   `yaml:"logger"`
}

// Artist identifies whose catalog is being aggregated.
type Artist struct {
	Name string `yaml:"name" validate:"required"`
}

// Sources holds the per-source settings. Spotify is the primary source,
// Bandcamp the secondary.
type Sources struct {
	Spotify  Spotify  `yaml:"spotify"`
	Bandcamp Bandcamp `yaml:"bandcamp"`
}

// Spotify holds the streaming-source settings. Credentials come from the
// SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET environment variables and
// override whatever the file says.
type Spotify struct {
	ArtistID     string `yaml:"artist_id" validate:"required"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AccountsURL  string `yaml:"accounts_url"`
	APIURL       string `yaml:"api_url"`
	PageSize     int    `yaml:"page_size"`
}

// Bandcamp holds the storefront-source settings.
type Bandcamp struct {
	URL string `yaml:"url" validate:"required,url"`
}

// Matching holds the knobs of the release matcher. The noise words are
// removed from titles as raw substrings, in list order, before any
// comparison; tune this list rather than the matcher itself.
type Matching struct {
	NoiseWords     []string `yaml:"noise_words"`
	DateWindowDays int      `yaml:"date_window_days"`
}

// Fetch holds the request pacing and timeout policy applied to both
// sources.
type Fetch struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	PacingMillis   int `yaml:"pacing_ms"`
	TrackWorkers   int `yaml:"track_workers"`
}

// Timeout returns the per-request timeout.
func (f Fetch) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Pacing returns the minimum delay between requests to one source.
func (f Fetch) Pacing() time.Duration {
	return time.Duration(f.PacingMillis) * time.Millisecond
}

// Output selects what the run emits: "pages" renders one HTML page per
// release, "report" writes the flat text report.
type Output struct {
	Mode         string `yaml:"mode" validate:"required,oneof=pages report"`
	Dir          string `yaml:"dir" validate:"required"`
	TemplatesDir string `yaml:"templates_dir"`
	ReportPath   string `yaml:"report_path"`
}

// Hosting holds the configuration for the optional preview server.
type Hosting struct {
	Enabled bool   `yaml:"enabled"`
	Port    uint32 `yaml:"port"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
