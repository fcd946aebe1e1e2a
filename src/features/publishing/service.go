// Package publishing turns the merged release list into output: static
// per-release HTML pages plus a discography index, or a flat text report.
package publishing

import (
	"fmt"
	"log/slog"

	"discograph/src/features/config"
	"discograph/src/music"

	"github.com/gofiber/template/html/v2"
)

// Service emits the merged catalog in the configured output mode.
type Service struct {
	cfg    *config.Manager
	engine *html.Engine
}

// NewService creates the publishing service. The template engine loads
// from the configured templates directory.
func NewService(cfg *config.Manager) *Service {
	engine := html.New(cfg.Get().Output.TemplatesDir, ".html")
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("formatDate", formatDateOnly)
	return &Service{cfg: cfg, engine: engine}
}

// Publish writes the output for a run. Emission failures are fatal;
// files already written stay where they are.
func (s *Service) Publish(releases []*music.Release) error {
	switch mode := s.cfg.Get().Output.Mode; mode {
	case "pages":
		if err := s.engine.Load(); err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		if err := s.writePages(releases); err != nil {
			return err
		}
		return s.writeIndex(releases)
	case "report":
		return s.writeReport(releases)
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
}

func formatDateOnly(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}

func logWrite(kind, path string) {
	slog.Debug("Wrote output file", "kind", kind, "path", path)
}
