package publishing

import (
	"fmt"
	"os"
	"path/filepath"

	"discograph/src/music"
)

// pageDir returns the output subdirectory a release belongs in: albums
// and EPs together, everything else with the singles.
func pageDir(t music.ReleaseType) string {
	if t == music.ReleaseTypeAlbum || t == music.ReleaseTypeEP {
		return "lp-ep"
	}
	return "singles"
}

// pageTemplate returns the template name for a release type.
func pageTemplate(t music.ReleaseType) string {
	if t == music.ReleaseTypeAlbum || t == music.ReleaseTypeEP {
		return "album"
	}
	return "single"
}

// pagePath returns a release's output path relative to the output dir.
func pagePath(t music.ReleaseType, slug string) string {
	return filepath.Join(pageDir(t), slug+".html")
}

// writePages renders one page per release. Identifiers come from
// ResolveSlugs, so two same-slug releases of different types land in
// distinct files; same slug and type silently overwrites.
func (s *Service) writePages(releases []*music.Release) error {
	outDir := s.cfg.Get().Output.Dir
	slugs := music.ResolveSlugs(releases)

	for i, release := range releases {
		relPath := pagePath(release.Type, slugs[i])
		outPath := filepath.Join(outDir, relPath)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("create page directory: %w", err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create page file: %w", err)
		}
		data := map[string]any{
			"Artist":  s.cfg.Get().Artist.Name,
			"Release": release,
			"Slug":    slugs[i],
		}
		if err := s.engine.Render(f, pageTemplate(release.Type), data); err != nil {
			f.Close()
			return fmt.Errorf("render page %s: %w", relPath, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close page file: %w", err)
		}
		logWrite("page", outPath)
	}
	return nil
}
