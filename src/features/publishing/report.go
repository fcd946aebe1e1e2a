package publishing

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"discograph/src/music"
)

// FormatReport serializes the catalog as a flat text report: one block
// per release with its uppercased type, title, comma-joined tracks and
// whichever source URLs are present, blocks separated by blank lines.
func FormatReport(releases []*music.Release) string {
	blocks := make([]string, 0, len(releases))
	for _, r := range releases {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(r.Type)), r.Title)
		fmt.Fprintf(&b, "Tracks: %s\n", strings.Join(r.Tracks, ", "))

		sources := make([]string, 0, len(r.SourceURLs))
		for source := range r.SourceURLs {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			fmt.Fprintf(&b, "%s: %s\n", capitalize(source), r.SourceURLs[source])
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeReport writes the text report to the configured path.
func (s *Service) writeReport(releases []*music.Release) error {
	path := s.cfg.Get().Output.ReportPath
	if err := os.WriteFile(path, []byte(FormatReport(releases)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logWrite("report", path)
	return nil
}
