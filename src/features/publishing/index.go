package publishing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"discograph/src/music"
)

// indexEntry is what the discography template sees for each release.
type indexEntry struct {
	Release *music.Release
	Link    string
}

// writeIndex renders the discography gallery: every release newest
// first, linking to its emitted page. Releases without a parseable date
// sort last, keeping their merged order among themselves.
func (s *Service) writeIndex(releases []*music.Release) error {
	slugs := music.ResolveSlugs(releases)
	entries := make([]indexEntry, len(releases))
	for i, r := range releases {
		entries[i] = indexEntry{Release: r, Link: pagePath(r.Type, slugs[i])}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return releaseSortKey(entries[i].Release) > releaseSortKey(entries[j].Release)
	})

	outPath := filepath.Join(s.cfg.Get().Output.Dir, "index.html")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	data := map[string]any{
		"Artist":  s.cfg.Get().Artist.Name,
		"Entries": entries,
	}
	if err := s.engine.Render(f, "discography", data); err != nil {
		f.Close()
		return fmt.Errorf("render discography index: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close index file: %w", err)
	}
	logWrite("index", outPath)
	return nil
}

// releaseSortKey orders releases by date, newest first when compared
// with >. The YYYY-MM-DD prefix sorts lexicographically; empty dates
// sort after everything.
func releaseSortKey(r *music.Release) string {
	if len(r.ReleaseDate) >= 10 {
		return r.ReleaseDate[:10]
	}
	return ""
}
