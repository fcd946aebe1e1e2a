package music

import (
	"fmt"
	"strings"
)

type ReleaseType string

const (
	ReleaseTypeAlbum  ReleaseType = "album"
	ReleaseTypeEP     ReleaseType = "ep"
	ReleaseTypeSingle ReleaseType = "single"
)

// ParseReleaseType maps a source category string onto a ReleaseType.
// Unrecognized categories pass through verbatim so that nothing a source
// reports is ever lost.
func ParseReleaseType(raw string) ReleaseType {
	switch strings.ToLower(raw) {
	case "album":
		return ReleaseTypeAlbum
	case "ep":
		return ReleaseTypeEP
	case "single":
		return ReleaseTypeSingle
	}
	return ReleaseType(raw)
}

// Release represents one catalog entry, irrespective of which source it
// came from. Records are built once during adaptation and never mutated;
// the merger copies before enriching.
type Release struct {
	Type        ReleaseType
	Title       string
	Tracks      []string
	CoverURL    string
	Description string
	SourceURLs  map[string]string
	ReleaseDate string // ISO-8601, empty when the source has none
}

// Slug returns the URL-safe identifier for the release, derived
// deterministically from its title.
func (r *Release) Slug() string {
	return Slugify(r.Title)
}

// WithSourceURL returns a copy of the release with an extra source URL.
// At most one entry per source name is kept; an existing entry wins.
func (r *Release) WithSourceURL(source, url string) *Release {
	cp := *r
	cp.SourceURLs = make(map[string]string, len(r.SourceURLs)+1)
	for k, v := range r.SourceURLs {
		cp.SourceURLs[k] = v
	}
	if _, ok := cp.SourceURLs[source]; !ok && url != "" {
		cp.SourceURLs[source] = url
	}
	return &cp
}

// Validate validates the release fields.
func (r *Release) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("release title cannot be empty")
	}
	if r.Type == "" {
		return fmt.Errorf("release %q has no type", r.Title)
	}
	for i, track := range r.Tracks {
		if strings.TrimSpace(track) == "" {
			return fmt.Errorf("release %q has an empty track title at position %d", r.Title, i+1)
		}
	}
	return nil
}
