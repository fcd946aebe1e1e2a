// Package bandcamp adapts a Bandcamp storefront's public pages into
// release records. Bandcamp has no catalog API, so the adapter works the
// markup directly: release links off the landing page, then the title
// heading, date metadata, track list and cover link of each release page.
package bandcamp

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"

	"discograph/src/features/config"
	"discograph/src/infra/httpx"
	"discograph/src/music"
)

// ErrNoReleases is returned when a storefront page carries no album or
// track links. This typically means the URL is not a Bandcamp artist
// page, or the markup changed.
var ErrNoReleases = errors.New("no releases found on storefront page")

var (
	releaseLinkRe = regexp.MustCompile(`href="(/(?:album|track)/[^"?#]+)"`)
	titleRe       = regexp.MustCompile(`(?s)<h2[^>]*class="[^"]*trackTitle[^"]*"[^>]*>(.*?)</h2>`)
	dateRe        = regexp.MustCompile(`<meta[^>]*itemprop="datePublished"[^>]*content="([^"]*)"`)
	trackTitleRe  = regexp.MustCompile(`(?s)<span[^>]*class="[^"]*track-title[^"]*"[^>]*>(.*?)</span>`)
	coverRe       = regexp.MustCompile(`<a[^>]*class="[^"]*popupImage[^"]*"[^>]*href="([^"]+)"`)
	aboutRe       = regexp.MustCompile(`(?s)<div[^>]*class="[^"]*tralbum-about[^"]*"[^>]*>(.*?)</div>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
)

// Scraper fetches a storefront's catalog by walking its public pages.
type Scraper struct {
	baseURL string
	http    *httpx.Client
}

// New creates a storefront scraper.
func New(cfg config.Bandcamp, httpClient *httpx.Client) *Scraper {
	return &Scraper{baseURL: strings.TrimRight(cfg.URL, "/"), http: httpClient}
}

// Name identifies the source in logs and source URL maps.
func (s *Scraper) Name() string { return "bandcamp" }

// FetchCatalog fetches the landing page, follows every release link and
// parses each linked page into a release record. Missing optional fields
// (cover, date, description) are tolerated; transport failures are not.
func (s *Scraper) FetchCatalog(ctx context.Context) ([]*music.Release, error) {
	landing, err := s.http.GetBody(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("bandcamp landing page: %w", err)
	}

	links := extractReleaseLinks(string(landing))
	if len(links) == 0 {
		return nil, fmt.Errorf("%s: %w", s.baseURL, ErrNoReleases)
	}

	releases := make([]*music.Release, 0, len(links))
	for _, link := range links {
		pageURL, err := s.resolve(link)
		if err != nil {
			return nil, fmt.Errorf("bandcamp release link %q: %w", link, err)
		}
		page, err := s.http.GetBody(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("bandcamp release page: %w", err)
		}
		rel, err := parseReleasePage(string(page), pageURL)
		if err != nil {
			return nil, fmt.Errorf("bandcamp release page %s: %w", pageURL, err)
		}
		releases = append(releases, rel)
	}

	return releases, nil
}

// extractReleaseLinks returns every /album/ and /track/ href, first-seen
// order, duplicates removed.
func extractReleaseLinks(pageHTML string) []string {
	matches := releaseLinkRe.FindAllStringSubmatch(pageHTML, -1)
	seen := make(map[string]struct{}, len(matches))
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		links = append(links, m[1])
	}
	return links
}

// parseReleasePage extracts a release record from one release page. The
// title is mandatory; everything else defaults to empty.
func parseReleasePage(pageHTML, pageURL string) (*music.Release, error) {
	title := extractFirst(titleRe, pageHTML)
	if title == "" {
		return nil, errors.New("no release title heading found")
	}

	var tracks []string
	for _, m := range trackTitleRe.FindAllStringSubmatch(pageHTML, -1) {
		if t := cleanText(m[1]); t != "" {
			tracks = append(tracks, t)
		}
	}

	relType := music.ReleaseTypeSingle
	if len(tracks) > 1 {
		relType = music.ReleaseTypeAlbum
	}

	return &music.Release{
		Type:        relType,
		Title:       title,
		Tracks:      tracks,
		CoverURL:    extractFirst(coverRe, pageHTML),
		Description: extractFirst(aboutRe, pageHTML),
		SourceURLs:  map[string]string{"bandcamp": pageURL},
		ReleaseDate: parseDate(extractFirst(dateRe, pageHTML)),
	}, nil
}

func extractFirst(re *regexp.Regexp, pageHTML string) string {
	m := re.FindStringSubmatch(pageHTML)
	if m == nil {
		return ""
	}
	return cleanText(m[1])
}

func cleanText(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}

// parseDate maps the storefront's date formats onto ISO-8601. Anything
// unparseable is treated as no date at all.
func parseDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"20060102", "2006-01-02", "02 Jan 2006 15:04:05 MST"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func (s *Scraper) resolve(link string) (string, error) {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
