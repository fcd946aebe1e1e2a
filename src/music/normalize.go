package music

import (
	"regexp"
	"strings"
)

// DefaultNoiseWords is the stock removal list applied before comparing
// titles across sources. Order matters and removal is raw substring
// matching, not word-boundary aware: "ep" inside "epiphany" is stripped
// too. That imprecision is deliberate; tune the list through config
// instead of changing the matching rules.
var DefaultNoiseWords = []string{"demo", "remaster", "version", "ep", "single"}

var (
	nonComparable = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Normalizer produces canonical forms of release and track titles for
// cross-source equality comparison.
type Normalizer struct {
	noiseWords []string
}

// NewNormalizer creates a Normalizer with the given noise-word removal
// list. An empty list falls back to DefaultNoiseWords.
func NewNormalizer(noiseWords []string) *Normalizer {
	if len(noiseWords) == 0 {
		noiseWords = DefaultNoiseWords
	}
	return &Normalizer{noiseWords: noiseWords}
}

// NoiseWords returns the active removal list.
func (n *Normalizer) NoiseWords() []string {
	return n.noiseWords
}

// Normalize lower-cases a title, strips the noise words in list order,
// drops everything that is not a lowercase letter, digit, whitespace or
// hyphen, collapses whitespace runs and trims. Always returns a string,
// possibly empty.
func (n *Normalizer) Normalize(title string) string {
	s := strings.ToLower(title)
	for _, word := range n.noiseWords {
		s = strings.ReplaceAll(s, word, "")
	}
	s = nonComparable.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeTracks normalizes every track title in order.
func (n *Normalizer) NormalizeTracks(tracks []string) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = n.Normalize(t)
	}
	return out
}
