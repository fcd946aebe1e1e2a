package music

import (
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)

// Slugify derives a URL and filename safe identifier from a title:
// transliterate to ASCII, lowercase, drop everything that is not a
// letter, digit, whitespace or hyphen, turn whitespace runs into single
// hyphens, collapse hyphen runs, trim leading/trailing hyphens.
// Idempotent: slugifying a valid slug returns it unchanged.
func Slugify(title string) string {
	s := strings.ToLower(unidecode.Unidecode(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ResolveSlugs maps releases to output identifiers, in order. When two
// releases produce the same slug but carry different types, the later
// one gets its type appended ("midnight" vs "midnight-single"). Releases
// sharing both slug and type keep colliding; the later one overwrites
// the earlier output at the same path.
func ResolveSlugs(releases []*Release) []string {
	seen := make(map[string]ReleaseType, len(releases))
	out := make([]string, len(releases))
	for i, r := range releases {
		slug := r.Slug()
		if firstType, ok := seen[slug]; ok {
			if firstType != r.Type {
				slug = slug + "-" + string(r.Type)
			}
		} else {
			seen[slug] = r.Type
		}
		out[i] = slug
	}
	return out
}
