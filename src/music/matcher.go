package music

import (
	"log/slog"
	"time"
)

// DefaultDateWindowDays is the widest release-date gap two records may
// have and still be treated as the same release by the date fallback.
const DefaultDateWindowDays = 7

// Matcher decides whether two independently sourced records describe the
// same underlying release. Title text alone is unreliable across sources
// (one side appends "(Remastered)", the other drops an "EP" suffix), so
// the tracklist is the primary signal, with lead-track and date-proximity
// checks as progressively weaker fallbacks.
type Matcher struct {
	normalizer     *Normalizer
	dateWindowDays int
}

// NewMatcher creates a Matcher on top of a Normalizer. A non-positive
// window falls back to DefaultDateWindowDays.
func NewMatcher(normalizer *Normalizer, dateWindowDays int) *Matcher {
	if dateWindowDays <= 0 {
		dateWindowDays = DefaultDateWindowDays
	}
	return &Matcher{normalizer: normalizer, dateWindowDays: dateWindowDays}
}

// Normalizer returns the normalizer the matcher compares with.
func (m *Matcher) Normalizer() *Normalizer {
	return m.normalizer
}

// Same reports whether a and b refer to the same release.
//
// Types must agree exactly, and equal normalized titles are a strict
// precondition: no fuzzy matching is ever attempted when they differ.
// With titles equal, the checks run strongest first: full normalized
// tracklist equality, then the lead-track rule for singles, then
// release dates within the date window with equal-length tracklists.
func (m *Matcher) Same(a, b *Release) bool {
	if a.Type != b.Type {
		return false
	}
	if m.normalizer.Normalize(a.Title) != m.normalizer.Normalize(b.Title) {
		return false
	}

	trA := m.normalizer.NormalizeTracks(a.Tracks)
	trB := m.normalizer.NormalizeTracks(b.Tracks)
	if tracklistsEqual(trA, trB) {
		return true
	}

	// Singles often carry bonus remixes on only one source, so the lead
	// track is the identity signal.
	if a.Type == ReleaseTypeSingle && len(trA) > 0 && len(trB) > 0 && trA[0] == trB[0] {
		return true
	}

	if a.ReleaseDate != "" && b.ReleaseDate != "" && len(trA) == len(trB) {
		dayA, okA := parseDay(a.ReleaseDate)
		dayB, okB := parseDay(b.ReleaseDate)
		if okA && okB {
			diff := dayA.Sub(dayB)
			if diff < 0 {
				diff = -diff
			}
			if diff <= time.Duration(m.dateWindowDays)*24*time.Hour {
				slog.Debug("matched releases by date proximity", "title", a.Title, "a", a.ReleaseDate, "b", b.ReleaseDate)
				return true
			}
		}
	}

	return false
}

func tracklistsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseDay reads the leading YYYY-MM-DD of an ISO-8601 date string.
// A malformed date just disables the date fallback, never fails a run.
func parseDay(date string) (time.Time, bool) {
	if len(date) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", date[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
