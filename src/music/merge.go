package music

import "log/slog"

// Merger folds a secondary source's catalog into a primary one,
// dropping secondary records the Matcher recognizes as duplicates.
type Merger struct {
	matcher *Matcher
}

// NewMerger creates a Merger using the given Matcher.
func NewMerger(matcher *Matcher) *Merger {
	return &Merger{matcher: matcher}
}

// Merge returns primary, in its original order, followed by exactly the
// secondary records that matched nothing in primary, in their original
// relative order. A secondary record is only ever tested against
// primary, never against other secondary records; duplicates inside the
// secondary list itself are not collapsed.
//
// When a secondary record duplicates a primary one, the primary record
// is enriched with the secondary record's source URLs (copy-on-write;
// the input slices and their records are never mutated).
func (g *Merger) Merge(primary, secondary []*Release) []*Release {
	result := make([]*Release, len(primary))
	copy(result, primary)

	for _, sec := range secondary {
		matched := false
		for i, prim := range primary {
			if g.matcher.Same(sec, prim) {
				matched = true
				enriched := result[i]
				for source, url := range sec.SourceURLs {
					enriched = enriched.WithSourceURL(source, url)
				}
				result[i] = enriched
				slog.Debug("dropped duplicate release", "title", sec.Title, "matches", prim.Title)
				break
			}
		}
		if !matched {
			result = append(result, sec)
		}
	}

	return result
}
