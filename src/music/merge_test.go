package music

import "testing"

func newTestMerger() *Merger {
	return NewMerger(newTestMatcher())
}

func TestMerge_EmptySecondaryIsIdentity(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"}},
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
	}

	got := g.Merge(primary, nil)
	if len(got) != len(primary) {
		t.Fatalf("Merge(primary, nil) has %d records, want %d", len(got), len(primary))
	}
	for i := range primary {
		if got[i] != primary[i] {
			t.Errorf("Merge(primary, nil)[%d] is not the original record", i)
		}
	}
}

func TestMerge_DropsDuplicates(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"},
			SourceURLs: map[string]string{"spotify": "https://open.spotify.com/album/1"}},
	}
	secondary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "HORIZON (Remaster)", Tracks: []string{"dawn", "dusk"},
			SourceURLs: map[string]string{"bandcamp": "https://band.example.com/album/horizon"}},
	}

	got := g.Merge(primary, secondary)
	if len(got) != 1 {
		t.Fatalf("Merge returned %d records, want 1", len(got))
	}
	if got[0].Title != "Horizon" {
		t.Errorf("merged record title = %q, want the primary record's", got[0].Title)
	}
}

func TestMerge_EnrichesMatchedRecordWithSourceURL(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"},
			SourceURLs: map[string]string{"spotify": "https://open.spotify.com/album/1"}},
	}
	secondary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"},
			SourceURLs: map[string]string{"bandcamp": "https://band.example.com/album/horizon"}},
	}

	got := g.Merge(primary, secondary)
	if len(got) != 1 {
		t.Fatalf("Merge returned %d records, want 1", len(got))
	}
	if got[0].SourceURLs["spotify"] == "" || got[0].SourceURLs["bandcamp"] == "" {
		t.Errorf("merged record source URLs = %v, want both sources present", got[0].SourceURLs)
	}
	if len(got[0].SourceURLs) != 2 {
		t.Errorf("merged record has %d source URLs, want 2 (one per source)", len(got[0].SourceURLs))
	}
	// Input records stay untouched.
	if len(primary[0].SourceURLs) != 1 {
		t.Errorf("primary record was mutated: %v", primary[0].SourceURLs)
	}
}

func TestMerge_AppendsNonDuplicatesInOrder(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"}},
	}
	secondary := []*Release{
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn", "Dusk"}},
		{Type: ReleaseTypeSingle, Title: "Glow", Tracks: []string{"Glow"}},
	}

	got := g.Merge(primary, secondary)
	want := []string{"Horizon", "Fade", "Glow"}
	if len(got) != len(want) {
		t.Fatalf("Merge returned %d records, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("Merge[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

// Secondary records are only ever tested against primary, so duplicates
// inside the secondary list itself survive the merge.
func TestMerge_SecondaryInternalDuplicatesSurvive(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn"}},
	}
	secondary := []*Release{
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
	}

	got := g.Merge(primary, secondary)
	if len(got) != 3 {
		t.Fatalf("Merge returned %d records, want 3", len(got))
	}
}

func TestMerge_Bounds(t *testing.T) {
	g := newTestMerger()
	primary := []*Release{
		{Type: ReleaseTypeAlbum, Title: "Horizon", Tracks: []string{"Dawn"}},
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
	}
	secondary := []*Release{
		{Type: ReleaseTypeSingle, Title: "Fade", Tracks: []string{"Fade"}},
		{Type: ReleaseTypeSingle, Title: "Glow", Tracks: []string{"Glow"}},
	}

	got := g.Merge(primary, secondary)
	if len(got) < len(primary) {
		t.Errorf("Merge returned fewer records (%d) than primary (%d)", len(got), len(primary))
	}
	if len(got) > len(primary)+len(secondary) {
		t.Errorf("Merge returned more records (%d) than primary+secondary (%d)", len(got), len(primary)+len(secondary))
	}
}
