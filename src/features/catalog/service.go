package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"discograph/src/music"

	"github.com/google/uuid"
)

// Source is the capability a catalog provider has to offer: produce the
// full list of an artist's releases. Keeping adapters behind this
// interface lets the matching core run against fixture data with no
// network anywhere near it.
type Source interface {
	Name() string
	FetchCatalog(ctx context.Context) ([]*music.Release, error)
}

// Service builds the deduplicated master release list from a primary and
// a secondary source.
type Service struct {
	primary   Source
	secondary Source
	merger    *music.Merger
}

// NewService creates the catalog service. Records from primary always
// win; secondary records only land in the output when they duplicate
// nothing in primary.
func NewService(primary, secondary Source, merger *music.Merger) *Service {
	return &Service{primary: primary, secondary: secondary, merger: merger}
}

// BuildCatalog fetches both sources and merges them. Any source failure
// aborts the whole run; there is nothing sensible to emit from half a
// catalog.
func (s *Service) BuildCatalog(ctx context.Context) ([]*music.Release, error) {
	logger := slog.With("run", uuid.New().String())

	primary, err := s.fetch(ctx, logger, s.primary)
	if err != nil {
		return nil, err
	}
	secondary, err := s.fetch(ctx, logger, s.secondary)
	if err != nil {
		return nil, err
	}

	merged := s.merger.Merge(primary, secondary)
	logger.Info("Catalog merged",
		"primary", len(primary),
		"secondary", len(secondary),
		"merged", len(merged),
		"duplicates_dropped", len(primary)+len(secondary)-len(merged),
	)
	return merged, nil
}

func (s *Service) fetch(ctx context.Context, logger *slog.Logger, source Source) ([]*music.Release, error) {
	releases, err := source.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s catalog: %w", source.Name(), err)
	}
	for _, r := range releases {
		if err := r.Validate(); err != nil {
			logger.Warn("Release failed validation, keeping it anyway", "source", source.Name(), "error", err)
		}
	}
	logger.Info("Fetched catalog", "source", source.Name(), "releases", len(releases))
	return releases, nil
}
