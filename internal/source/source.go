package source

import (
	"context"

	"statcard/internal/domain"
)

// StatSource is the boundary to the upstream stats provider. Both the
// stats-API client and the scraping client satisfy it, the rest of the
// pipeline cannot tell them apart.
type StatSource interface {
	// FetchPlayer resolves a human-readable name and returns the
	// player's current season line. domain.ErrPlayerNotFound when the
	// name matches nobody, domain.ErrUpstream on transport or data
	// failures. Single attempt, no retries.
	FetchPlayer(ctx context.Context, name string) (domain.PlayerRecord, error)

	// LeagueSample returns the league-wide reference distribution used
	// for percentile ranking.
	LeagueSample(ctx context.Context, season string) (domain.LeagueSample, error)
}

// IndexEntry is one row of the league's player index used for name
// resolution.
type IndexEntry struct {
	ID       int
	Name     string
	FromYear int
	ToYear   int
}
