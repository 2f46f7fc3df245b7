package domain

import "errors"

var (
	// ErrPlayerNotFound - the name does not resolve to any known player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrUpstream - the stats source is unreachable or returned garbage.
	ErrUpstream = errors.New("stats source unavailable")
	// ErrMissingStat - a single stat is absent for this player/season.
	// Absorbed per row, the card shows N/A instead.
	ErrMissingStat = errors.New("stat not available")
	// ErrRender - the card could not be drawn. Fatal for the request.
	ErrRender = errors.New("card render failed")
)
