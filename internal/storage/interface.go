package storage

import (
	"errors"

	"statcard/internal/domain"
)

// ErrNoSnapshot - no stored sample for the requested season.
var ErrNoSnapshot = errors.New("no sample snapshot")

// SampleStorage persists league reference distributions between runs so
// a restart does not refetch the whole league table.
type SampleStorage interface {
	GetSample(season string) (domain.LeagueSample, error)
	SaveSample(sample domain.LeagueSample) error
}
