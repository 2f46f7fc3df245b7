package domain

import (
	"fmt"
	"time"
)

type StatCategory string

const (
	CategoryBasic    StatCategory = "basic"
	CategoryAdvanced StatCategory = "advanced"
)

// StatDefinition describes one stat row of the card. The set of
// definitions is fixed at startup and shared read-only.
type StatDefinition struct {
	Key           string
	Label         string
	Category      StatCategory
	Format        string
	Percent       bool
	LowerIsBetter bool
}

func (d StatDefinition) FormatValue(v float64) string {
	if d.Percent {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	format := d.Format
	if format == "" {
		format = "%.1f"
	}
	return fmt.Sprintf(format, v)
}

// PlayerRecord holds one player's current season line. Stats keys are
// limited to the configured StatDefinition keys.
type PlayerRecord struct {
	ID       int
	Name     string
	Team     string
	Position string
	Season   string
	Stats    map[string]float64
}

// LeagueSample is the league-wide reference distribution for a season,
// one value slice per stat key.
type LeagueSample struct {
	Season    string
	FetchedAt time.Time
	Values    map[string][]float64
}

// PercentileResult is one ranked stat of a player. Ranked is false when
// no reference distribution was available, Missing when the raw stat
// itself is absent for this player.
type PercentileResult struct {
	Key        string
	Value      float64
	Percentile int
	Ranked     bool
	Missing    bool
}

// CardModel is everything the renderer needs. GeneratedAt is set by the
// caller so rendering the same model twice yields identical bytes.
type CardModel struct {
	Player      PlayerRecord
	Rows        []PercentileResult
	GeneratedAt time.Time
}

// Card is the finished artifact.
type Card struct {
	Filename string
	PNG      []byte
}
