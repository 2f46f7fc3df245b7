package percentile

import (
	"math"

	"statcard/internal/domain"
)

// Unranked is returned when no reference distribution exists for a
// stat. The renderer omits the color bar for such rows.
const Unranked = -1

type Engine struct {
	defs map[string]domain.StatDefinition
}

func New(defs []domain.StatDefinition) *Engine {
	m := make(map[string]domain.StatDefinition, len(defs))
	for _, d := range defs {
		m[d.Key] = d
	}
	return &Engine{defs: m}
}

// Rank computes the percentile of value within sample: the share of the
// sample at or below value, scaled to [0,100]. For lower-is-better
// stats the direction is inverted so that 100 always means "best".
func (e *Engine) Rank(key string, value float64, sample []float64) int {
	if len(sample) == 0 {
		return Unranked
	}
	def, ok := e.defs[key]
	if !ok {
		return Unranked
	}
	count := 0
	for _, x := range sample {
		if def.LowerIsBetter {
			if x >= value {
				count++
			}
		} else {
			if x <= value {
				count++
			}
		}
	}
	p := int(math.Round(float64(count) / float64(len(sample)) * 100))
	return clamp(p)
}

func clamp(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
