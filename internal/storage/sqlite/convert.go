package sqlite

import (
	"statcard/gen/model"
	"statcard/internal/domain"
)

func convertSample(snapshot model.Snapshots, samples []model.Samples) domain.LeagueSample {
	values := make(map[string][]float64)
	for _, s := range samples {
		values[s.Stat] = append(values[s.Stat], s.Value)
	}
	return domain.LeagueSample{
		Season:    snapshot.Season,
		FetchedAt: snapshot.FetchedAt,
		Values:    values,
	}
}

func convertSnapshot(sample domain.LeagueSample) model.Snapshots {
	return model.Snapshots{
		Season:    sample.Season,
		FetchedAt: sample.FetchedAt,
	}
}

// convertValues flattens the per-stat value slices. The value owner is
// not tracked in a sample, so the slice index stands in as player_id to
// satisfy the primary key.
func convertValues(sample domain.LeagueSample) []model.Samples {
	var rows []model.Samples
	for stat, values := range sample.Values {
		for i, v := range values {
			rows = append(rows, model.Samples{
				Season:   sample.Season,
				Stat:     stat,
				PlayerID: int32(i),
				Value:    v,
			})
		}
	}
	return rows
}
