package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"statcard/internal/cache/mem"
	"statcard/internal/card"
	"statcard/internal/domain"
	"statcard/internal/normalize"
	"statcard/internal/percentile"
	"statcard/internal/source"
	"statcard/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// CardService runs the whole pipeline for one player: fetch, rank,
// draw. Requests are independent, the only shared state is the
// read-only definition table and the sample caches.
type CardService struct {
	source   source.StatSource
	samples  storage.SampleStorage
	cache    *mem.Cache
	engine   *percentile.Engine
	renderer *card.Renderer
	defs     []domain.StatDefinition
	known    mapset.Set[string]
	log      *logrus.Logger

	now func() time.Time
}

func New(
	src source.StatSource,
	samples storage.SampleStorage,
	renderer *card.Renderer,
	defs []domain.StatDefinition,
	log *logrus.Logger,
) *CardService {
	known := mapset.NewSet[string]()
	for _, d := range defs {
		known.Add(d.Key)
	}
	return &CardService{
		source:   src,
		samples:  samples,
		cache:    mem.New(),
		engine:   percentile.New(defs),
		renderer: renderer,
		defs:     defs,
		known:    known,
		log:      log,
		now:      time.Now,
	}
}

// Generate produces the finished card for a player name. Fetch and
// render failures abort the request, per-stat gaps degrade to N/A rows.
func (s *CardService) Generate(ctx context.Context, name string) (domain.Card, error) {
	player, err := s.source.FetchPlayer(ctx, name)
	if err != nil {
		return domain.Card{}, err
	}
	player.Stats = filterKnown(player.Stats, s.known)
	s.log.WithFields(logrus.Fields{
		"player": player.Name,
		"team":   player.Team,
		"season": player.Season,
	}).Info("fetched player")

	sample, err := s.sample(ctx, player.Season)
	if err != nil {
		return domain.Card{}, err
	}

	rows := make([]domain.PercentileResult, 0, len(s.defs))
	for _, def := range s.defs {
		value, ok := player.Stats[def.Key]
		if !ok {
			rows = append(rows, domain.PercentileResult{Key: def.Key, Missing: true})
			continue
		}
		p := s.engine.Rank(def.Key, value, sample.Values[def.Key])
		rows = append(rows, domain.PercentileResult{
			Key:        def.Key,
			Value:      value,
			Percentile: p,
			Ranked:     p != percentile.Unranked,
		})
	}

	model := domain.CardModel{
		Player:      player,
		Rows:        rows,
		GeneratedAt: s.now(),
	}
	png, err := s.renderer.Render(model)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		Filename: Slug(player.Name) + "_stats_card.png",
		PNG:      png,
	}, nil
}

// sample resolves the reference distribution for a season: memory
// first, then the sqlite snapshot, then the source with write-through.
func (s *CardService) sample(ctx context.Context, season string) (domain.LeagueSample, error) {
	if sample, ok := s.cache.Get(season); ok {
		return sample, nil
	}
	sample, err := s.samples.GetSample(season)
	if err == nil {
		s.cache.Put(sample)
		return sample, nil
	}
	if !errors.Is(err, storage.ErrNoSnapshot) {
		s.log.WithError(err).Warn("sample snapshot read failed")
	}

	sample, err = s.source.LeagueSample(ctx, season)
	if err != nil {
		return domain.LeagueSample{}, err
	}
	if err := s.samples.SaveSample(sample); err != nil {
		// a broken snapshot only costs a refetch on restart
		s.log.WithError(err).Warn("sample snapshot write failed")
	}
	s.cache.Put(sample)
	return sample, nil
}

func filterKnown(stats map[string]float64, known mapset.Set[string]) map[string]float64 {
	filtered := make(map[string]float64, len(stats))
	for k, v := range stats {
		if known.Contains(k) {
			filtered[k] = v
		}
	}
	return filtered
}

// Slug mirrors the card filename scheme: folded name, spaces to
// underscores.
func Slug(name string) string {
	return strings.ReplaceAll(normalize.Name(name), " ", "_")
}
