package service

import (
	"context"
	"testing"
	"time"

	"statcard/internal/card"
	"statcard/internal/config"
	"statcard/internal/domain"
	"statcard/internal/normalize"
	"statcard/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	players     map[string]domain.PlayerRecord
	sample      domain.LeagueSample
	sampleCalls int
}

func (s *stubSource) FetchPlayer(_ context.Context, name string) (domain.PlayerRecord, error) {
	p, ok := s.players[normalize.Name(name)]
	if !ok {
		return domain.PlayerRecord{}, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (s *stubSource) LeagueSample(_ context.Context, season string) (domain.LeagueSample, error) {
	s.sampleCalls++
	return s.sample, nil
}

type stubStorage struct {
	saved   []domain.LeagueSample
	stored  map[string]domain.LeagueSample
	getErr  error
	saveErr error
}

func (s *stubStorage) GetSample(season string) (domain.LeagueSample, error) {
	if s.getErr != nil {
		return domain.LeagueSample{}, s.getErr
	}
	sample, ok := s.stored[season]
	if !ok {
		return domain.LeagueSample{}, storage.ErrNoSnapshot
	}
	return sample, nil
}

func (s *stubStorage) SaveSample(sample domain.LeagueSample) error {
	s.saved = append(s.saved, sample)
	return s.saveErr
}

func testConfig() config.Card {
	return config.Card{
		Colors: config.Colors{
			Background:        "#1E1E1E",
			Text:              "#FFFFFF",
			GradientPoor:      "#FF4B4B",
			GradientNeutral:   "#808080",
			GradientExcellent: "#4B9EFF",
		},
		Stats: []config.Stat{
			{Key: "PTS", Label: "Points", Category: "basic"},
			{Key: "REB", Label: "Rebounds", Category: "basic"},
			{Key: "TS_PCT", Label: "TS%", Category: "advanced", Percent: true},
		},
	}
}

func newTestService(t *testing.T, src *stubSource, store *stubStorage) *CardService {
	t.Helper()
	cfg := testConfig()
	renderer, err := card.NewRenderer(cfg, "Data via stats.nba.com")
	require.NoError(t, err)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := New(src, store, renderer, cfg.Definitions(), log)
	svc.now = func() time.Time {
		return time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func lebron() domain.PlayerRecord {
	return domain.PlayerRecord{
		ID:       2544,
		Name:     "LeBron James",
		Team:     "LAL",
		Position: "Forward",
		Season:   "2023-24",
		Stats: map[string]float64{
			"PTS":     25.7,
			"REB":     7.3,
			"TS_PCT":  0.63,
			"UNKNOWN": 1.0,
		},
	}
}

func leagueSample() domain.LeagueSample {
	return domain.LeagueSample{
		Season: "2023-24",
		Values: map[string][]float64{
			"PTS":    {5, 10, 15, 20, 25.7},
			"REB":    {2, 4, 6, 7.3, 10},
			"TS_PCT": {0.5, 0.55, 0.6, 0.63},
		},
	}
}

func TestGenerate(t *testing.T) {
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": lebron()},
		sample:  leagueSample(),
	}
	store := &stubStorage{}
	svc := newTestService(t, src, store)

	c, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	require.Equal(t, "lebron_james_stats_card.png", c.Filename)
	require.NotEmpty(t, c.PNG)
	require.Len(t, store.saved, 1, "fetched sample must be snapshotted")
}

func TestGenerateDeterministic(t *testing.T) {
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": lebron()},
		sample:  leagueSample(),
	}
	svc := newTestService(t, src, &stubStorage{})

	first, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	require.Equal(t, first.PNG, second.PNG)
}

func TestGenerateUnknownPlayer(t *testing.T) {
	src := &stubSource{players: map[string]domain.PlayerRecord{}}
	store := &stubStorage{}
	svc := newTestService(t, src, store)

	_, err := svc.Generate(context.Background(), "Zzyzx Nobody")
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	require.Zero(t, src.sampleCalls, "no sample fetch after a failed resolve")
	require.Empty(t, store.saved)
}

func TestGenerateMissingStat(t *testing.T) {
	p := lebron()
	delete(p.Stats, "TS_PCT")
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": p},
		sample:  leagueSample(),
	}
	svc := newTestService(t, src, &stubStorage{})

	c, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err, "a missing stat must not abort the card")
	require.NotEmpty(t, c.PNG)
}

func TestSampleSnapshotPreferred(t *testing.T) {
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": lebron()},
		sample:  leagueSample(),
	}
	store := &stubStorage{
		stored: map[string]domain.LeagueSample{"2023-24": leagueSample()},
	}
	svc := newTestService(t, src, store)

	_, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	require.Zero(t, src.sampleCalls, "stored snapshot must short-circuit the source")
}

func TestSampleMemoryCache(t *testing.T) {
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": lebron()},
		sample:  leagueSample(),
	}
	svc := newTestService(t, src, &stubStorage{})

	_, err := svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "LeBron James")
	require.NoError(t, err)
	require.Equal(t, 1, src.sampleCalls)
}

func TestFilterKnownKeys(t *testing.T) {
	src := &stubSource{
		players: map[string]domain.PlayerRecord{"lebron james": lebron()},
		sample:  leagueSample(),
	}
	svc := newTestService(t, src, &stubStorage{})

	stats := filterKnown(lebron().Stats, svc.known)
	require.NotContains(t, stats, "UNKNOWN")
	require.Contains(t, stats, "PTS")
}

func TestSlug(t *testing.T) {
	require.Equal(t, "lebron_james", Slug("LeBron James"))
	require.Equal(t, "luka_doncic", Slug("Luka Dončić"))
}
