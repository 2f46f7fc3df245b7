// Package bbref implements the StatSource contract by scraping the
// basketball-reference season per-game table with a headless browser.
// One page carries every player's line, team and position, so a single
// navigation serves both the player fetch and the league sample.
package bbref

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"statcard/internal/config"
	"statcard/internal/domain"
	"statcard/internal/normalize"
	"statcard/internal/source"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

const baseURL = "https://www.basketball-reference.com"

// data-stat attribute -> our stat key.
var statAttrs = map[string]string{
	"g":         "GP",
	"mp_per_g":  "MIN",
	"pts_per_g": "PTS",
	"trb_per_g": "REB",
	"ast_per_g": "AST",
	"stl_per_g": "STL",
	"blk_per_g": "BLK",
	"tov_per_g": "TOV",
	"fga_per_g": "FGA",
	"fta_per_g": "FTA",
	"fg_pct":    "FG_PCT",
	"fg3_pct":   "FG3_PCT",
	"ft_pct":    "FT_PCT",
}

// extractJS pulls every body row of the per-game table as a
// data-stat -> text map. Repeat header rows carry the "thead" class
// and are skipped.
const extractJS = `
(() => {
	const rows = document.querySelectorAll("table#per_game_stats tbody tr:not(.thead)");
	const out = [];
	for (const row of rows) {
		const item = {};
		for (const cell of row.querySelectorAll("td, th")) {
			const key = cell.getAttribute("data-stat");
			if (key) {
				item[key] = cell.textContent.trim();
			}
		}
		out.push(item);
	}
	return out;
})()
`

type Scraper struct {
	season    string
	userAgent string
	timeout   time.Duration
	log       *logrus.Logger

	mu   sync.Mutex
	rows map[string][]row
}

var _ source.StatSource = (*Scraper)(nil)

type row struct {
	name     string
	team     string
	position string
	stats    map[string]float64
}

func New(cfg config.Source, log *logrus.Logger) *Scraper {
	return &Scraper{
		season:    cfg.Season,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout(),
		log:       log,
		rows:      make(map[string][]row),
	}
}

func (s *Scraper) FetchPlayer(ctx context.Context, name string) (domain.PlayerRecord, error) {
	rows, err := s.seasonRows(ctx, s.season)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	// Traded players appear once per team plus a combined row, which
	// basketball-reference lists first. Every entry keeps ToYear zero
	// so Resolve falls back to first-listed on ties.
	index := make([]source.IndexEntry, len(rows))
	for i, r := range rows {
		index[i] = source.IndexEntry{ID: i, Name: r.name}
	}
	entry, err := source.Resolve(index, name)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	r := rows[entry.ID]
	stats := make(map[string]float64, len(r.stats))
	for k, v := range r.stats {
		stats[k] = v
	}
	return domain.PlayerRecord{
		ID:       entry.ID,
		Name:     r.name,
		Team:     r.team,
		Position: r.position,
		Season:   s.season,
		Stats:    stats,
	}, nil
}

func (s *Scraper) LeagueSample(ctx context.Context, season string) (domain.LeagueSample, error) {
	rows, err := s.seasonRows(ctx, season)
	if err != nil {
		return domain.LeagueSample{}, err
	}
	values := make(map[string][]float64)
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		key := normalize.Name(r.name)
		if seen[key] {
			continue
		}
		seen[key] = true
		for stat, v := range r.stats {
			values[stat] = append(values[stat], v)
		}
	}
	return domain.LeagueSample{
		Season:    season,
		FetchedAt: time.Now(),
		Values:    values,
	}, nil
}

func (s *Scraper) seasonRows(ctx context.Context, season string) ([]row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows, ok := s.rows[season]; ok {
		return rows, nil
	}

	url, err := seasonURL(season)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var raw []map[string]string
	err = chromedp.Run(ctx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"User-Agent": s.userAgent}),
		chromedp.Navigate(url),
		chromedp.WaitVisible("table#per_game_stats", chromedp.ByQuery),
		chromedp.Evaluate(extractJS, &raw),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scrape %s: %v", domain.ErrUpstream, url, err)
	}
	rows := convertRows(raw)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty per-game table at %s", domain.ErrUpstream, url)
	}
	s.log.WithFields(logrus.Fields{"season": season, "rows": len(rows)}).Debug("scraped league table")
	s.rows[season] = rows
	return rows, nil
}

func convertRows(raw []map[string]string) []row {
	rows := make([]row, 0, len(raw))
	for _, item := range raw {
		name := item["player"]
		if name == "" || name == "Player" {
			continue
		}
		team := item["team_name_abbr"]
		if team == "" {
			team = item["team_id"]
		}
		r := row{
			name:     name,
			team:     team,
			position: item["pos"],
			stats:    make(map[string]float64, len(statAttrs)),
		}
		for attr, key := range statAttrs {
			if v, err := strconv.ParseFloat(item[attr], 64); err == nil {
				r.stats[key] = v
			}
		}
		rows = append(rows, row{r.name, r.team, r.position, source.Derive(r.stats)})
	}
	return rows
}

// seasonURL maps "2023-24" to the per-game page for the season ending
// in 2024.
func seasonURL(season string) (string, error) {
	if len(season) < 4 {
		return "", fmt.Errorf("%w: bad season %q", domain.ErrUpstream, season)
	}
	start, err := strconv.Atoi(season[:4])
	if err != nil {
		return "", fmt.Errorf("%w: bad season %q", domain.ErrUpstream, season)
	}
	return fmt.Sprintf("%s/leagues/NBA_%d_per_game.html", baseURL, start+1), nil
}
