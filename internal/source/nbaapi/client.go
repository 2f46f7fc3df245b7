package nbaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"statcard/internal/config"
	"statcard/internal/domain"
	"statcard/internal/source"

	"github.com/sirupsen/logrus"
)

// basic per-game columns taken from leaguedashplayerstats.
var statColumns = []string{
	"GP", "MIN", "PTS", "REB", "AST", "STL", "BLK", "TOV",
	"FGA", "FTA", "FG_PCT", "FG3_PCT", "FT_PCT",
}

// Client talks to the stats.nba.com JSON API. The player index and the
// league table are fetched once per process and are read-only after
// that, requests never mutate shared state.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	season    string
	log       *logrus.Logger

	mu     sync.Mutex
	index  []source.IndexEntry
	league map[string]leagueTable
}

var _ source.StatSource = (*Client)(nil)

type leagueTable struct {
	stats map[int]map[string]float64
	teams map[int]string
	names map[int]string
}

func New(cfg config.Source, log *logrus.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout()},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		season:    cfg.Season,
		log:       log,
		league:    make(map[string]leagueTable),
	}
}

func (c *Client) FetchPlayer(ctx context.Context, name string) (domain.PlayerRecord, error) {
	index, err := c.playerIndex(ctx)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	entry, err := source.Resolve(index, name)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	c.log.WithFields(logrus.Fields{"player": entry.Name, "id": entry.ID}).Debug("resolved player")

	team, position, err := c.playerInfo(ctx, entry.ID)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	table, err := c.leagueStats(ctx, c.season)
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	line, ok := table.stats[entry.ID]
	if !ok {
		return domain.PlayerRecord{}, fmt.Errorf("%w: %s has no stats for %s",
			domain.ErrPlayerNotFound, entry.Name, c.season)
	}
	stats := make(map[string]float64, len(line))
	for k, v := range line {
		stats[k] = v
	}
	if team == "" {
		team = table.teams[entry.ID]
	}
	return domain.PlayerRecord{
		ID:       entry.ID,
		Name:     entry.Name,
		Team:     team,
		Position: position,
		Season:   c.season,
		Stats:    stats,
	}, nil
}

func (c *Client) LeagueSample(ctx context.Context, season string) (domain.LeagueSample, error) {
	table, err := c.leagueStats(ctx, season)
	if err != nil {
		return domain.LeagueSample{}, err
	}
	values := make(map[string][]float64)
	for _, line := range table.stats {
		for key, v := range line {
			values[key] = append(values[key], v)
		}
	}
	return domain.LeagueSample{
		Season:    season,
		FetchedAt: time.Now(),
		Values:    values,
	}, nil
}

func (c *Client) playerIndex(ctx context.Context) ([]source.IndexEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index != nil {
		return c.index, nil
	}
	resp, err := c.get(ctx, "commonallplayers", url.Values{
		"LeagueID":            {"00"},
		"Season":              {c.season},
		"IsOnlyCurrentSeason": {"0"},
	})
	if err != nil {
		return nil, err
	}
	set, err := resp.set("CommonAllPlayers")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	var index []source.IndexEntry
	for _, r := range set.rows() {
		id, ok := r.int("PERSON_ID")
		if !ok {
			continue
		}
		from, _ := r.int("FROM_YEAR")
		to, _ := r.int("TO_YEAR")
		index = append(index, source.IndexEntry{
			ID:       id,
			Name:     r.str("DISPLAY_FIRST_LAST"),
			FromYear: from,
			ToYear:   to,
		})
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: empty player index", domain.ErrUpstream)
	}
	c.index = index
	return index, nil
}

func (c *Client) playerInfo(ctx context.Context, id int) (team, position string, err error) {
	resp, err := c.get(ctx, "commonplayerinfo", url.Values{
		"PlayerID": {fmt.Sprint(id)},
	})
	if err != nil {
		return "", "", err
	}
	set, err := resp.set("CommonPlayerInfo")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	rows := set.rows()
	if len(rows) == 0 {
		return "", "", fmt.Errorf("%w: empty player info", domain.ErrUpstream)
	}
	return rows[0].str("TEAM_ABBREVIATION"), rows[0].str("POSITION"), nil
}

func (c *Client) leagueStats(ctx context.Context, season string) (leagueTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if table, ok := c.league[season]; ok {
		return table, nil
	}
	resp, err := c.get(ctx, "leaguedashplayerstats", url.Values{
		"LeagueID":    {"00"},
		"Season":      {season},
		"SeasonType":  {"Regular Season"},
		"PerMode":     {"PerGame"},
		"MeasureType": {"Base"},
	})
	if err != nil {
		return leagueTable{}, err
	}
	set, err := resp.set("LeagueDashPlayerStats")
	if err != nil {
		return leagueTable{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	table := leagueTable{
		stats: make(map[int]map[string]float64),
		teams: make(map[int]string),
		names: make(map[int]string),
	}
	for _, r := range set.rows() {
		id, ok := r.int("PLAYER_ID")
		if !ok {
			continue
		}
		line := make(map[string]float64, len(statColumns))
		for _, key := range statColumns {
			if v, ok := r.float(key); ok {
				line[key] = v
			}
		}
		table.stats[id] = source.Derive(line)
		table.teams[id] = r.str("TEAM_ABBREVIATION")
		table.names[id] = r.str("PLAYER_NAME")
	}
	if len(table.stats) == 0 {
		return leagueTable{}, fmt.Errorf("%w: empty league table", domain.ErrUpstream)
	}
	c.league[season] = table
	return table, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (response, error) {
	u := c.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return response{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("x-nba-stats-origin", "stats")

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return response{}, fmt.Errorf("%w: GET %s: status %d", domain.ErrUpstream, endpoint, resp.StatusCode)
	}
	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return response{}, fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, endpoint, err)
	}
	return decoded, nil
}
