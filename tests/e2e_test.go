package tests

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"statcard/internal/card"
	"statcard/internal/config"
	"statcard/internal/service"
	"statcard/internal/source/nbaapi"
	"statcard/internal/storage/sqlite"
	"statcard/internal/web"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

func TestE2E(t *testing.T) {
	suite.Run(t, &E2ESuite{})
}

type E2ESuite struct {
	suite.Suite

	api      *httptest.Server
	server   *web.Server
	baseURL  string
	workDir  string
	shutdown func()
}

func (s *E2ESuite) SetupSuite() {
	s.api = httptest.NewServer(fakeStatsAPI())

	workDir, err := os.MkdirTemp("", "statcard-e2e")
	s.Require().NoError(err)
	s.workDir = workDir

	cardCfg := cardConfig()
	serverCfg := config.Server{
		Host:     "127.0.0.1",
		CardsDir: filepath.Join(workDir, "cards"),
	}
	sourceCfg := config.Source{
		BaseURL:        s.api.URL,
		UserAgent:      "statcard-e2e",
		TimeoutSeconds: 5,
		Season:         "2023-24",
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	renderer, err := card.NewRenderer(cardCfg, "Data via stats.nba.com")
	s.Require().NoError(err)
	store, err := sqlite.New(filepath.Join(workDir, "samples.sqlite"))
	s.Require().NoError(err)

	cards := service.New(nbaapi.New(sourceCfg, log), store, renderer, cardCfg.Definitions(), log)
	server, err := web.New(cards, serverCfg, log)
	s.Require().NoError(err)
	s.server = server

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.baseURL = "http://" + ln.Addr().String()
	go func() {
		_ = server.Listener(ln)
	}()
	s.shutdown = func() {
		_ = server.Shutdown()
		_ = store.Close()
		s.api.Close()
		_ = os.RemoveAll(workDir)
	}

	s.Require().NoError(waitForStartup(s.baseURL, 5*time.Second))
}

func (s *E2ESuite) TearDownSuite() {
	s.shutdown()
}

func waitForStartup(baseURL string, duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 10)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, err := http.Get(baseURL + "/")
			if err == nil {
				_ = r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *E2ESuite) TestIndexPage() {
	resp, err := http.Get(s.baseURL + "/")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), `name="player_name"`)
}

func (s *E2ESuite) TestApiCard() {
	resp, err := http.Get(s.baseURL + "/api/card?player=" + url.QueryEscape("LeBron James"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	cfg, err := png.DecodeConfig(bytes.NewReader(body))
	s.Require().NoError(err)
	s.Equal(800, cfg.Width)
	s.Equal(1000, cfg.Height)
}

func (s *E2ESuite) TestApiCardNotFound() {
	resp, err := http.Get(s.baseURL + "/api/card?player=" + url.QueryEscape("Zzyzx Nobody"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ESuite) TestApiCardBadRequest() {
	resp, err := http.Get(s.baseURL + "/api/card")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ESuite) TestFormFlow() {
	resp, err := http.PostForm(s.baseURL+"/", url.Values{"player_name": {"LeBron James"}})
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "/cards/lebron_james_stats_card.png")

	img, err := http.Get(s.baseURL + "/cards/lebron_james_stats_card.png")
	s.Require().NoError(err)
	defer img.Body.Close()
	s.Equal(http.StatusOK, img.StatusCode)
}

func cardConfig() config.Card {
	return config.Card{
		Colors: config.Colors{
			Background:        "#1E1E1E",
			Text:              "#FFFFFF",
			GradientPoor:      "#FF4B4B",
			GradientNeutral:   "#808080",
			GradientExcellent: "#4B9EFF",
		},
		Stats: []config.Stat{
			{Key: "GP", Label: "Games Played", Category: "basic", Format: "%.0f"},
			{Key: "PTS", Label: "Points", Category: "basic"},
			{Key: "REB", Label: "Rebounds", Category: "basic"},
			{Key: "AST", Label: "Assists", Category: "basic"},
			{Key: "TOV", Label: "Turnovers", Category: "basic", LowerIsBetter: true},
			{Key: "FG_PCT", Label: "FG%", Category: "basic", Percent: true},
			{Key: "PTS36", Label: "Points / 36", Category: "advanced"},
			{Key: "TS_PCT", Label: "TS%", Category: "advanced", Percent: true},
		},
	}
}

func fakeStatsAPI() http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, body string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	}
	mux.HandleFunc("/commonallplayers", func(w http.ResponseWriter, r *http.Request) {
		write(w, `{"resultSets": [{
			"name": "CommonAllPlayers",
			"headers": ["PERSON_ID", "DISPLAY_FIRST_LAST", "FROM_YEAR", "TO_YEAR"],
			"rowSet": [
				[2544, "LeBron James", "2003", "2024"],
				[203999, "Nikola Jokić", "2015", "2024"]
			]
		}]}`)
	})
	mux.HandleFunc("/commonplayerinfo", func(w http.ResponseWriter, r *http.Request) {
		write(w, `{"resultSets": [{
			"name": "CommonPlayerInfo",
			"headers": ["PERSON_ID", "TEAM_ABBREVIATION", "POSITION"],
			"rowSet": [[2544, "LAL", "Forward"]]
		}]}`)
	})
	mux.HandleFunc("/leaguedashplayerstats", func(w http.ResponseWriter, r *http.Request) {
		write(w, `{"resultSets": [{
			"name": "LeagueDashPlayerStats",
			"headers": ["PLAYER_ID", "PLAYER_NAME", "TEAM_ABBREVIATION",
				"GP", "MIN", "PTS", "REB", "AST", "STL", "BLK", "TOV",
				"FGA", "FTA", "FG_PCT", "FG3_PCT", "FT_PCT"],
			"rowSet": [
				[2544, "LeBron James", "LAL", 71, 35.3, 25.7, 7.3, 8.3, 1.3, 0.5, 3.5, 17.9, 5.6, 0.54, 0.41, 0.75],
				[203999, "Nikola Jokić", "DEN", 79, 34.6, 26.4, 12.4, 9.0, 1.4, 0.9, 3.0, 18.0, 5.0, 0.583, 0.359, 0.817]
			]
		}]}`)
	})
	return mux
}
