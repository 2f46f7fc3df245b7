package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"statcard/internal/domain"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_api_token"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Debug        bool   `toml:"debug_mode"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	CardsDir     string `toml:"cards_dir"`
}

type Source struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Season         string `toml:"season"`
	CacheFile      string `toml:"cache_file"`
	Attribution    string `toml:"attribution"`
}

func (s Source) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type Colors struct {
	Background        string `toml:"background"`
	Text              string `toml:"text"`
	GradientPoor      string `toml:"gradient_poor"`
	GradientNeutral   string `toml:"gradient_neutral"`
	GradientExcellent string `toml:"gradient_excellent"`
}

type Stat struct {
	Key           string `toml:"key"`
	Label         string `toml:"label"`
	Category      string `toml:"category"`
	Format        string `toml:"format"`
	Percent       bool   `toml:"percent"`
	LowerIsBetter bool   `toml:"lower_is_better"`
}

type Card struct {
	Colors Colors `toml:"colors"`
	Stats  []Stat `toml:"stats"`
}

// Definitions converts the card config into the immutable definition
// table shared by the engine and the renderer.
func (c Card) Definitions() []domain.StatDefinition {
	defs := make([]domain.StatDefinition, 0, len(c.Stats))
	for _, s := range c.Stats {
		defs = append(defs, domain.StatDefinition{
			Key:           s.Key,
			Label:         s.Label,
			Category:      domain.StatCategory(s.Category),
			Format:        s.Format,
			Percent:       s.Percent,
			LowerIsBetter: s.LowerIsBetter,
		})
	}
	return defs
}

type Config struct {
	Server Server
	TgBot  TgBot
	Source Source
	Card   Card
}

type serverFile struct {
	Server Server `toml:"server"`
	TgBot  TgBot  `toml:"tg_bot"`
	Source Source `toml:"source"`
}

func New(dir string) (Config, error) {
	var sf serverFile
	_, err := toml.DecodeFile(filepath.Join(dir, "server.toml"), &sf)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		sf.TgBot.TelegramApiToken = token
	}
	if host := os.Getenv("STATCARD_HOST"); host != "" {
		sf.Server.Host = host
	}
	if port := os.Getenv("STATCARD_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err == nil {
			sf.Server.Port = p
		}
	}

	var cardCfg Card
	_, err = toml.DecodeFile(filepath.Join(dir, "card.toml"), &cardCfg)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: sf.Server,
		TgBot:  sf.TgBot,
		Source: sf.Source,
		Card:   cardCfg,
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.CardsDir == "" {
		c.Server.CardsDir = "cards"
	}
	if c.Source.Provider == "" {
		c.Source.Provider = "nbaapi"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://stats.nba.com/stats"
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "statcard/1.0"
	}
	if c.Source.TimeoutSeconds == 0 {
		c.Source.TimeoutSeconds = 60
	}
	if c.Source.Season == "" {
		c.Source.Season = "2023-24"
	}
	if c.Source.CacheFile == "" {
		c.Source.CacheFile = "samples.sqlite"
	}
	if c.Source.Attribution == "" {
		switch c.Source.Provider {
		case "bbref":
			c.Source.Attribution = "Data via basketball-reference.com"
		default:
			c.Source.Attribution = "Data via stats.nba.com"
		}
	}
}
