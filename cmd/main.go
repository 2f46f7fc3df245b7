package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"statcard/bot/tgbot"
	"statcard/internal/card"
	"statcard/internal/config"
	"statcard/internal/logger"
	"statcard/internal/service"
	"statcard/internal/source"
	"statcard/internal/source/bbref"
	"statcard/internal/source/nbaapi"
	"statcard/internal/storage/sqlite"
	"statcard/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		configDir = flag.String("config", "configs", "path to the config directory")
		player    = flag.String("player", "LeBron James", "player name to generate a card for")
		out       = flag.String("out", "", "output file (default <cards_dir>/<player>_stats_card.png)")
		serve     = flag.Bool("serve", false, "start the web server instead of a one-shot generation")
	)
	flag.Parse()

	cfg, err := config.New(*configDir)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	renderer, err := card.NewRenderer(cfg.Card, cfg.Source.Attribution)
	if err != nil {
		return err
	}
	store, err := sqlite.New(cfg.Source.CacheFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	var src source.StatSource
	switch cfg.Source.Provider {
	case "bbref":
		src = bbref.New(cfg.Source, log)
	default:
		src = nbaapi.New(cfg.Source, log)
	}

	cards := service.New(src, store, renderer, cfg.Card.Definitions(), log)

	if *serve {
		server, err := web.New(cards, cfg.Server, log)
		if err != nil {
			return err
		}
		if cfg.Server.TgBotEnabled {
			bot, err := tgbot.New(cfg.TgBot, cards, log)
			if err != nil {
				return err
			}
			go bot.Run()
			defer bot.Stop()
		}
		log.WithField("port", cfg.Server.Port).Info("serving")
		return server.Serve()
	}

	c, err := cards.Generate(context.Background(), *player)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = filepath.Join(cfg.Server.CardsDir, c.Filename)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, c.PNG, 0o644); err != nil {
		return err
	}
	fmt.Printf("Stats card saved as: %s\n", path)
	return nil
}
