package tgbot

import (
	"context"
	"errors"
	"fmt"

	"statcard/internal/domain"
	"statcard/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CardCommand struct {
	cards *service.CardService
}

func (c *CardCommand) Run(ctx context.Context, chatID int64, args string) (tgbotapi.Chattable, error) {
	if args == "" {
		return tgbotapi.NewMessage(chatID, "Usage: /card <player name>"), nil
	}
	card, err := c.cards.Generate(ctx, args)
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return tgbotapi.NewMessage(chatID, fmt.Sprintf("No player named %q found.", args)), nil
	case errors.Is(err, domain.ErrUpstream):
		return tgbotapi.NewMessage(chatID, "Stats source is unavailable right now, try again later."), nil
	case err != nil:
		return nil, err
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  card.Filename,
		Bytes: card.PNG,
	})
	return photo, nil
}

func (c *CardCommand) Help() string {
	return `/card <player name> - generate a stats card`
}

func (c *CardCommand) Permission() mapset.Set[Role] {
	return mapset.NewSet[Role](RoleUser)
}
