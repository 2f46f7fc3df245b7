package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Role string

const (
	RoleUser Role = "user"
)

// Command is one bot command. Run builds the reply for a chat,
// Permission limits who may invoke it.
type Command interface {
	Run(ctx context.Context, chatID int64, args string) (tgbotapi.Chattable, error)
	Help() string
	Permission() mapset.Set[Role]
}
