package tgbot

import (
	"context"
	"fmt"

	"statcard/internal/config"
	"statcard/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	commands map[string]Command
	log      *logrus.Logger

	// cancel func to stop the bot
	cancel func()
}

func New(cfg config.TgBot, cards *service.CardService, log *logrus.Logger) (Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return Bot{}, fmt.Errorf("telegram api token: %w", err)
	}
	_, err = bot.GetMe()
	if err != nil {
		return Bot{}, err
	}

	commands := map[string]Command{
		"card": &CardCommand{cards: cards},
	}
	commands["help"] = &HelpCommand{commands: commands}
	commands["start"] = commands["help"]

	return Bot{
		bot:      bot,
		commands: commands,
		log:      log,
	}, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handle(ctx, update.Message)
		}
	}
}

func (b *Bot) handle(ctx context.Context, msg *tgbotapi.Message) {
	cmd, ok := b.commands[msg.Command()]
	if !ok {
		return
	}
	if !cmd.Permission().Contains(RoleUser) {
		return
	}
	reply, err := cmd.Run(ctx, msg.Chat.ID, msg.CommandArguments())
	if err != nil {
		b.log.WithError(err).WithField("command", msg.Command()).Error("bot command failed")
		reply = tgbotapi.NewMessage(msg.Chat.ID, "Something went wrong, sorry.")
	}
	if _, err := b.bot.Send(reply); err != nil {
		b.log.WithError(err).Error("bot send failed")
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.bot.StopReceivingUpdates()
}
