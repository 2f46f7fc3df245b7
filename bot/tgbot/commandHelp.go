package tgbot

import (
	"context"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, chatID int64, _ string) (tgbotapi.Chattable, error) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	// Aliases map several names to the same command, list it once.
	seen := make(map[Command]bool, len(c.commands))
	var buffer strings.Builder
	for _, name := range names {
		cmd := c.commands[name]
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		buffer.WriteString(cmd.Help())
		buffer.WriteString("\n")
	}
	return tgbotapi.NewMessage(chatID, buffer.String()), nil
}

func (c *HelpCommand) Help() string {
	return `/help - list available commands`
}

func (c *HelpCommand) Permission() mapset.Set[Role] {
	return mapset.NewSet[Role](RoleUser)
}
