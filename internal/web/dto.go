package web

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

type cardRequest struct {
	player string
}

var ErrEmptyPlayerName = errors.New("player name must not be empty")
var ErrBadPlayerName = errors.New("player name may only contain letters, spaces, apostrophes, dots and dashes")
var ErrPlayerNameTooLong = errors.New("player name is too long")

var playerNameRegexp = regexp.MustCompile(`^[\p{L}'.\- ]+$`)

func parseCardForm(ctx *fiber.Ctx) (cardRequest, error) {
	return newCardRequest(ctx.FormValue("player_name", ""))
}

func parseCardQuery(ctx *fiber.Ctx) (cardRequest, error) {
	return newCardRequest(ctx.Query("player", ""))
}

func newCardRequest(player string) (cardRequest, error) {
	if err := validatePlayerName(player); err != nil {
		return cardRequest{}, err
	}
	return cardRequest{player: player}, nil
}

func validatePlayerName(name string) error {
	if name == "" {
		return ErrEmptyPlayerName
	}
	if len(name) > 64 {
		return ErrPlayerNameTooLong
	}
	if !playerNameRegexp.MatchString(name) {
		return ErrBadPlayerName
	}
	return nil
}
