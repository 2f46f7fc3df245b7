package web

import (
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	embedded "statcard"
	"statcard/internal/config"
	"statcard/internal/domain"
	"statcard/internal/service"
	"statcard/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	cards *service.CardService
	app   *fiber.App
	cfg   config.Server
	log   *logrus.Logger
}

func New(cards *service.CardService, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		cards: cards,
		cfg:   cfg,
		log:   log,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Get(webpath.Home, server.handleIndexGet)
	app.Post(webpath.Home, server.handleIndexPost)
	app.Get(webpath.Card, server.handleCardFile)
	app.Get(webpath.ApiCard, server.handleApiCard)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	if err := os.MkdirAll(s.cfg.CardsDir, 0o755); err != nil {
		return err
	}
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

// Listener serves on a prepared listener, used by the e2e tests to bind
// an ephemeral port.
func (s *Server) Listener(ln net.Listener) error {
	if err := os.MkdirAll(s.cfg.CardsDir, 0o755); err != nil {
		return err
	}
	return s.app.Listener(ln)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleIndexGet(ctx *fiber.Ctx) error {
	return ctx.Render("index", newData("NBA Stat Card"), "layouts/main")
}

func (s *Server) handleIndexPost(ctx *fiber.Ctx) error {
	req, err := parseCardForm(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.Render("index", newData("NBA Stat Card").WithErrors(err), "layouts/main")
	}
	log := s.requestLog(ctx).WithField("player", req.player)

	card, err := s.cards.Generate(ctx.Context(), req.player)
	if err != nil {
		log.WithError(err).Error("card generation failed")
		ctx.Status(status(err))
		return ctx.Render("index", newData("NBA Stat Card").WithErrors(err), "layouts/main")
	}
	path := filepath.Join(s.cfg.CardsDir, card.Filename)
	if err := os.WriteFile(path, card.PNG, 0o644); err != nil {
		log.WithError(err).Error("card write failed")
		ctx.Status(fiber.StatusInternalServerError)
		return ctx.Render("index", newData("NBA Stat Card").WithErrors(err), "layouts/main")
	}
	log.Info("card generated")
	return ctx.Render("index",
		newData("NBA Stat Card").With("Filename", card.Filename),
		"layouts/main")
}

func (s *Server) handleCardFile(ctx *fiber.Ctx) error {
	filename := filepath.Base(ctx.Params("filename"))
	return ctx.SendFile(filepath.Join(s.cfg.CardsDir, filename))
}

func (s *Server) handleApiCard(ctx *fiber.Ctx) error {
	req, err := parseCardQuery(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	log := s.requestLog(ctx).WithField("player", req.player)

	card, err := s.cards.Generate(ctx.Context(), req.player)
	if err != nil {
		log.WithError(err).Error("card generation failed")
		return fiber.NewError(status(err), err.Error())
	}
	log.Info("card generated")
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(card.PNG)
}

// status maps the error taxonomy onto HTTP: unknown player is the
// caller's problem, upstream trouble is a bad gateway, anything else is
// on us.
func status(err error) int {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) requestLog(ctx *fiber.Ctx) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"path":       ctx.Path(),
	})
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
