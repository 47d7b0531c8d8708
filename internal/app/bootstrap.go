package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"talent-sonar/internal/config"
	"talent-sonar/internal/delivery/http/handler"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/delivery/http/routes"
	"talent-sonar/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(c.DB, c.Cache),
		Auth:       handler.NewAuthHandler(c.JWT, c.Config.JWT),
		Jobs:       handler.NewJobHandler(c.Jobs),
		Candidates: handler.NewCandidateHandler(c.Candidates),
		Ranking:    handler.NewRankingHandler(c.Ranking),
		Feedback:   handler.NewFeedbackHandler(c.Feedback),
		Analysis:   handler.NewAnalysisHandler(c.Analysis),
		WS:         ws.NewHandler(c.Hub, c.Logger),

		AuthMiddleware: middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	app := New(c)
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
