package app

import (
	"fmt"
	"strings"

	"jobskills/internal/config"
	"jobskills/internal/delivery/http/handler"
	"jobskills/internal/delivery/http/middleware"
	"jobskills/internal/delivery/http/routes"
	"jobskills/internal/resume"
	"jobskills/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		// Room for a maximum-size resume plus multipart framing.
		BodyLimit: resume.MaxSize + 1<<20,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger, cfg.App.Production())
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(),
		Auth:   handler.NewAuthHandler(c.AuthUC),
		User:   handler.NewUserHandler(c.UserUC),
		Jobs:   handler.NewJobsHandler(c.JobsUC),
		WS:     ws.NewHandler(c.Hub, c.Logger),
		AuthMW: middleware.NewAuthMiddleware(c.Tokens),
	}
	registry.Register(f)

	go c.Hub.Run()

	if err := c.Scheduler.Start(); err != nil {
		c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		c.Scheduler.Stop()
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
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
