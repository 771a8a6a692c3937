package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobskills/internal/config"
	"jobskills/internal/infrastructure/cache"
	"jobskills/internal/infrastructure/feed"
	"jobskills/internal/infrastructure/mail"
	fstore "jobskills/internal/infrastructure/persistence/firestore"
	"jobskills/internal/notifier"
	"jobskills/internal/pkg/googleauth"
	"jobskills/internal/pkg/jwt"
	authuc "jobskills/internal/usecase/auth"
	jobsuc "jobskills/internal/usecase/jobs"
	useruc "jobskills/internal/usecase/user"
	"jobskills/internal/ws"
)

// Container wires every long-lived dependency once at startup; handlers and
// the scheduler borrow from it and never construct infrastructure themselves.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store *fstore.Client
	Cache *cache.Redis

	Users  *fstore.UserRepository
	Feed   *feed.Client
	Mailer mail.Sender
	Tokens jwt.Service

	AuthUC *authuc.Service
	UserUC *useruc.Service
	JobsUC *jobsuc.Service

	Hub       *ws.Hub
	Scheduler *notifier.Scheduler
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := fstore.Connect(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	users := fstore.NewUserRepository(store)
	feedClient := feed.NewClient(cfg.Feed, redis, logger)

	var mailer mail.Sender
	if cfg.Mail.Configured() {
		smtp, err := mail.NewSMTPMailer(cfg.Mail)
		if err != nil {
			store.Close()
			return nil, err
		}
		mailer = smtp
	} else {
		logger.Printf("[Mail] SMTP not configured, falling back to log-only delivery")
		mailer = mail.LogMailer{Logger: logger}
	}

	tokens := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiresIn)
	google := googleauth.NewIDTokenVerifier(cfg.Auth.GoogleClientID)

	hub := ws.NewHub(logger)

	scheduler := notifier.New(users, feedClient, mailer, logger)
	scheduler.OnDigestSent = hub.NotifyDigestSent

	return &Container{
		Config: cfg,
		Logger: logger,

		Store: store,
		Cache: redis,

		Users:  users,
		Feed:   feedClient,
		Mailer: mailer,
		Tokens: tokens,

		AuthUC: authuc.NewService(users, mailer, tokens, google, logger, cfg.App.Development()),
		UserUC: useruc.NewService(users, logger),
		JobsUC: jobsuc.NewService(users, feedClient),

		Hub:       hub,
		Scheduler: scheduler,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && c.Logger != nil {
			c.Logger.Printf("[Cache] close error: %v", err)
		}
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}
