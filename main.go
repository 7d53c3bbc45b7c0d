package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"Portfolio/config"
	"Portfolio/content"
	"Portfolio/db"
	"Portfolio/handlers"
	"Portfolio/logger"
	"Portfolio/mail"
	"Portfolio/relay"
	"Portfolio/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.CheckSessionSecret(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	// Инициализация и отложенное закрытие пула соединений с БД
	backend, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db: %v", err)
	}
	defer backend.Close()

	if err := handlers.SeedAdmin(ctx, backend, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatalf("seed admin: %v", err)
	}

	var store db.Store = backend
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatalf("redis url: %v", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()
		store = db.NewCache(backend, client, cfg.CacheTTL)
		logger.Infof("read cache enabled, ttl=%s", cfg.CacheTTL)
	}

	svc := &relay.Service{
		Sender:      mail.NewSender(cfg),
		OwnerEmail:  cfg.OwnerEmail,
		OwnerName:   cfg.OwnerName,
		NotifyFrom:  cfg.NotifyFrom,
		ConfirmFrom: cfg.ConfirmFrom,
	}
	if cfg.PersistMessages {
		svc.Messages = store
	}

	site := content.Default()
	site.Contact = append([]content.ContactInfo{{Label: "Email", Value: cfg.OwnerEmail}}, site.Contact...)

	sessions := handlers.NewSessions(cfg.JWTSecret)
	sessions.Secure = strings.HasPrefix(cfg.PublicURL, "https://")

	srv := &handlers.Server{
		Store:     store,
		Users:     backend,
		Sessions:  sessions,
		Relay:     svc,
		Views:     templates.Parse(),
		Content:   site,
		StaticDir: cfg.StaticDir,
	}

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Запускаем сервер
	logger.Infof("Server listening on %s", cfg.Listen)
	logger.Fatalf("listen: %v", httpSrv.ListenAndServe())
}
