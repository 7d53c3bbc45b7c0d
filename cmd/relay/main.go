// Command relay serves only the contact relay endpoint, for deployments
// where the site is static and the relay runs on its own.
package main

import (
	"context"
	"net/http"
	"time"

	"Portfolio/config"
	"Portfolio/db"
	"Portfolio/logger"
	"Portfolio/mail"
	"Portfolio/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	svc := &relay.Service{
		Sender:      mail.NewSender(cfg),
		OwnerEmail:  cfg.OwnerEmail,
		OwnerName:   cfg.OwnerName,
		NotifyFrom:  cfg.NotifyFrom,
		ConfirmFrom: cfg.ConfirmFrom,
	}

	// the relay keeps working without a database, it just stops storing
	if cfg.PersistMessages {
		backend, err := db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Warnf("relay: messages will not be stored")
		} else {
			defer backend.Close()
			svc.Messages = backend
		}
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           relay.NewHandler(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Infof("relay listening on %s", cfg.Listen)
	logger.Fatalf("listen: %v", srv.ListenAndServe())
}
