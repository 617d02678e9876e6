package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/starprince/maildesk/modules/mailbox"
	"github.com/starprince/maildesk/pkg/clientip"
	"github.com/starprince/maildesk/pkg/config"
	"github.com/starprince/maildesk/pkg/httpserver"
	"github.com/starprince/maildesk/pkg/inbox"
	"github.com/starprince/maildesk/pkg/logger"
	"github.com/starprince/maildesk/pkg/mailer"
	"github.com/starprince/maildesk/pkg/ratelimit"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg, logger.WithAttr(slog.String("app", "maildesk")))
	slog.SetDefault(log)

	var mailCfg mailer.Config
	config.MustLoad(&mailCfg)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	store := ratelimit.NewMemoryStore()
	defer func() { _ = store.Close() }()

	limiter, err := ratelimit.NewFixedWindow(store, mailCfg.RateLimit, mailCfg.RateWindow)
	if err != nil {
		log.Error("invalid rate limit configuration", logger.Error(err))
		os.Exit(1)
	}

	emails := inbox.NewStore(inbox.WithSeedData())

	svc := mailer.NewService(mailCfg, limiter,
		mailer.WithLogger(log),
		mailer.WithSentRecorder(func(e mailer.SentEmail) {
			emails.RecordSent(e.From, e.To, e.Cc, e.Bcc, e.Subject, e.Body, e.HTML)
		}),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(clientip.Middleware)
	r.Use(mailbox.CredentialFromCookie)
	r.Mount("/", mailbox.New(svc, emails, log).Handle())

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
