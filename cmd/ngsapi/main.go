package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/nextgenscores/ngsapi/internal/cfbd"
	"github.com/nextgenscores/ngsapi/internal/config"
	"github.com/nextgenscores/ngsapi/internal/handler/v1handler"
	"github.com/nextgenscores/ngsapi/internal/jobs"
	"github.com/nextgenscores/ngsapi/internal/mailer"
	"github.com/nextgenscores/ngsapi/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading environment variables directly")
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	mysql, err := store.NewMySQL(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer mysql.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mysql.Ping(ctx); err != nil {
		cancel()
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	if err := mysql.CreateSchema(ctx); err != nil {
		cancel()
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	cancel()

	fetcher := cfbd.NewGameFetcher(cfbd.NewClient(cfg.Cfbd))
	sender := mailer.New(cfg.Smtp)
	handler := v1handler.New(cfg, mysql, fetcher, sender)

	if cfg.Jobs.Enabled {
		sched, err := jobs.Start(cfg, mysql, fetcher, sender)
		if err != nil {
			slog.Error("failed to start scheduled jobs", "error", err)
			os.Exit(1)
		}
		defer sched.Shutdown()
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Http.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token"},
		AllowCredentials: true,
	})

	server := http.Server{
		Addr:    ":" + cfg.Http.Port,
		Handler: c.Handler(handler),
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("listening", "port", cfg.Http.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed")
}
