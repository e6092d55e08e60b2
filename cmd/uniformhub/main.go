package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/subosito/gotenv"

	"github.com/Spok95/uniformhub/internal/config"
	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/inventory"
	"github.com/Spok95/uniformhub/internal/domain/reports"
	"github.com/Spok95/uniformhub/internal/domain/users"
	"github.com/Spok95/uniformhub/internal/infra/alerts"
	httpx "github.com/Spok95/uniformhub/internal/infra/http"
	"github.com/Spok95/uniformhub/internal/infra/logger"
	"github.com/Spok95/uniformhub/internal/infra/metrics"
	"github.com/Spok95/uniformhub/internal/infra/payments"
	"github.com/Spok95/uniformhub/internal/session"
)

// janitorEvery is how often idle workspaces are swept.
const janitorEvery = time.Minute

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to the YAML config; empty uses defaults and env only")
	flag.Parse()

	// .env is optional; real environment variables win over it.
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)
	log.Warn("demo login is enabled: passwords are not checked")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	items, err := loadCatalog(ctx, cfg, log, catalog.NewSeededGenerator(cfg.App.Seed))
	if err != nil {
		log.Error("catalog load failed", "source", cfg.Catalog.Source, "err", err)
		return
	}
	store, err := catalog.NewStore(items)
	if err != nil {
		log.Error("catalog rejected", "err", err)
		return
	}
	stats := inventory.CountStatuses(store.Items())
	log.Info("catalog loaded",
		"source", cfg.Catalog.Source,
		"items", store.Len(),
		"low_stock", stats.LowStock,
		"out_of_stock", stats.OutOfStock,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New()
	if err := m.Register(reg); err != nil {
		log.Error("metrics register failed", "err", err)
		return
	}
	m.ObserveCatalog(stats.InStock, stats.LowStock, stats.OutOfStock)

	if cfg.Alerts.Enabled {
		sendLowStockAlert(ctx, cfg, log, store.Items())
	}

	sessions := session.NewRegistry(users.DefaultDirectory())
	go sweepSessions(ctx, sessions, cfg.HTTP.SessionTTL, m, log)

	api := httpx.NewAPI(httpx.Deps{
		Log:      log,
		Store:    store,
		Sessions: sessions,
		Metrics:  m,
		Sales:    reports.NewSeededSource(cfg.App.Seed),
		Payments: payments.NewService(cfg.HTTP.BaseURL, payments.NewJournal()),
	})

	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		gatherer = reg
	}
	srv := httpx.New(cfg.HTTP.Addr, api, gatherer)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			stop()
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

func sendLowStockAlert(ctx context.Context, cfg config.Config, log *slog.Logger, items []catalog.Item) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	bot.Debug = cfg.App.Env == "dev"
	log.Info("telegram authorized", "bot", bot.Self.UserName)

	n := alerts.New(bot, log, cfg.Telegram.AdminChatID)
	if _, err := n.NotifyLowStock(ctx, items); err != nil {
		log.Error("low stock alert failed", "err", err)
	}
}

func sweepSessions(ctx context.Context, sessions *session.Registry, ttl time.Duration, m *metrics.Metrics, log *slog.Logger) {
	t := time.NewTicker(janitorEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := sessions.Expire(ttl); n > 0 {
				log.Info("idle sessions expired", "count", n)
			}
			m.Sessions.Set(float64(sessions.Len()))
		}
	}
}
