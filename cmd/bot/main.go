package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GuildCoin_Go/internal/admin"
	"github.com/osse101/GuildCoin_Go/internal/config"
	"github.com/osse101/GuildCoin_Go/internal/daily"
	"github.com/osse101/GuildCoin_Go/internal/database"
	"github.com/osse101/GuildCoin_Go/internal/database/postgres"
	"github.com/osse101/GuildCoin_Go/internal/discord"
	"github.com/osse101/GuildCoin_Go/internal/ledger"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/server"
	"github.com/osse101/GuildCoin_Go/internal/shop"
	"github.com/osse101/GuildCoin_Go/internal/worker"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "guildcoin",
	})

	for _, warning := range cfg.Warnings() {
		slog.Warn(warning)
	}

	ctx := context.Background()

	pool, err := database.ConnectWithRetry(ctx, cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	// Services
	ledgerService := ledger.NewService(postgres.NewLedgerRepository(pool))
	shopService := shop.NewService(postgres.NewCatalogRepository(pool))
	dailyService := daily.NewService(postgres.NewDailyRepository(pool))
	adminService := admin.NewService(postgres.NewAdminRoleRepository(pool))

	// Discord bot
	bot, err := discord.New(cfg, discord.Services{
		Ledger: ledgerService,
		Shop:   shopService,
		Daily:  dailyService,
		Admin:  adminService,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}
	defer bot.Stop()

	if err := bot.RegisterCommands(bot.Registry); err != nil {
		// The bot can still run with a stale command set.
		slog.Error("Failed to register commands", "error", err)
	}

	// Daily reward worker
	rewardWorker := worker.NewRewardWorker(dailyService, bot)
	rewardWorker.Start()

	// Health and metrics server
	srv := server.NewServer(cfg.Port, pool)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Health server stopped", "error", err)
		}
	}()

	slog.Info("GuildCoin is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := rewardWorker.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Reward worker shutdown incomplete", "error", err)
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Warn("Health server shutdown incomplete", "error", err)
	}
}
