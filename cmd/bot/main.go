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

	"github.com/bwmarrin/discordgo"

	"github.com/lootgrid/lootgrid/internal/config"
	"github.com/lootgrid/lootgrid/internal/database"
	"github.com/lootgrid/lootgrid/internal/database/postgres"
	"github.com/lootgrid/lootgrid/internal/discord"
	"github.com/lootgrid/lootgrid/internal/grid"
	"github.com/lootgrid/lootgrid/internal/imaging"
	"github.com/lootgrid/lootgrid/internal/ledger"
	"github.com/lootgrid/lootgrid/internal/logger"
	"github.com/lootgrid/lootgrid/internal/scanner"
	"github.com/lootgrid/lootgrid/internal/server"
	"github.com/lootgrid/lootgrid/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		database.DefaultMaxConnections, 30*time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Repositories and services
	players := postgres.NewPlayerRepository(dbPool)
	items := postgres.NewItemRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)

	ledgerService := ledger.NewService(players, items, ledgerRepo)

	catalog, err := items.GetAllItems(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		slog.Warn("Item catalog is empty, screenshots will never match. Run cmd/seed first.")
	}

	// Scanner: reference images are loaded through a TTL cache so the
	// catalog sweep does not re-decode them per screenshot.
	refLoader := imaging.NewCachedLoader(imaging.NewLoader(cfg.FetchTimeout), cfg.RefCacheSize, cfg.RefCacheTTL)
	screenshotLoader := imaging.NewLoader(cfg.FetchTimeout)

	engine := scanner.NewEngine(refLoader, grid.DefaultLayout(), cfg.DiffTolerance, cfg.MatchThreshold, cfg.MatchWorkers)
	scannerService := scanner.NewService(screenshotLoader, engine, catalog, ledgerService)

	// Background scan pool
	scans := worker.NewPool(cfg.ScanWorkers, cfg.ScanQueueSize)
	scans.Start()
	defer scans.Stop()

	// Discord bot
	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, ledgerService, scannerService, scans)
	if err != nil {
		return err
	}

	registerCommands(bot)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Don't exit - bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	// Operations API
	srv := server.NewServer(cfg.Port, dbPool, ledgerService)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	return nil
}

func registerCommands(bot *discord.Bot) {
	factories := []func() (*discordgo.ApplicationCommand, discord.CommandHandler){
		discord.PingCommand,
		discord.ScoreCommand,
		discord.LeaderboardCommand,
	}
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
