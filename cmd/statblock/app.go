package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/statblock-importer/internal/config"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/power"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/clock"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/telemetry"
	redisclient "github.com/KirkDiggler/statblock-importer/internal/redis"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/monster"
	rollsession "github.com/KirkDiggler/statblock-importer/internal/repositories/roll_session"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
	"github.com/KirkDiggler/statblock-importer/internal/services/segmenter"
)

const (
	monsterIDPrefix       = "monster"
	serviceName           = "statblock-importer"
	telemetryFlushTimeout = 5 * time.Second
)

// app holds the wired services shared by every command
type app struct {
	cfg      *config.Config
	importer importer.Service
	power    power.Service
	// metrics is nil unless STATBLOCK_METRICS_PORT is set
	metrics http.Handler
	close   func()
}

// loadConfig reads the environment and applies the global flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if conditionsFile != "" {
		cfg.ConditionsFile = conditionsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	return cfg, nil
}

// newApp wires the orchestrators. Monsters go to Redis or SQLite when one is
// configured and to process memory otherwise.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	vocabulary, err := config.LoadVocabulary(cfg.ConditionsFile)
	if err != nil {
		return nil, err
	}

	builder := effects.NewBuilder(nil)
	seg := segmenter.New(&segmenter.Config{
		Builder:    builder,
		Vocabulary: vocabulary,
	})

	tel, err := telemetry.Setup(ctx, &telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: version,
		TraceEndpoint:  cfg.OTelEndpoint,
		Metrics:        cfg.MetricsPort != 0,
	})
	if err != nil {
		return nil, err
	}
	shutdownTelemetry := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to flush telemetry", "error", err)
		}
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		shutdownTelemetry()
		return nil, err
	}
	closeAll := func() {
		store.close()
		shutdownTelemetry()
	}

	importService, err := importer.NewOrchestrator(&importer.Config{
		MonsterRepo: store.monsters,
		Builder:     builder,
		Segmenter:   seg,
		IDGenerator: idgen.NewUUID(monsterIDPrefix),
		Clock:       clock.New(),
		EventBus:    events.NewBus(),
	})
	if err != nil {
		closeAll()
		return nil, errors.Wrap(err, "failed to create importer")
	}

	powerService, err := power.NewOrchestrator(&power.Config{
		Roller:   dice.DefaultRoller,
		Sessions: store.rolls,
	})
	if err != nil {
		closeAll()
		return nil, errors.Wrap(err, "failed to create power roller")
	}

	return &app{
		cfg:      cfg,
		importer: importService,
		power:    powerService,
		metrics:  tel.MetricsHandler,
		close:    closeAll,
	}, nil
}

// storage holds the repositories backing the orchestrators. rolls is nil
// without Redis, which turns roll history off.
type storage struct {
	monsters monster.Repository
	rolls    rollsession.Repository
	close    func()
}

func newStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.SQLitePath != "" {
		monsters, err := monster.NewSQLite(ctx, &monster.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "using sqlite monster storage", "path", cfg.SQLitePath)
		return &storage{
			monsters: monsters,
			close:    func() { _ = monsters.Close() },
		}, nil
	}

	if len(cfg.RedisAddrs) == 0 {
		slog.DebugContext(ctx, "using in-memory monster storage")
		return &storage{monsters: monster.NewInMemory(), close: func() {}}, nil
	}

	client, err := redisclient.Connect(ctx, &redisclient.Config{
		Addrs: cfg.RedisAddrs,
		TLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, err
	}
	closeClient := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	monsters, err := monster.NewRedis(&monster.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, err
	}

	rolls, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		closeClient()
		return nil, err
	}

	slog.InfoContext(ctx, "using redis storage", "addrs", cfg.RedisAddrs)
	return &storage{monsters: monsters, rolls: rolls, close: closeClient}, nil
}

// setup loads config and wires the app in one step
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
