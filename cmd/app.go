package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"campconnect/internal/agents"
	"campconnect/internal/cache"
	"campconnect/internal/catalog"
	"campconnect/internal/config"
	"campconnect/internal/database"
	"campconnect/internal/monitoring"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// logOutput receives the service log; command output goes to stdout
var logOutput io.Writer = os.Stderr

// app holds the wired service components
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	catalog *catalog.Catalog
	cache   cache.ViewCache
	monitor *monitoring.Monitor
	agents  *agents.Registry

	store *database.Store
	redis *redis.Client
}

func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     log,
		monitor: monitoring.NewMonitor(),
	}

	source, err := a.catalogSource(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.catalog, err = catalog.New(ctx, source, log, catalog.WithReloadHook(func(snap *catalog.Snapshot, err error) {
		if err != nil {
			a.monitor.ObserveReload(0, 0, 0, err)
			return
		}
		a.monitor.ObserveReload(snap.Version, len(snap.Inventory), len(snap.Vendors), nil)
	}))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.cache, err = a.viewCache(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	model, err := agents.NewModel(cfg.Agents)
	if err != nil {
		a.Close()
		return nil, err
	}
	var opts []agents.RegistryOption
	if model != nil {
		opts = append(opts, agents.WithSharedModel(model))
		log.WithFields(logrus.Fields{"provider": cfg.Agents.Provider, "model": cfg.Agents.Model}).Info("agents answer through model provider")
	}
	a.agents = agents.NewRegistry(agents.Roster(), rand.New(rand.NewSource(time.Now().UnixNano())), log, opts...)
	return a, nil
}

// catalogSource returns the YAML dataset directly, or a SQLite store
// seeded from it
func (a *app) catalogSource(ctx context.Context) (catalog.Source, error) {
	file := catalog.NewFileSource(a.cfg.Catalog.Dataset)
	if a.cfg.Catalog.Source != config.SourceSQLite {
		return file, nil
	}

	store, err := database.Open(a.cfg.Catalog.DatabasePath)
	if err != nil {
		return nil, err
	}
	a.store = store

	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	ds, err := file.Load(ctx)
	if err != nil {
		return nil, err
	}
	seeded, err := store.Seed(ctx, ds)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"module": "database",
		"path":   a.cfg.Catalog.DatabasePath,
		"seeded": seeded,
	}).Info("catalog database ready")
	return store, nil
}

func (a *app) viewCache(ctx context.Context) (cache.ViewCache, error) {
	switch a.cfg.Cache.Backend {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{Addr: a.cfg.Cache.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", a.cfg.Cache.RedisAddr, err)
		}
		a.redis = client
		return cache.NewRedis(client, a.cfg.Cache.TTL), nil
	case config.CacheNone:
		return cache.Noop{}, nil
	default:
		return cache.NewMemory(a.cfg.Cache.TTL, a.cfg.Cache.MaxEntries), nil
	}
}

// Close releases the database and redis connections
func (a *app) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	return errors.Join(errs...)
}

// loadApp reads the configuration named by --config and wires the app
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, logOutput)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg, log)
}
