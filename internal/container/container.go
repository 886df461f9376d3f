package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mydahanu/directory/internal/api"
	"mydahanu/directory/internal/catalog"
	"mydahanu/directory/internal/client"
	"mydahanu/directory/internal/config"
	"mydahanu/directory/internal/kv"
	"mydahanu/directory/internal/kv/memory"
	"mydahanu/directory/internal/kv/postgres"
	redisstore "mydahanu/directory/internal/kv/redis"
	"mydahanu/directory/internal/kv/sqlite"
	"mydahanu/directory/internal/persist"
	"mydahanu/directory/internal/session"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Store     kv.Store
	Persister *persist.Persister
	Catalog   *catalog.Catalog
	Session   *session.Store
	Client    client.SnapshotClient
}

// New creates a new container with all dependencies initialized. The
// catalog and the session are hydrated from the store before it returns;
// a failed hydration is logged and the seed data is served instead.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	persister := persist.New(store,
		persist.WithMaxWritesPerSecond(cfg.Storage.MaxWritesPerSecond),
		persist.WithWriteTimeout(cfg.Storage.WriteTimeout),
	)
	persister.Start()

	container := &Container{
		Config:    cfg,
		Store:     store,
		Persister: persister,
		Catalog:   catalog.New(persister, catalog.WithSyncWrites(cfg.Storage.SyncWrites)),
		Session:   session.New(store, cfg.Auth.AdminEmail),
		Client:    client.NewSnapshotClient(cfg.Import),
	}

	if err := container.Catalog.Hydrate(ctx, store); err != nil {
		log.Warnf("⚠️ Catalog hydrated partially: %v", err)
	}
	if err := container.Session.Load(ctx); err != nil {
		log.Warnf("⚠️ Session not restored: %v", err)
	}

	return container, nil
}

func newStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case kv.DriverMemory:
		log.Info("🧠 Using in-memory storage, nothing will survive a restart")
		return memory.NewStore(), nil

	case kv.DriverSQLite, "":
		store, err := sqlite.NewStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Infof("✅ Opened sqlite store at %s", store.Path())
		return store, nil

	case kv.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		return redisstore.NewStore(rdb, cfg.Redis.KeyPrefix), nil

	case kv.DriverPostgres:
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		store, err := postgres.NewStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Handler returns the HTTP API over the container's catalog and session.
func (c *Container) Handler() http.Handler {
	return api.NewRouter(c.Catalog, c.Session, c.Client)
}

// Run serves the HTTP API until ctx is cancelled, then shuts the server
// down gracefully.
func (c *Container) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         c.Config.Server.Addr(),
		Handler:      c.Handler(),
		ReadTimeout:  c.Config.Server.ReadTimeout,
		WriteTimeout: c.Config.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("🚀 Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Config.Server.ShutdownTimeout)
		defer cancel()

		log.Info("Shutting down HTTP server...")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close flushes pending writes and releases the store.
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	ctx, cancel := context.WithTimeout(context.Background(), c.Config.Storage.WriteTimeout+c.Config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := c.Persister.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush pending writes: %w", err))
	}
	if err := c.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}

	log.Info("Container shut down successfully")
	return errors.Join(errs...)
}
