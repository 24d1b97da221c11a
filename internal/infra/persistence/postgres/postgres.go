package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/lifecycle"
	"recipebox/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool described by database.url. The connection is
// verified and the schema migrated when the application starts.
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database
	if dbCfg.URL == "" {
		return nil, errors.New("database url is required")
	}

	db, err := gorm.Open(postgres.Open(dbCfg.URL), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		// Surface driver errors such as unique violations as gorm.Err* values.
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if len(dbCfg.ReplicaURLs) > 0 {
		if err := db.Use(newReplicaResolver(dbCfg)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	configurePool(sqlDB, dbCfg)

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if dbCfg.AutoMigrate {
				if err := RunMigrations(ctx, sqlDB); err != nil {
					return err
				}
				params.Logger.Info("Database schema is up to date")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// newReplicaResolver sends reads outside transactions to the replicas; writes
// and everything inside Execute stay on the primary.
func newReplicaResolver(dbCfg config.DatabaseConfig) *dbresolver.DBResolver {
	replicas := make([]gorm.Dialector, 0, len(dbCfg.ReplicaURLs))
	for _, url := range dbCfg.ReplicaURLs {
		replicas = append(replicas, postgres.Open(url))
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	if dbCfg.MaxOpenConns > 0 {
		resolver = resolver.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		resolver = resolver.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		resolver = resolver.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	return resolver
}

func configurePool(sqlDB *sql.DB, dbCfg config.DatabaseConfig) {
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
