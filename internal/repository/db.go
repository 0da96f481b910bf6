package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/qbankhq/qbank/gen/ent"
)

type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Conn bundles the Ent client with the underlying handles so the caller can
// ping and close without caring which driver is behind it. Pool is nil when
// running on the embedded sqlite driver.
type Conn struct {
	Ent  *ent.Client
	Pool *pgxpool.Pool
	db   *sql.DB
}

// Open connects to the database named by cfg.DSN. Postgres DSNs get a pgx
// pool wrapped for Ent; "sqlite:" DSNs use the embedded driver, intended for
// local development and one-shot CLI runs.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Conn, error) {
	if strings.HasPrefix(cfg.DSN, "sqlite:") {
		return openSQLite(cfg.DSN, logger)
	}

	logger.Info("connecting to database", "dsn", redactDSN(cfg.DSN))
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "qbank"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return &Conn{Ent: client, Pool: pool, db: db}, nil
}

func openSQLite(dsn string, logger *slog.Logger) (*Conn, error) {
	path := strings.TrimPrefix(dsn, "sqlite:")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	logger.Info("opened sqlite database", "path", path)
	return &Conn{Ent: client, db: db}, nil
}

// Close closes the database connections gracefully.
func (c *Conn) Close(logger *slog.Logger) {
	logger.Info("closing database connections")
	if c.Ent != nil {
		if err := c.Ent.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
	logger.Info("database connections closed")
}

// Ping checks connectivity, catching DSN issues early.
func (c *Conn) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if c.Pool != nil {
		return c.Pool.Ping(ctx)
	}
	return c.db.PingContext(ctx)
}

// redactDSN hides the password portion of a URL-style DSN for logging.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	scheme := strings.Index(dsn, "://")
	if scheme < 0 || scheme+3 > at {
		return dsn
	}
	return dsn[:scheme+3] + "***" + dsn[at:]
}
