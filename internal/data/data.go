package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shortlink/internal/biz"
	"shortlink/internal/conf"

	"entgo.io/ent/dialect"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultSource   = "file:data.db?_fk=1"
	defaultCacheTTL = 10 * time.Minute
	pingTimeout     = 5 * time.Second
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewLinkRepo,
	NewLinkCache,
	NewCachedLinkRepository,
	wire.Bind(new(biz.Pinger), new(*Data)),
)

// Data holds the database handle and the optional Redis client.
type Data struct {
	db       *sql.DB
	dialect  string
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewData opens the configured database, applies migrations and connects to
// Redis when an address is configured.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	var dbConf conf.Data_Database
	if c != nil && c.Database != nil {
		dbConf = *c.Database
	}
	d, err := dialectOf(dbConf.Driver)
	if err != nil {
		return nil, nil, err
	}
	source := dbConf.Source
	if source == "" {
		source = defaultSource
	}

	db, err := openDB(d, source)
	if err != nil {
		return nil, nil, err
	}
	if err := runMigrations(db, d); err != nil {
		db.Close()
		return nil, nil, err
	}

	data := &Data{
		db:       db,
		dialect:  d,
		cacheTTL: defaultCacheTTL,
	}

	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		data.rdb = redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.Db,
		})
		data.cacheTTL = conf.Duration(c.Redis.CacheTtl, defaultCacheTTL)

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		if err := data.rdb.Ping(ctx).Err(); err != nil {
			helper.Warnf("redis at %s is unreachable, cache reads will miss: %v", c.Redis.Addr, err)
		}
		cancel()
	}

	helper.Infof("database ready (driver=%s)", d)

	cleanup := func() {
		helper.Info("closing the data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
		if err := data.db.Close(); err != nil {
			helper.Error(err)
		}
	}

	return data, cleanup, nil
}

// Ping checks that the database answers.
func (d *Data) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func dialectOf(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
		return dialect.SQLite, nil
	case "postgres", "postgresql", "pgx":
		return dialect.Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openDB(d, source string) (*sql.DB, error) {
	db, err := sql.Open(d, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if d == dialect.SQLite {
		// A single connection serializes writers instead of failing with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		for _, pragma := range []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
		} {
			if _, err := db.Exec(pragma); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
